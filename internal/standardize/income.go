package standardize

import (
	"fmt"
	"log"
	"regexp"
	"time"

	"InsightPipe/internal/model"
)

// incomeMetrics are the statement fields tracked as narrow records, in
// output order.
var incomeMetrics = []struct {
	Key         string
	Description string
}{
	{"revenue", "Revenue"},
	{"operatingExpenses", "Expenses"},
	{"grossProfit", "Profit"},
	{"netIncome", "Net Income"},
}

var bareYear = regexp.MustCompile(`^\d{4}$`)

// FlattenStatements expands each wide income statement into one record per
// (period, tracked metric) pair. Metrics absent from a statement are
// skipped, not zero-filled. Record ids are deterministic composites of
// metric, date and symbol so re-ingestion upserts in place.
func FlattenStatements(statements []model.IncomeStatement, dataType string) []model.FinancialRecord {
	var out []model.FinancialRecord

	for i := range statements {
		s := &statements[i]
		date := resolveStatementDate(s)

		for _, m := range incomeMetrics {
			v := s.Metric(m.Key)
			if v == nil {
				continue
			}
			out = append(out, model.FinancialRecord{
				ID:          fmt.Sprintf("income_%s_%s_%s", m.Key, date, s.Symbol),
				Date:        date,
				Value:       *v,
				Description: m.Description,
				DataType:    dataType,
			})
		}
	}

	log.Printf("[INFO] standardized %d income statement records", len(out))
	return out
}

// resolveStatementDate picks the statement date in priority order: the
// date field, then the filing date, then the calendar year reinterpreted
// as January 1st. Anything unparseable falls back to the sentinel.
func resolveStatementDate(s *model.IncomeStatement) string {
	raw := s.Date
	if raw == "" {
		raw = s.FillingDate
	}
	if raw == "" {
		raw = s.CalendarYear
	}
	if raw == "" {
		return SentinelDate
	}

	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.Format("2006-01-02")
	}
	if bareYear.MatchString(raw) {
		return raw + "-01-01"
	}
	log.Printf("[WARN] could not parse income statement date %q", raw)
	return SentinelDate
}
