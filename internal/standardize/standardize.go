package standardize

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"InsightPipe/internal/model"
)

// Sentinel values substituted when input cannot be parsed. Malformed rows
// degrade instead of aborting the batch.
const (
	SentinelDate  = "1900-01-01"
	SentinelValue = 0.0
)

// dateFormats are tried in order; the first successful parse wins.
var dateFormats = []string{
	"1/2/2006",    // MM/DD/YYYY
	"2006-01-02",  // YYYY-MM-DD
	"2-Jan-2006",  // DD-Mon-YYYY
	"Jan 2, 2006", // Mon DD, YYYY
}

var nonNumeric = regexp.MustCompile(`[^\d.]`)

// Batch is one raw ingested batch awaiting standardization.
type Batch struct {
	DataType   string
	Records    []model.RawFinancialRecord
	Statements []model.IncomeStatement
}

// Apply routes a batch by its declared data type: income statements are
// flattened into narrow metric rows, everything else is normalized per
// record. Every output is tagged with the declared data type.
func Apply(b Batch) []model.FinancialRecord {
	if b.DataType == model.DataTypeIncomeStatement {
		return FlattenStatements(b.Statements, b.DataType)
	}

	out := make([]model.FinancialRecord, 0, len(b.Records))
	for _, r := range b.Records {
		out = append(out, normalizeRecord(r, b.DataType))
	}
	log.Printf("[INFO] standardized %d records", len(out))
	return out
}

func normalizeRecord(r model.RawFinancialRecord, dataType string) model.FinancialRecord {
	date, err := NormalizeDate(r.Date)
	if err != nil {
		log.Printf("[WARN] could not parse date %q for record %s: %v", r.Date, r.ID, err)
		date = SentinelDate
	}

	value, err := NormalizeValue(r.Value)
	if err != nil {
		log.Printf("[WARN] could not parse value %q for record %s: %v", r.Value, r.ID, err)
		value = SentinelValue
	}

	return model.FinancialRecord{
		ID:          r.ID,
		Date:        date,
		Value:       value,
		Description: r.Description,
		DataType:    dataType,
	}
}

// NormalizeDate parses a heterogeneous date string and re-serializes it as
// YYYY-MM-DD.
func NormalizeDate(raw string) (string, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("no known date format matches %q", raw)
}

// NormalizeValue parses a currency-formatted string into a float. Commas,
// currency symbols and whitespace are stripped before parsing.
func NormalizeValue(raw string) (float64, error) {
	cleaned := nonNumeric.ReplaceAllString(strings.ReplaceAll(raw, ",", ""), "")
	if cleaned == "" {
		return 0, fmt.Errorf("no numeric content in %q", raw)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", cleaned, err)
	}
	return d.InexactFloat64(), nil
}
