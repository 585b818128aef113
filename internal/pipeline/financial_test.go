package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"InsightPipe/internal/ingest"
	"InsightPipe/internal/model"
	"InsightPipe/internal/store"
)

// failingFetcher forces the mock-statement fallback path.
type failingFetcher struct{}

func (failingFetcher) Name() string { return "failing" }
func (failingFetcher) FetchIncomeStatements(string, string) ([]model.IncomeStatement, error) {
	return nil, errors.New("api unreachable")
}

func newTestPipeline(t *testing.T) (*FinancialPipeline, *store.SQLiteStore, string) {
	t.Helper()
	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	dir := t.TempDir()
	p := &FinancialPipeline{
		Store:      s,
		Fetcher:    ingest.MockFetcher{},
		RawDir:     filepath.Join(dir, "raw_data"),
		StatusFile: filepath.Join(dir, "status.txt"),
	}
	return p, s, dir
}

func TestFinancialRunHistoricalPrices(t *testing.T) {
	p, s, _ := newTestPipeline(t)

	res := p.Run(model.DataTypeHistoricalPrices, "AAPL", 20)
	if res.Status != model.StatusSuccess {
		t.Fatalf("run failed: %s", res.Message)
	}
	if res.RecordsProcessed != 20 {
		t.Errorf("expected 20 records processed, got %d", res.RecordsProcessed)
	}

	n, err := s.FinancialCount()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 20 {
		t.Errorf("expected 20 stored records, got %d", n)
	}

	status, err := os.ReadFile(p.StatusFile)
	if err != nil {
		t.Fatalf("status file: %v", err)
	}
	if !strings.HasPrefix(string(status), "SUCCESS: 20 records processed at ") {
		t.Errorf("unexpected status content: %q", status)
	}
}

func TestFinancialRunIncomeStatementWithFetchFallback(t *testing.T) {
	p, s, _ := newTestPipeline(t)
	p.Fetcher = failingFetcher{}

	res := p.Run(model.DataTypeIncomeStatement, "AAPL", 0)
	if res.Status != model.StatusSuccess {
		t.Fatalf("fetch failure must degrade to mock data, got: %s", res.Message)
	}
	// 5 annual periods, 4 tracked metrics each.
	if res.RecordsProcessed != 20 {
		t.Errorf("expected 20 flattened records, got %d", res.RecordsProcessed)
	}

	n, _ := s.FinancialCount()
	if n != res.RecordsProcessed {
		t.Errorf("stored %d records but reported %d", n, res.RecordsProcessed)
	}
}

func TestFinancialRunArchivesRawBatch(t *testing.T) {
	p, _, _ := newTestPipeline(t)
	p.Run(model.DataTypeRevenue, "ACME", 5)

	entries, err := os.ReadDir(p.RawDir)
	if err != nil {
		t.Fatalf("raw dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 archived raw file, got %d", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "ACME_revenue_") {
		t.Errorf("unexpected raw filename %q", entries[0].Name())
	}
}

func TestFeedbackRunLogsHistory(t *testing.T) {
	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	fp := &FeedbackPipeline{Store: s}
	res := fp.Run(context.Background(), []model.FeedbackInput{
		{Text: "the dashboard is slow", SourceType: "support"},
		{Text: "love the new report"},
	})
	if res.Status != model.StatusSuccess {
		t.Fatalf("feedback run failed")
	}
	if res.RecordsProcessed != 2 {
		t.Errorf("expected 2 records, got %d", res.RecordsProcessed)
	}
	n, _ := s.FeedbackCount()
	if n != 2 {
		t.Errorf("expected 2 stored feedback items, got %d", n)
	}
}
