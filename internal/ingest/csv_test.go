package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feedback.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFeedbackCSV(t *testing.T) {
	path := writeTempCSV(t, "feedback_text,source_type,date\n"+
		"\"The app is slow\",support,2024-01-10\n"+
		"\"Love the new chart\",,\n")

	inputs, err := ReadFeedbackCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(inputs))
	}
	if inputs[0].Text != "The app is slow" || inputs[0].SourceType != "support" || inputs[0].Date != "2024-01-10" {
		t.Errorf("row 0 mangled: %+v", inputs[0])
	}
	if inputs[1].SourceType != "" || inputs[1].Date != "" {
		t.Errorf("optional columns should stay empty for defaulting downstream: %+v", inputs[1])
	}
}

func TestReadFeedbackCSVColumnOrder(t *testing.T) {
	path := writeTempCSV(t, "date,feedback_text\n2024-01-10,\"works either way\"\n")
	inputs, err := ReadFeedbackCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inputs[0].Text != "works either way" || inputs[0].Date != "2024-01-10" {
		t.Errorf("header-mapped columns mangled: %+v", inputs[0])
	}
}

func TestReadFeedbackCSVMissingColumn(t *testing.T) {
	path := writeTempCSV(t, "text,source\nhello,sales\n")
	if _, err := ReadFeedbackCSV(path); err == nil {
		t.Fatal("expected error for missing feedback_text column")
	}
}

func TestValidAPIKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"your_api_key_here", false},
		{"test_financial_pipeline_key_123456", false},
		{"real-looking-key", true},
	}
	for _, tt := range tests {
		if got := ValidAPIKey(tt.key); got != tt.want {
			t.Errorf("ValidAPIKey(%q) = %v; want %v", tt.key, got, tt.want)
		}
	}
}

func TestGenerateFinancialRecords(t *testing.T) {
	records := GenerateFinancialRecords(10, "Revenue")
	if len(records) != 10 {
		t.Fatalf("expected 10 records, got %d", len(records))
	}
	seen := map[string]struct{}{}
	for _, r := range records {
		if r.ID == "" || r.Date == "" || r.Value == "" || r.Description == "" {
			t.Errorf("incomplete record: %+v", r)
		}
		if _, dup := seen[r.ID]; dup {
			t.Errorf("duplicate id %s", r.ID)
		}
		seen[r.ID] = struct{}{}
	}
}

func TestGenerateIncomeStatements(t *testing.T) {
	annual := GenerateIncomeStatements("AAPL", "annual")
	if len(annual) != 5 {
		t.Errorf("expected 5 annual periods, got %d", len(annual))
	}
	quarterly := GenerateIncomeStatements("AAPL", "quarter")
	if len(quarterly) != 8 {
		t.Errorf("expected 8 quarterly periods, got %d", len(quarterly))
	}
	for _, s := range annual {
		if s.Revenue == nil || s.NetIncome == nil || s.GrossProfit == nil || s.OperatingExpenses == nil {
			t.Errorf("statement %s missing tracked metrics", s.Date)
		}
		if s.Symbol != "AAPL" {
			t.Errorf("statement symbol %q", s.Symbol)
		}
	}
}
