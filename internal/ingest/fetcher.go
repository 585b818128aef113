package ingest

import "InsightPipe/internal/model"

// StatementFetcher retrieves income statements for a symbol.
type StatementFetcher interface {
	FetchIncomeStatements(symbol, period string) ([]model.IncomeStatement, error)
	Name() string
}

// placeholderKeys are sample keys shipped in example configs; they never
// reach the real API.
var placeholderKeys = map[string]struct{}{
	"your_api_key_here":                  {},
	"test_financial_pipeline_key_123456": {},
}

// ValidAPIKey reports whether an FMP key looks usable.
func ValidAPIKey(key string) bool {
	if key == "" {
		return false
	}
	_, placeholder := placeholderKeys[key]
	return !placeholder
}
