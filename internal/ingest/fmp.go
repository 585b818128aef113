package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"InsightPipe/internal/model"
)

// DefaultFMPBaseURL is the Financial Modeling Prep API root.
const DefaultFMPBaseURL = "https://financialmodelingprep.com"

// FMPFetcher fetches income statements from the Financial Modeling Prep
// REST API. Calls are single-attempt; callers degrade to mock data on
// error.
type FMPFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewFMPFetcher creates a fetcher with a 10s timeout.
func NewFMPFetcher(baseURL, apiKey string) *FMPFetcher {
	if baseURL == "" {
		baseURL = DefaultFMPBaseURL
	}
	return &FMPFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *FMPFetcher) Name() string { return "fmp" }

// FetchIncomeStatements retrieves annual or quarterly statements for a
// symbol.
func (f *FMPFetcher) FetchIncomeStatements(symbol, period string) ([]model.IncomeStatement, error) {
	if period == "" {
		period = "annual"
	}
	endpoint := fmt.Sprintf("%s/api/v3/income-statement/%s?period=%s&apikey=%s",
		f.BaseURL, url.PathEscape(symbol), url.QueryEscape(period), url.QueryEscape(f.APIKey))

	resp, err := f.Client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch income statements: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch income statements: status %d, body: %s", resp.StatusCode, string(body))
	}

	var statements []model.IncomeStatement
	if err := json.NewDecoder(resp.Body).Decode(&statements); err != nil {
		return nil, fmt.Errorf("decode income statements: %w", err)
	}
	if len(statements) == 0 {
		return nil, fmt.Errorf("no income statement data for symbol %s", symbol)
	}

	log.Printf("[INFO] fetched income statements for %s: %d periods", symbol, len(statements))
	return statements, nil
}
