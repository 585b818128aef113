package ingest

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"InsightPipe/internal/model"
)

// SaveRaw archives an ingested batch as indented JSON under dir before
// standardization touches it.
func SaveRaw(dir, filename string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create raw dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal raw data: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write raw data: %w", err)
	}
	log.Printf("[INFO] saved raw batch to %s", path)
	return nil
}

// LoadRawRecords reads an archived batch of raw financial records.
func LoadRawRecords(dir, filename string) ([]model.RawFinancialRecord, error) {
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		return nil, fmt.Errorf("read raw data: %w", err)
	}
	var records []model.RawFinancialRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse raw data: %w", err)
	}
	log.Printf("[INFO] loaded %d raw records from %s", len(records), filename)
	return records, nil
}

// LoadRawStatements reads an archived batch of income statements.
func LoadRawStatements(dir, filename string) ([]model.IncomeStatement, error) {
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		return nil, fmt.Errorf("read raw data: %w", err)
	}
	var statements []model.IncomeStatement
	if err := json.Unmarshal(data, &statements); err != nil {
		return nil, fmt.Errorf("parse raw data: %w", err)
	}
	log.Printf("[INFO] loaded %d raw statements from %s", len(statements), filename)
	return statements, nil
}
