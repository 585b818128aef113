package pipeline

import (
	"fmt"
	"log"
	"strings"
	"time"

	"InsightPipe/internal/ingest"
	"InsightPipe/internal/model"
	"InsightPipe/internal/standardize"
	"InsightPipe/internal/store"
)

// FinancialPipeline runs ingest → raw archive → standardize → store for
// one declared data type. Every run ends with a status message and a run
// history row, SUCCESS or FAILURE.
type FinancialPipeline struct {
	Store      store.Store
	Fetcher    ingest.StatementFetcher
	RawDir     string
	StatusFile string
}

// Run executes the pipeline once. Row-level parse problems degrade to
// sentinels inside standardization; only batch-level problems (archive or
// store unreachable) produce a FAILURE result.
func (p *FinancialPipeline) Run(dataType, symbol string, numRecords int) model.RunResult {
	log.Printf("[INFO] financial pipeline starting: type=%q symbol=%s", dataType, symbol)

	processed, err := p.run(dataType, symbol, numRecords)
	if err != nil {
		msg := fmt.Sprintf("%s: %v", model.StatusFailure, err)
		log.Printf("[ERROR] financial pipeline: %v", err)
		WriteStatus(p.StatusFile, msg)
		if logErr := p.Store.LogPipelineRun(model.StatusFailure, processed); logErr != nil {
			log.Printf("[ERROR] log pipeline run: %v", logErr)
		}
		return model.RunResult{Status: model.StatusFailure, RecordsProcessed: processed, Message: msg}
	}

	msg := fmt.Sprintf("%s: %d records processed", model.StatusSuccess, processed)
	WriteStatus(p.StatusFile, msg)
	if logErr := p.Store.LogPipelineRun(model.StatusSuccess, processed); logErr != nil {
		log.Printf("[ERROR] log pipeline run: %v", logErr)
	}
	return model.RunResult{Status: model.StatusSuccess, RecordsProcessed: processed, Message: msg}
}

func (p *FinancialPipeline) run(dataType, symbol string, numRecords int) (int, error) {
	filename := rawFilename(symbol, dataType)

	// Step 1: ingest and archive the raw batch.
	batch := standardize.Batch{DataType: dataType}
	if dataType == model.DataTypeIncomeStatement {
		statements, err := p.Fetcher.FetchIncomeStatements(symbol, "annual")
		if err != nil {
			log.Printf("[WARN] %s fetch failed, using mock statements: %v", p.Fetcher.Name(), err)
			statements = ingest.GenerateIncomeStatements(symbol, "annual")
		}
		if err := ingest.SaveRaw(p.RawDir, filename, statements); err != nil {
			return 0, err
		}
		loaded, err := ingest.LoadRawStatements(p.RawDir, filename)
		if err != nil {
			return 0, err
		}
		batch.Statements = loaded
	} else {
		records := ingest.GenerateFinancialRecords(numRecords, dataType)
		for i := range records {
			records[i].Description = symbol
		}
		if err := ingest.SaveRaw(p.RawDir, filename, records); err != nil {
			return 0, err
		}
		loaded, err := ingest.LoadRawRecords(p.RawDir, filename)
		if err != nil {
			return 0, err
		}
		batch.Records = loaded
	}

	// Step 2: standardize and persist.
	standardized := standardize.Apply(batch)
	for i := range standardized {
		if standardized[i].Description == "" {
			standardized[i].Description = symbol
		}
	}

	if err := p.Store.SaveFinancialRecords(standardized); err != nil {
		return 0, fmt.Errorf("store standardized records: %w", err)
	}
	return len(standardized), nil
}

func rawFilename(symbol, dataType string) string {
	slug := strings.ReplaceAll(strings.ToLower(dataType), " ", "_")
	return fmt.Sprintf("%s_%s_%s.json", symbol, slug, time.Now().Format("20060102_150405"))
}
