package scheduler

import (
	"fmt"
	"log"

	"InsightPipe/internal/model"
	"InsightPipe/internal/pipeline"

	"github.com/robfig/cron/v3"
)

// Scheduler manages recurring pipeline runs.
type Scheduler struct {
	Cron       *cron.Cron
	Financial  *pipeline.FinancialPipeline
	Symbol     string
	NumRecords int
}

// New creates a Scheduler around a configured financial pipeline.
func New(fp *pipeline.FinancialPipeline, symbol string, numRecords int) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Financial:  fp,
		Symbol:     symbol,
		NumRecords: numRecords,
	}
}

// RegisterAll registers the daily price ingest and the weekly income
// statement ingest.
func (s *Scheduler) RegisterAll(pricesCron, statementsCron string) error {
	if _, err := s.Cron.AddFunc(pricesCron, s.pricesTask); err != nil {
		return fmt.Errorf("register prices task: %w", err)
	}
	if _, err := s.Cron.AddFunc(statementsCron, s.statementsTask); err != nil {
		return fmt.Errorf("register statements task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) pricesTask() {
	log.Println("[INFO] running scheduled price ingest")
	res := s.Financial.Run(model.DataTypeHistoricalPrices, s.Symbol, s.NumRecords)
	if res.Status != model.StatusSuccess {
		log.Printf("[ERROR] scheduled price ingest: %s", res.Message)
	}
}

func (s *Scheduler) statementsTask() {
	log.Println("[INFO] running scheduled income statement ingest")
	res := s.Financial.Run(model.DataTypeIncomeStatement, s.Symbol, s.NumRecords)
	if res.Status != model.StatusSuccess {
		log.Printf("[ERROR] scheduled statement ingest: %s", res.Message)
	}
}
