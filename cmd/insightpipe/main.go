package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"InsightPipe/internal/analyzer"
	"InsightPipe/internal/config"
	"InsightPipe/internal/ingest"
	"InsightPipe/internal/model"
	"InsightPipe/internal/pipeline"
	"InsightPipe/internal/scheduler"
	"InsightPipe/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] InsightPipe starting...")

	mode := flag.String("mode", "financial", "pipeline to run: financial or feedback")
	dataType := flag.String("data-type", model.DataTypeHistoricalPrices, "financial data type to ingest")
	symbol := flag.String("symbol", "", "ticker symbol (overrides config)")
	numRecords := flag.Int("num-records", 0, "number of mock records to generate (overrides config)")
	input := flag.String("input", "", "feedback CSV file (feedback mode)")
	schedule := flag.Bool("schedule", false, "run the financial pipeline on a cron schedule")
	flag.Parse()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	if *symbol == "" {
		*symbol = cfg.Pipeline.Symbol
	}
	if *numRecords == 0 {
		*numRecords = cfg.Pipeline.NumRecords
	}

	// Init store
	var st store.Store
	switch cfg.Database.Driver {
	case "postgres":
		ps, err := store.NewPostgresStore(cfg.Database.PostgresDSN)
		if err != nil {
			log.Fatalf("[FATAL] init postgres store: %v", err)
		}
		st = ps
	default:
		ss, err := store.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using noop: %v", err)
			st = store.NewNoopStore()
		} else {
			st = ss
		}
	}
	defer st.Close()

	switch *mode {
	case "financial":
		runFinancial(cfg, st, *dataType, *symbol, *numRecords, *schedule)
	case "feedback":
		runFeedback(cfg, st, *input)
	default:
		log.Fatalf("[FATAL] unknown mode %q, want financial or feedback", *mode)
	}
}

func runFinancial(cfg *config.Config, st store.Store, dataType, symbol string, numRecords int, scheduled bool) {
	var fetcher ingest.StatementFetcher
	if ingest.ValidAPIKey(cfg.FMP.APIKey) {
		fetcher = ingest.NewFMPFetcher(cfg.FMP.BaseURL, cfg.FMP.APIKey)
	} else {
		log.Println("[INFO] no usable API key configured, using mock statement data")
		fetcher = ingest.MockFetcher{}
	}
	log.Printf("[INFO] statement source: %s", fetcher.Name())

	fp := &pipeline.FinancialPipeline{
		Store:      st,
		Fetcher:    fetcher,
		RawDir:     cfg.Pipeline.RawDir,
		StatusFile: cfg.Pipeline.StatusFile,
	}

	if !scheduled {
		res := fp.Run(dataType, symbol, numRecords)
		if res.Status != model.StatusSuccess {
			log.Fatalf("[FATAL] %s", res.Message)
		}
		log.Printf("[INFO] %s", res.Message)
		return
	}

	sched := scheduler.New(fp, symbol, numRecords)
	if err := sched.RegisterAll(cfg.Schedule.PricesCron, cfg.Schedule.StatementsCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	log.Println("[INFO] InsightPipe is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
}

func runFeedback(cfg *config.Config, st store.Store, input string) {
	if input == "" {
		log.Fatal("[FATAL] feedback mode requires -input <csv>")
	}
	inputs, err := ingest.ReadFeedbackCSV(input)
	if err != nil {
		log.Fatalf("[FATAL] read feedback csv: %v", err)
	}

	var remote analyzer.Engine
	if cfg.OpenAI.APIKey != "" {
		remote = analyzer.NewOpenAIEngine(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
		log.Printf("[INFO] remote analysis enabled: %s", remote.Name())
	} else {
		log.Println("[INFO] no OpenAI key configured, rule-based analysis only")
	}

	fp := &pipeline.FeedbackPipeline{Store: st, Remote: remote}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res := fp.Run(ctx, inputs)
	if res.Status != model.StatusSuccess {
		log.Fatalf("[FATAL] feedback batch %s failed", res.BatchID)
	}
	log.Printf("[INFO] batch %s: %d records processed", res.BatchID, res.RecordsProcessed)
}
