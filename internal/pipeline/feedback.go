package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"InsightPipe/internal/analyzer"
	"InsightPipe/internal/model"
	"InsightPipe/internal/processor"
	"InsightPipe/internal/store"
)

// FeedbackPipeline analyzes a feedback batch and persists it. Strategic
// goals are reloaded from the store on every run, so goal changes affect
// subsequent batches but never reprocess past records.
type FeedbackPipeline struct {
	Store  store.Store
	Remote analyzer.Engine // nil disables remote analysis
}

// Run processes one batch. Row failures never abort the batch; a storage
// failure yields a FAILURE history row.
func (p *FeedbackPipeline) Run(ctx context.Context, inputs []model.FeedbackInput) model.BatchResult {
	batchID := "batch_" + time.Now().Format("20060102_150405")
	log.Printf("[INFO] feedback pipeline starting: batch=%s items=%d", batchID, len(inputs))

	goals, err := p.Store.StrategicGoals()
	if err != nil || len(goals) == 0 {
		if err != nil {
			log.Printf("[WARN] load strategic goals failed, using defaults: %v", err)
		}
		goals = analyzer.DefaultGoals
	}
	goals = analyzer.AttachKeywords(goals)

	proc := processor.New(analyzer.NewRuleEngine(), p.Remote, goals)
	records := proc.ProcessBatch(ctx, inputs)

	if err := p.Store.SaveFeedbackBatch(records); err != nil {
		log.Printf("[ERROR] save feedback batch: %v", err)
		if logErr := p.Store.LogProcessing(batchID, 0, model.StatusFailure); logErr != nil {
			log.Printf("[ERROR] log processing history: %v", logErr)
		}
		return model.BatchResult{BatchID: batchID, Status: model.StatusFailure}
	}

	if err := p.Store.LogProcessing(batchID, len(records), model.StatusSuccess); err != nil {
		log.Printf("[ERROR] log processing history: %v", err)
	}

	log.Printf("[INFO] feedback pipeline done: %s", summarize(records))
	return model.BatchResult{
		BatchID:          batchID,
		Status:           model.StatusSuccess,
		RecordsProcessed: len(records),
	}
}

// summarize reports how many records took the remote path.
func summarize(records []model.FeedbackRecord) string {
	remote := 0
	for _, r := range records {
		if r.AnalysisMethod == processor.MethodRemote {
			remote++
		}
	}
	return fmt.Sprintf("%d records (%d remote, %d rules)", len(records), remote, len(records)-remote)
}
