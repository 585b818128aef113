package store

import "InsightPipe/internal/model"

// Store persists pipeline output and run history. Record writes are
// upserts by id: re-processing a known id overwrites in place.
type Store interface {
	SaveFeedbackBatch(records []model.FeedbackRecord) error
	SaveFinancialRecords(records []model.FinancialRecord) error

	StrategicGoals() ([]model.StrategicGoal, error)
	AddStrategicGoal(name, description string, weight int) error
	DeleteStrategicGoal(id int64) error

	LogProcessing(batchID string, recordsProcessed int, status string) error
	LogPipelineRun(status string, recordsProcessed int) error

	FeedbackCount() (int, error)
	FinancialCount() (int, error)

	Close() error
}
