package store

import "InsightPipe/internal/model"

// NoopStore is a no-op implementation used when no database is configured
// (dry runs, tests of upstream stages).
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (NoopStore) SaveFeedbackBatch(_ []model.FeedbackRecord) error     { return nil }
func (NoopStore) SaveFinancialRecords(_ []model.FinancialRecord) error { return nil }
func (NoopStore) StrategicGoals() ([]model.StrategicGoal, error)       { return nil, nil }
func (NoopStore) AddStrategicGoal(_, _ string, _ int) error            { return nil }
func (NoopStore) DeleteStrategicGoal(_ int64) error                    { return nil }
func (NoopStore) LogProcessing(_ string, _ int, _ string) error        { return nil }
func (NoopStore) LogPipelineRun(_ string, _ int) error                 { return nil }
func (NoopStore) FeedbackCount() (int, error)                          { return 0, nil }
func (NoopStore) FinancialCount() (int, error)                         { return 0, nil }
func (NoopStore) Close() error                                         { return nil }
