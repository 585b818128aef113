package store

import (
	"testing"

	"InsightPipe/internal/analyzer"
	"InsightPipe/internal/model"
)

func newMemoryStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSeedsDefaultGoals(t *testing.T) {
	s := newMemoryStore(t)
	goals, err := s.StrategicGoals()
	if err != nil {
		t.Fatalf("load goals: %v", err)
	}
	if len(goals) != len(analyzer.DefaultGoals) {
		t.Fatalf("expected %d seeded goals, got %d", len(analyzer.DefaultGoals), len(goals))
	}
	// Ordered by weight descending; Optimize Performance (9) comes first.
	if goals[0].Name != "Optimize Performance" {
		t.Errorf("expected highest-weight goal first, got %q", goals[0].Name)
	}
}

func TestFeedbackUpsertByID(t *testing.T) {
	s := newMemoryStore(t)
	rec := model.FeedbackRecord{
		ID:           "f-1",
		FeedbackText: "original",
		CleanedText:  "original",
		SourceType:   "support",
		Category:     "Performance",
		KeyEntities:  []string{"dashboard"},
	}
	if err := s.SaveFeedbackBatch([]model.FeedbackRecord{rec}); err != nil {
		t.Fatalf("first save: %v", err)
	}

	rec.FeedbackText = "reprocessed"
	if err := s.SaveFeedbackBatch([]model.FeedbackRecord{rec}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	n, err := s.FeedbackCount()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("re-processing a known id must overwrite, not duplicate: count = %d", n)
	}
}

func TestFinancialUpsertByID(t *testing.T) {
	s := newMemoryStore(t)
	rec := model.FinancialRecord{
		ID: "income_revenue_2023-12-31_AAPL", Date: "2023-12-31",
		Value: 1000, Description: "Revenue", DataType: model.DataTypeIncomeStatement,
	}
	if err := s.SaveFinancialRecords([]model.FinancialRecord{rec}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	rec.Value = 1100
	if err := s.SaveFinancialRecords([]model.FinancialRecord{rec}); err != nil {
		t.Fatalf("second save: %v", err)
	}
	n, err := s.FinancialCount()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("re-ingestion must upsert in place: count = %d", n)
	}
}

func TestGoalLifecycle(t *testing.T) {
	s := newMemoryStore(t)
	if err := s.AddStrategicGoal("Reduce Churn", "Keep paying customers around", 7); err != nil {
		t.Fatalf("add goal: %v", err)
	}
	goals, err := s.StrategicGoals()
	if err != nil {
		t.Fatalf("load goals: %v", err)
	}
	var added *model.StrategicGoal
	for i := range goals {
		if goals[i].Name == "Reduce Churn" {
			added = &goals[i]
		}
	}
	if added == nil {
		t.Fatal("added goal not returned")
	}
	if err := s.DeleteStrategicGoal(added.ID); err != nil {
		t.Fatalf("delete goal: %v", err)
	}
	goals, _ = s.StrategicGoals()
	for _, g := range goals {
		if g.Name == "Reduce Churn" {
			t.Error("deleted goal still present")
		}
	}
}

func TestRunHistory(t *testing.T) {
	s := newMemoryStore(t)
	if err := s.LogPipelineRun(model.StatusSuccess, 42); err != nil {
		t.Fatalf("log run: %v", err)
	}
	if err := s.LogPipelineRun(model.StatusFailure, 0); err != nil {
		t.Fatalf("log failed run: %v", err)
	}
	if err := s.LogProcessing("batch_20240301_120000", 10, model.StatusSuccess); err != nil {
		t.Fatalf("log processing: %v", err)
	}

	var runs int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM pipeline_runs_history`).Scan(&runs); err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if runs != 2 {
		t.Errorf("expected 2 run rows, got %d", runs)
	}
}
