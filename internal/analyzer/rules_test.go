package analyzer

import (
	"context"
	"testing"

	"InsightPipe/internal/model"
)

func TestClassify(t *testing.T) {
	e := NewRuleEngine()
	ctx := context.Background()

	tests := []struct {
		text     string
		category string
	}{
		{"the button layout and menu design feel cluttered", "User Interface"},
		{"loading is slow and there is a lot of lag", "Performance"},
		{"the quarterly zebra migration was uneventful", Uncategorized},
		{"", Uncategorized},
	}
	for _, tt := range tests {
		got, conf, err := e.Classify(ctx, tt.text)
		if err != nil {
			t.Fatalf("Classify(%q): unexpected error: %v", tt.text, err)
		}
		if got != tt.category {
			t.Errorf("Classify(%q) = %q; want %q", tt.text, got, tt.category)
		}
		if conf < 0 || conf > 10 {
			t.Errorf("Classify(%q) confidence %.2f out of range", tt.text, conf)
		}
		if tt.category == Uncategorized && conf != 0 {
			t.Errorf("Classify(%q): Uncategorized must carry confidence 0, got %.2f", tt.text, conf)
		}
	}
}

func TestClassifyTieBreakFirstWins(t *testing.T) {
	e := &RuleEngine{Taxonomy: []Category{
		{"First", []string{"alpha", "beta"}},
		{"Second", []string{"alpha", "beta"}},
	}}
	got, _, _ := e.Classify(context.Background(), "alpha and beta")
	if got != "First" {
		t.Errorf("tie should keep the earlier category, got %q", got)
	}
}

func TestScoreAlignment(t *testing.T) {
	e := NewRuleEngine()
	ctx := context.Background()

	// No goal keyword present.
	score, err := e.ScoreAlignment(ctx, "the zebra migration was uneventful", DefaultGoals)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0.0 {
		t.Errorf("no-match alignment = %.2f; want 0.0", score)
	}

	// All keywords of the highest-weight goal (Optimize Performance, weight 9).
	high, _ := e.ScoreAlignment(ctx, "slow performance speed loading optimization", DefaultGoals)
	// One keyword of a lower-weight goal (Improve Mobile Experience, weight 6).
	low, _ := e.ScoreAlignment(ctx, "the phone is fine", DefaultGoals)
	if high <= low {
		t.Errorf("full high-weight match %.2f should beat partial low-weight match %.2f", high, low)
	}
	if high < 0 || high > 10 || low < 0 || low > 10 {
		t.Errorf("alignment out of range: high=%.2f low=%.2f", high, low)
	}
}

func TestScoreAlignmentGoalWithoutKeywords(t *testing.T) {
	e := NewRuleEngine()
	goals := AttachKeywords([]model.StrategicGoal{
		{Name: "Optimize Performance", Weight: 9},
		{Name: "Ship The Roadmap", Weight: 5}, // no keyword set known, must stay inert
	})
	score, _ := e.ScoreAlignment(context.Background(), "slow loading", goals)
	if score <= 0 {
		t.Errorf("known goal should still match after AttachKeywords, got %.2f", score)
	}
}

func TestExtractEntities(t *testing.T) {
	e := NewRuleEngine()
	ctx := context.Background()

	entities, err := e.ExtractEntities(ctx, "Acme Dashboard export feature takes 30 seconds and 4 retries")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]bool{"Acme": true, "Dashboard": true, "feature": true, "30": true, "4": true}
	for _, ent := range entities {
		if !want[ent] {
			t.Errorf("unexpected entity %q", ent)
		}
	}
	if len(entities) != len(want) {
		t.Errorf("got %d entities %v; want %d", len(entities), entities, len(want))
	}
}

func TestExtractEntitiesLimitsAndDedup(t *testing.T) {
	e := NewRuleEngine()
	ctx := context.Background()

	// Four capitalized words: only the first three survive.
	entities, _ := e.ExtractEntities(ctx, "Alpha Bravo Charlie Delta")
	if len(entities) != 3 {
		t.Errorf("capitalized tokens should cap at 3, got %v", entities)
	}

	// Three numbers: only the first two survive.
	entities, _ = e.ExtractEntities(ctx, "10 20 30")
	if len(entities) != 2 {
		t.Errorf("numeric tokens should cap at 2, got %v", entities)
	}

	// Duplicates collapse.
	entities, _ = e.ExtractEntities(ctx, "the menu menu button")
	counts := map[string]int{}
	for _, ent := range entities {
		counts[ent]++
	}
	for ent, n := range counts {
		if n > 1 {
			t.Errorf("entity %q appears %d times; want deduplicated", ent, n)
		}
	}
}
