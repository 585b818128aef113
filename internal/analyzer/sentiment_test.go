package analyzer

import (
	"context"
	"testing"
)

func TestScoreSentiment(t *testing.T) {
	e := NewRuleEngine()
	ctx := context.Background()

	empty, err := e.ScoreSentiment(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty != NeutralSentiment {
		t.Errorf("empty text sentiment = %.2f; want %.1f", empty, NeutralSentiment)
	}

	pos, _ := e.ScoreSentiment(ctx, "the new dashboard is excellent and the export is great")
	if pos <= 5.0 {
		t.Errorf("positive text sentiment = %.2f; want > 5.0", pos)
	}

	neg, _ := e.ScoreSentiment(ctx, "this is terrible the app is broken and slow")
	if neg >= 5.0 {
		t.Errorf("negative text sentiment = %.2f; want < 5.0", neg)
	}

	neutral, _ := e.ScoreSentiment(ctx, "the invoice arrived on tuesday")
	if neutral != 5.0 {
		t.Errorf("text without sentiment words = %.2f; want 5.0", neutral)
	}
}

func TestScoreSentimentNegation(t *testing.T) {
	e := NewRuleEngine()
	negated, _ := e.ScoreSentiment(context.Background(), "this is not good")
	if negated >= 5.0 {
		t.Errorf("negated positive = %.2f; want < 5.0", negated)
	}
}

func TestScoreSentimentRange(t *testing.T) {
	e := NewRuleEngine()
	inputs := []string{
		"excellent excellent excellent perfect best",
		"terrible awful horrible worst hate",
		"mixed good bad great terrible",
	}
	for _, in := range inputs {
		got, _ := e.ScoreSentiment(context.Background(), in)
		if got < 0 || got > 10 {
			t.Errorf("ScoreSentiment(%q) = %.2f out of [0,10]", in, got)
		}
	}
}
