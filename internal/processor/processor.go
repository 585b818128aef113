package processor

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"InsightPipe/internal/analyzer"
	"InsightPipe/internal/model"
	"InsightPipe/internal/textutil"
)

// Analysis method labels persisted with each record.
const (
	MethodFallback = "fallback"
	MethodRemote   = "openai"
)

// remoteThreshold is the text length above which the remote engine is
// preferred.
const remoteThreshold = 50

// hedgingIndicators mark ambiguous feedback worth remote analysis.
var hedgingIndicators = []string{"maybe", "perhaps", "not sure", "unclear", "confusing"}

// remoteSources always route to the remote engine.
var remoteSources = map[string]struct{}{"support": {}, "urgent": {}, "critical": {}}

// Processor builds persisted feedback records. Each item is routed either
// to the remote engine or the deterministic rules; any remote error
// degrades to the rules for that concern and is never surfaced.
type Processor struct {
	Rules  *analyzer.RuleEngine
	Remote analyzer.Engine // nil disables remote analysis
	Goals  []model.StrategicGoal

	now func() time.Time
}

// New creates a Processor over the given goal set. remote may be nil.
func New(rules *analyzer.RuleEngine, remote analyzer.Engine, goals []model.StrategicGoal) *Processor {
	return &Processor{Rules: rules, Remote: remote, Goals: goals, now: time.Now}
}

// ProcessBatch analyzes a batch of feedback items. Rows never abort the
// batch; every input yields exactly one record.
func (p *Processor) ProcessBatch(ctx context.Context, inputs []model.FeedbackInput) []model.FeedbackRecord {
	records := make([]model.FeedbackRecord, 0, len(inputs))
	for _, in := range inputs {
		if in.SourceType == "" {
			in.SourceType = "unknown"
		}
		if in.Date == "" {
			in.Date = p.now().Format("2006-01-02")
		}
		records = append(records, p.ProcessOne(ctx, in))
	}
	return records
}

// ProcessOne analyzes a single feedback item and assembles its record.
func (p *Processor) ProcessOne(ctx context.Context, in model.FeedbackInput) model.FeedbackRecord {
	cleaned := textutil.Clean(in.Text)

	method := MethodFallback
	useRemote := p.Remote != nil && shouldUseRemote(in.Text, in.SourceType)
	if useRemote {
		method = MethodRemote
	}

	category, confidence := p.classify(ctx, cleaned, useRemote)
	sentiment := p.scoreSentiment(ctx, cleaned, useRemote)
	alignment := p.scoreAlignment(ctx, cleaned, useRemote)
	entities := p.extractEntities(ctx, cleaned, useRemote)
	priority := analyzer.PriorityScore(confidence, sentiment, alignment, in.SourceType)

	return model.FeedbackRecord{
		ID:                      uuid.NewString(),
		FeedbackText:            in.Text,
		CleanedText:             cleaned,
		SourceType:              in.SourceType,
		Date:                    in.Date,
		Category:                category,
		ConfidenceScore:         confidence,
		SentimentScore:          sentiment,
		StrategicAlignmentScore: alignment,
		PriorityScore:           priority,
		KeyEntities:             entities,
		ProcessedDate:           p.now().Format("2006-01-02 15:04:05"),
		AnalysisMethod:          method,
	}
}

func (p *Processor) classify(ctx context.Context, text string, useRemote bool) (string, float64) {
	if useRemote {
		if cat, conf, err := p.Remote.Classify(ctx, text); err == nil {
			return cat, conf
		} else {
			log.Printf("[WARN] remote classify failed, using rules: %v", err)
		}
	}
	cat, conf, _ := p.Rules.Classify(ctx, text)
	return cat, conf
}

func (p *Processor) scoreSentiment(ctx context.Context, text string, useRemote bool) float64 {
	if useRemote {
		if score, err := p.Remote.ScoreSentiment(ctx, text); err == nil {
			return score
		} else {
			log.Printf("[WARN] remote sentiment failed, using rules: %v", err)
		}
	}
	score, _ := p.Rules.ScoreSentiment(ctx, text)
	return score
}

func (p *Processor) scoreAlignment(ctx context.Context, text string, useRemote bool) float64 {
	if useRemote {
		if score, err := p.Remote.ScoreAlignment(ctx, text, p.Goals); err == nil {
			return score
		} else {
			log.Printf("[WARN] remote alignment failed, using rules: %v", err)
		}
	}
	score, _ := p.Rules.ScoreAlignment(ctx, text, p.Goals)
	return score
}

func (p *Processor) extractEntities(ctx context.Context, text string, useRemote bool) []string {
	if useRemote {
		if entities, err := p.Remote.ExtractEntities(ctx, text); err == nil {
			return entities
		} else {
			log.Printf("[WARN] remote entity extraction failed, using rules: %v", err)
		}
	}
	entities, _ := p.Rules.ExtractEntities(ctx, text)
	return entities
}

// shouldUseRemote routes long, high-stakes, or ambiguous feedback to the
// remote engine.
func shouldUseRemote(text, sourceType string) bool {
	if len(text) > remoteThreshold {
		return true
	}
	if _, ok := remoteSources[strings.ToLower(sourceType)]; ok {
		return true
	}
	lower := strings.ToLower(text)
	for _, ind := range hedgingIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}
