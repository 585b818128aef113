package analyzer

import (
	"context"
	"math"
	"regexp"
	"strings"

	"InsightPipe/internal/model"
)

// Category is one taxonomy entry: a name and the keyword substrings that
// vote for it.
type Category struct {
	Name     string
	Keywords []string
}

// DefaultTaxonomy is the fixed feedback taxonomy. Order matters: on equal
// scores the earlier category keeps the lead.
var DefaultTaxonomy = []Category{
	{"User Interface", []string{
		"ui", "interface", "design", "layout", "button", "menu", "navigation",
		"screen", "page", "visual", "appearance", "look", "feel",
	}},
	{"Performance", []string{
		"slow", "fast", "speed", "performance", "loading", "lag", "delay",
		"response time", "bottleneck", "optimization",
	}},
	{"Functionality", []string{
		"feature", "function", "capability", "tool", "option", "setting",
		"configuration", "customization", "workflow",
	}},
	{"Data & Analytics", []string{
		"data", "analytics", "report", "chart", "graph", "visualization",
		"dashboard", "metrics", "statistics", "export", "import",
	}},
	{"User Experience", []string{
		"experience", "usability", "user-friendly", "intuitive", "easy",
		"simple", "complicated", "confusing", "frustrating",
	}},
	{"Technical Issues", []string{
		"bug", "error", "crash", "broken", "not working", "issue",
		"problem", "glitch", "failure", "exception",
	}},
	{"Mobile", []string{
		"mobile", "app", "phone", "tablet", "ios", "android", "responsive",
		"touch", "swipe", "gesture",
	}},
	{"Integration", []string{
		"integration", "api", "connect", "sync", "import", "export",
		"third-party", "external", "webhook",
	}},
}

var (
	capitalizedWord = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
	numericToken    = regexp.MustCompile(`\b\d+\b`)
)

// featureKeywords are generic feature names collected as entities when they
// appear verbatim in the text.
var featureKeywords = []string{"feature", "function", "tool", "option", "setting", "button", "menu"}

// RuleEngine is the deterministic, keyword-based analysis engine. It is
// the fallback for every remote-backed engine and never fails.
type RuleEngine struct {
	Taxonomy []Category
}

// NewRuleEngine creates a rule engine over the default taxonomy.
func NewRuleEngine() *RuleEngine {
	return &RuleEngine{Taxonomy: DefaultTaxonomy}
}

func (e *RuleEngine) Name() string { return "rules" }

// Classify picks the category with the highest keyword-match density.
// Matching is substring containment; scores are normalized by keyword-set
// size so large categories do not dominate. Zero matches everywhere yields
// Uncategorized with confidence 0.
func (e *RuleEngine) Classify(_ context.Context, text string) (string, float64, error) {
	if text == "" {
		return Uncategorized, 0.0, nil
	}

	best := Uncategorized
	bestScore := 0.0
	for _, cat := range e.Taxonomy {
		matches := 0
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) {
				matches++
			}
		}
		normalized := float64(matches) / float64(len(cat.Keywords))
		if normalized > bestScore {
			bestScore = normalized
			best = cat.Name
		}
	}
	return best, math.Min(bestScore*10, 10.0), nil
}

// ScoreAlignment scores how well the text matches the strategic goals.
// Each matching goal contributes (matches/keywords)*weight; goals with no
// match contribute to neither the score nor the weight total.
func (e *RuleEngine) ScoreAlignment(_ context.Context, text string, goals []model.StrategicGoal) (float64, error) {
	if text == "" {
		return 0.0, nil
	}

	var totalScore, totalWeight float64
	for _, g := range goals {
		if len(g.Keywords) == 0 {
			continue
		}
		matches := 0
		for _, kw := range g.Keywords {
			if strings.Contains(text, kw) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		totalScore += float64(matches) / float64(len(g.Keywords)) * float64(g.Weight)
		totalWeight += float64(g.Weight)
	}
	if totalWeight == 0 {
		return 0.0, nil
	}
	return round2(math.Min(totalScore/totalWeight*10, 10.0)), nil
}

// ExtractEntities collects up to 3 capitalized tokens, any generic feature
// keywords present, and up to 2 numeric tokens, deduplicated.
func (e *RuleEngine) ExtractEntities(_ context.Context, text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}

	var entities []string

	products := capitalizedWord.FindAllString(text, -1)
	if len(products) > 3 {
		products = products[:3]
	}
	entities = append(entities, products...)

	for _, kw := range featureKeywords {
		if strings.Contains(text, kw) {
			entities = append(entities, kw)
		}
	}

	numbers := numericToken.FindAllString(text, -1)
	if len(numbers) > 2 {
		numbers = numbers[:2]
	}
	entities = append(entities, numbers...)

	seen := make(map[string]struct{}, len(entities))
	out := entities[:0]
	for _, ent := range entities {
		if _, dup := seen[ent]; dup {
			continue
		}
		seen[ent] = struct{}{}
		out = append(out, ent)
	}
	return out, nil
}
