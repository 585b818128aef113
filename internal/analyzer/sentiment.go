package analyzer

import (
	"context"
	"strings"
)

// polarityLexicon maps sentiment-bearing words to a polarity in [-1, 1].
var polarityLexicon = map[string]float64{
	// positive
	"amazing": 0.9, "awesome": 0.9, "excellent": 1.0, "fantastic": 0.9,
	"great": 0.8, "love": 0.8, "perfect": 1.0, "best": 1.0,
	"good": 0.7, "helpful": 0.6, "nice": 0.6, "useful": 0.5,
	"easy": 0.4, "intuitive": 0.5, "fast": 0.4, "smooth": 0.5,
	"reliable": 0.5, "clean": 0.4, "like": 0.3, "improved": 0.4,
	"better": 0.4, "responsive": 0.4,
	// negative
	"terrible": -1.0, "awful": -1.0, "horrible": -1.0, "worst": -1.0,
	"hate": -0.8, "broken": -0.7, "crash": -0.7, "crashes": -0.7,
	"bad": -0.7, "useless": -0.8, "frustrating": -0.7, "annoying": -0.6,
	"confusing": -0.5, "difficult": -0.5, "slow": -0.4, "poor": -0.6,
	"bug": -0.5, "bugs": -0.5, "error": -0.4, "errors": -0.4,
	"fail": -0.6, "fails": -0.6, "failure": -0.6, "problem": -0.4,
	"problems": -0.4, "issue": -0.3, "issues": -0.3, "lag": -0.4,
	"missing": -0.3, "worse": -0.5,
}

// negators flip the polarity of the following sentiment word.
var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "cannot": {}, "cant": {}, "dont": {}, "doesnt": {}, "isnt": {}, "wont": {},
}

// ScoreSentiment maps text polarity onto a 0-10 scale where 5 is neutral.
// Empty text scores neutral; the rule engine has no failure mode.
func (e *RuleEngine) ScoreSentiment(_ context.Context, text string) (float64, error) {
	if text == "" {
		return NeutralSentiment, nil
	}
	p := polarity(text)
	return round2((p + 1) * 5), nil
}

// polarity averages lexicon polarity over sentiment-bearing tokens,
// flipping sign after a negator. Returns 0 when no token is recognized.
func polarity(text string) float64 {
	tokens := strings.Fields(text)
	var sum float64
	var hits int
	negate := false
	for _, tok := range tokens {
		if _, isNeg := negators[tok]; isNeg {
			negate = true
			continue
		}
		if p, ok := polarityLexicon[tok]; ok {
			if negate {
				p = -p
			}
			sum += p
			hits++
		}
		negate = false
	}
	if hits == 0 {
		return 0
	}
	return sum / float64(hits)
}
