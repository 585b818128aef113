package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"InsightPipe/internal/model"
)

// enhancedCategories extends the keyword taxonomy with descriptions for
// the model prompt, plus two categories the rule taxonomy cannot separate.
var enhancedCategories = []struct {
	Name        string
	Description string
}{
	{"User Interface", "UI/UX design, layout, buttons, menus, visual elements"},
	{"Performance", "Speed, loading times, responsiveness, optimization"},
	{"Functionality", "Features, tools, capabilities, workflow"},
	{"Data & Analytics", "Reports, charts, dashboards, data visualization"},
	{"User Experience", "Usability, ease of use, user journey, accessibility"},
	{"Technical Issues", "Bugs, errors, crashes, system problems"},
	{"Mobile", "Mobile app, phone, tablet, responsive design"},
	{"Integration", "APIs, third-party connections, data sync"},
	{"Security", "Authentication, privacy, data protection, login"},
	{"Support", "Customer service, help, documentation, training"},
}

// OpenAIEngine analyzes feedback with chat completions. Every call is a
// single attempt with no retry; callers fall back to the rule engine on
// any error.
type OpenAIEngine struct {
	client *openai.Client
	model  string
}

// NewOpenAIEngine creates a remote engine. An empty model defaults to
// gpt-3.5-turbo.
func NewOpenAIEngine(apiKey, modelName string) *OpenAIEngine {
	if modelName == "" {
		modelName = openai.GPT3Dot5Turbo
	}
	return &OpenAIEngine{client: openai.NewClient(apiKey), model: modelName}
}

func (e *OpenAIEngine) Name() string { return "openai" }

func (e *OpenAIEngine) complete(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Messages:    []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Classify asks the model for a category and a 0-10 confidence score.
func (e *OpenAIEngine) Classify(ctx context.Context, text string) (string, float64, error) {
	var sb strings.Builder
	sb.WriteString("Categorize this feedback into the most appropriate category from the following list:\n\nCategories:\n")
	for _, c := range enhancedCategories {
		fmt.Fprintf(&sb, "- %s: %s\n", c.Name, c.Description)
	}
	fmt.Fprintf(&sb, "\nFeedback: %q\n\nRespond with only the category name and a confidence score (0-10) separated by a comma.\nExample: \"User Interface, 8.5\"", text)

	result, err := e.complete(ctx, sb.String(), 50, 0.3)
	if err != nil {
		return "", 0, err
	}

	idx := strings.LastIndex(result, ",")
	if idx < 0 {
		return "", 0, fmt.Errorf("malformed classification %q", result)
	}
	category := strings.Trim(result[:idx], ` "`)
	confidence, err := strconv.ParseFloat(strings.TrimSpace(result[idx+1:]), 64)
	if err != nil {
		return "", 0, fmt.Errorf("parse confidence from %q: %w", result, err)
	}
	if confidence > 10 {
		confidence = 10
	}
	if confidence < 0 {
		confidence = 0
	}
	return category, confidence, nil
}

// ScoreSentiment asks the model for a 0-10 sentiment score where 5 is
// neutral.
func (e *OpenAIEngine) ScoreSentiment(ctx context.Context, text string) (float64, error) {
	prompt := fmt.Sprintf(`Analyze the sentiment of this feedback and provide a score from 0 to 10.

Scoring guide:
- 0-2: Very negative (urgent problems, frustration)
- 3-4: Negative (issues to address)
- 5: Neutral (informational)
- 6-7: Positive (suggestions, improvements)
- 8-10: Very positive (praise, satisfaction)

Consider context, sarcasm, and emotional tone.

Feedback: %q

Respond with only the numerical score (0-10).`, text)

	result, err := e.complete(ctx, prompt, 10, 0.1)
	if err != nil {
		return 0, err
	}
	score, err := strconv.ParseFloat(result, 64)
	if err != nil {
		return 0, fmt.Errorf("parse sentiment from %q: %w", result, err)
	}
	return clamp(score, 0, 10), nil
}

// ScoreAlignment asks the model for a 0-10 alignment score against the
// current strategic goals.
func (e *OpenAIEngine) ScoreAlignment(ctx context.Context, text string, goals []model.StrategicGoal) (float64, error) {
	var sb strings.Builder
	for _, g := range goals {
		fmt.Fprintf(&sb, "- %s: %s (Weight: %d)\n", g.Name, g.Description, g.Weight)
	}

	prompt := fmt.Sprintf(`Analyze how well this feedback aligns with our strategic goals and provide a score from 0 to 10.

Strategic Goals:
%s
Feedback: %q

Consider:
1. How directly the feedback relates to our strategic goals
2. The potential impact on business objectives
3. The urgency and importance of addressing this feedback

Respond with only the numerical score (0-10).`, sb.String(), text)

	result, err := e.complete(ctx, prompt, 10, 0.2)
	if err != nil {
		return 0, err
	}
	score, err := strconv.ParseFloat(result, 64)
	if err != nil {
		return 0, fmt.Errorf("parse alignment from %q: %w", result, err)
	}
	return clamp(score, 0, 10), nil
}

// ExtractEntities asks the model for a JSON array of key entities, capped
// at 5.
func (e *OpenAIEngine) ExtractEntities(ctx context.Context, text string) ([]string, error) {
	prompt := fmt.Sprintf(`Extract key entities from this feedback text. Focus on:
- Product names and features
- User types (e.g., "enterprise users", "developers")
- Technical terms and technologies
- Specific issues or requests

Feedback: %q

Return a JSON array of entities. Example: ["mobile app", "loading time", "enterprise users"]`, text)

	result, err := e.complete(ctx, prompt, 100, 0.1)
	if err != nil {
		return nil, err
	}

	var entities []string
	if err := json.Unmarshal([]byte(result), &entities); err != nil {
		// Not valid JSON; split the bracketed list by hand.
		for _, part := range strings.Split(strings.Trim(result, "[]"), ",") {
			if ent := strings.Trim(part, ` "`); ent != "" {
				entities = append(entities, ent)
			}
		}
	}
	if len(entities) > 5 {
		entities = entities[:5]
	}
	return entities, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
