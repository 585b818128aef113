package analyzer

import "InsightPipe/internal/model"

// DefaultGoals is the seed set of strategic goals. The store persists
// name, description and weight; keyword sets live here so that matching
// stays configuration, not schema.
var DefaultGoals = []model.StrategicGoal{
	{
		Name:        "Improve User Onboarding",
		Description: "Enhance the first-time user experience",
		Weight:      8,
		Keywords:    []string{"onboarding", "first time", "new user", "tutorial", "guide"},
	},
	{
		Name:        "Enhance Data Visualization",
		Description: "Improve charts, graphs, and reporting features",
		Weight:      7,
		Keywords:    []string{"chart", "graph", "visualization", "dashboard", "report"},
	},
	{
		Name:        "Optimize Performance",
		Description: "Improve system speed and responsiveness",
		Weight:      9,
		Keywords:    []string{"slow", "performance", "speed", "loading", "optimization"},
	},
	{
		Name:        "Improve Mobile Experience",
		Description: "Enhance mobile app functionality",
		Weight:      6,
		Keywords:    []string{"mobile", "app", "phone", "responsive", "touch"},
	},
	{
		Name:        "Enhance Security",
		Description: "Strengthen authentication and data protection",
		Weight:      8,
		Keywords:    []string{"security", "privacy", "authentication", "login", "password"},
	},
}

// AttachKeywords fills in keyword sets for goals loaded from the store,
// matched by goal name. Goals without a known keyword set keep an empty
// set and never match, so they contribute nothing to alignment.
func AttachKeywords(goals []model.StrategicGoal) []model.StrategicGoal {
	byName := make(map[string][]string, len(DefaultGoals))
	for _, g := range DefaultGoals {
		byName[g.Name] = g.Keywords
	}
	for i := range goals {
		if len(goals[i].Keywords) == 0 {
			goals[i].Keywords = byName[goals[i].Name]
		}
	}
	return goals
}
