package model

// FeedbackInput is one raw feedback row before analysis.
type FeedbackInput struct {
	Text       string
	SourceType string
	Date       string
}

// FeedbackRecord is the analyzed, persisted form of one feedback item.
// All four scores are in the 0-10 range; PriorityScore is derived from
// the other three plus the source type.
type FeedbackRecord struct {
	ID                      string
	FeedbackText            string
	CleanedText             string
	SourceType              string
	Date                    string
	Category                string
	ConfidenceScore         float64
	SentimentScore          float64
	StrategicAlignmentScore float64
	PriorityScore           float64
	KeyEntities             []string
	ProcessedDate           string
	AnalysisMethod          string
}

// StrategicGoal is a named business priority. Keywords drive the alignment
// scorer; Weight is an integer priority multiplier.
type StrategicGoal struct {
	ID          int64
	Name        string
	Description string
	Weight      int
	Keywords    []string
	CreatedDate string
}
