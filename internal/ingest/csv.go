package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"InsightPipe/internal/model"
)

// ReadFeedbackCSV loads a feedback batch from a CSV file. The header must
// contain feedback_text; source_type and date are optional and default
// downstream ("unknown" and the processing date).
func ReadFeedbackCSV(path string) ([]model.FeedbackInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feedback csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	textCol, ok := cols["feedback_text"]
	if !ok {
		return nil, fmt.Errorf("csv missing required feedback_text column")
	}

	get := func(row []string, col string) string {
		if i, ok := cols[col]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var inputs []model.FeedbackInput
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if textCol >= len(row) {
			continue
		}
		inputs = append(inputs, model.FeedbackInput{
			Text:       strings.TrimSpace(row[textCol]),
			SourceType: get(row, "source_type"),
			Date:       get(row, "date"),
		})
	}
	return inputs, nil
}
