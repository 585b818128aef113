package model

// Pipeline run outcomes recorded in run history.
const (
	StatusSuccess = "SUCCESS"
	StatusFailure = "FAILURE"
)

// RunResult summarizes one financial pipeline run.
type RunResult struct {
	Status           string
	RecordsProcessed int
	Message          string
}

// BatchResult summarizes one feedback batch run.
type BatchResult struct {
	BatchID          string
	Status           string
	RecordsProcessed int
}
