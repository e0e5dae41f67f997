package domain

// ComplexityLevel classifies how much control flow a submission carries
type ComplexityLevel string

const (
	ComplexityLow    ComplexityLevel = "low"
	ComplexityMedium ComplexityLevel = "medium"
	ComplexityHigh   ComplexityLevel = "high"
)

// ReadabilityLevel classifies a submission by its line-length profile
type ReadabilityLevel string

const (
	ReadabilityPoor      ReadabilityLevel = "poor"
	ReadabilityGood      ReadabilityLevel = "good"
	ReadabilityExcellent ReadabilityLevel = "excellent"
)

// QualitySignals carries the informational output of the quality scan.
// It never influences pass/fail.
type QualitySignals struct {
	ComplexityLevel  ComplexityLevel  `json:"complexityLevel"`
	ReadabilityLevel ReadabilityLevel `json:"readabilityLevel"`
	NotedPractices   []string         `json:"notedPractices"`
}

// SuspicionSignals carries advisory authorship signals for a human reviewer.
type SuspicionSignals struct {
	PossibleCopyPaste    bool     `json:"possibleCopyPaste"`
	PossibleAIAssistance bool     `json:"possibleAIAssistance"`
	NotedPatterns        []string `json:"notedPatterns"`
}
