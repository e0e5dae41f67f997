package handlers

import (
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/codeval-2025.net/internal/domain"
)

// EvaluateRequest represents a request to evaluate a submission
type EvaluateRequest struct {
	SourceText  string            `json:"sourceText"`
	Language    string            `json:"language"`
	EntryPoint  string            `json:"entryPoint"`
	TestCases   []domain.TestCase `json:"testCases"`
	TimeLimitMs int64             `json:"timeLimitMs,omitempty"`
}

// EvaluateResponse represents a response to an evaluate request
type EvaluateResponse struct {
	SubmissionID uuid.UUID                `json:"submissionId"`
	Cached       bool                     `json:"cached"`
	Report       *domain.SubmissionReport `json:"report"`
}

func (r *EvaluateRequest) validate() error {
	if r.SourceText == "" {
		return fmt.Errorf("sourceText is required")
	}
	if r.Language == "" {
		return fmt.Errorf("language is required")
	}
	if r.EntryPoint == "" {
		return fmt.Errorf("entryPoint is required")
	}
	if len(r.TestCases) == 0 {
		return fmt.Errorf("at least one test case is required")
	}
	return nil
}

func (r *EvaluateRequest) toSubmission() *domain.CodeSubmission {
	submission := domain.NewCodeSubmission(r.SourceText, domain.Language(r.Language), r.EntryPoint, r.TestCases)
	submission.TimeLimitMs = r.TimeLimitMs
	return submission
}
