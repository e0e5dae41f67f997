package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Language identifies the language a submission is written in.
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguagePython     Language = "python"
	LanguageJava       Language = "java"
)

// DefaultTimeLimitMs applies when a submission does not carry its own limit.
const DefaultTimeLimitMs int64 = 5000

// CodeSubmission represents candidate code to be evaluated against test cases
type CodeSubmission struct {
	ID          uuid.UUID  `json:"id"`
	SourceText  string     `json:"sourceText"`
	Language    Language   `json:"language"`
	EntryPoint  string     `json:"entryPoint"`
	TestCases   []TestCase `json:"testCases"`
	TimeLimitMs int64      `json:"timeLimitMs,omitempty"`
	SubmittedAt time.Time  `json:"submittedAt"`
}

// NewCodeSubmission creates a new submission
func NewCodeSubmission(sourceText string, language Language, entryPoint string, testCases []TestCase) *CodeSubmission {
	return &CodeSubmission{
		ID:          uuid.New(),
		SourceText:  sourceText,
		Language:    language,
		EntryPoint:  entryPoint,
		TestCases:   testCases,
		SubmittedAt: time.Now(),
	}
}

// TimeLimit returns the per-test-case time limit, falling back to the default.
func (s *CodeSubmission) TimeLimit() time.Duration {
	limit := s.TimeLimitMs
	if limit <= 0 {
		limit = DefaultTimeLimitMs
	}
	return time.Duration(limit) * time.Millisecond
}

// Fingerprint returns a stable digest of everything that determines the
// evaluation result: language, entry point, source and test cases.
func (s *CodeSubmission) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte(s.Language))
	h.Write([]byte{0})
	h.Write([]byte(s.EntryPoint))
	h.Write([]byte{0})
	h.Write([]byte(s.SourceText))
	h.Write([]byte{0})
	if cases, err := json.Marshal(s.TestCases); err == nil {
		h.Write(cases)
	}
	return hex.EncodeToString(h.Sum(nil))
}
