package analysis

import (
	"strings"

	"gitlab.com/codeval-2025.net/internal/domain"
)

// SuspicionScanner flags authorship signals for a human reviewer. It is not
// a rejection mechanism.
type SuspicionScanner struct{}

// NewSuspicionScanner creates a suspicion scanner.
func NewSuspicionScanner() *SuspicionScanner {
	return &SuspicionScanner{}
}

// Scan produces the suspicion signal bag for one submission.
func (s *SuspicionScanner) Scan(sourceText string) domain.SuspicionSignals {
	signals := domain.SuspicionSignals{NotedPatterns: make([]string, 0)}

	for _, sp := range suspicionPatterns {
		if !sp.pattern.MatchString(sourceText) {
			continue
		}
		signals.NotedPatterns = append(signals.NotedPatterns, sp.note)
		if sp.copyPaste {
			signals.PossibleCopyPaste = true
		}
		if sp.aiAssisted {
			signals.PossibleAIAssistance = true
		}
	}

	if ratio := commentRatio(sourceText); ratio > commentRatioThreshold {
		signals.NotedPatterns = append(signals.NotedPatterns, "high comment-to-code ratio")
	}

	return signals
}

// commentRatio counts whole-line comments against code lines.
func commentRatio(sourceText string) float64 {
	comments, code := 0, 0
	for _, line := range strings.Split(sourceText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "/*") {
			comments++
		} else {
			code++
		}
	}
	if code == 0 {
		return 0
	}
	return float64(comments) / float64(code)
}
