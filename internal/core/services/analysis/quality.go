package analysis

import (
	"strings"

	"gitlab.com/codeval-2025.net/internal/domain"
)

// Complexity and readability classification thresholds.
const (
	complexityHighThreshold   = 10
	complexityMediumThreshold = 5
	lineLengthPoorThreshold   = 120
	lineLengthGoodThreshold   = 40
)

// QualityScanner classifies complexity and readability from textual
// structure alone; it never parses or executes the code.
type QualityScanner struct{}

// NewQualityScanner creates a quality scanner.
func NewQualityScanner() *QualityScanner {
	return &QualityScanner{}
}

// Scan produces the quality signal bag for one submission.
func (s *QualityScanner) Scan(sourceText string, language domain.Language) domain.QualitySignals {
	return domain.QualitySignals{
		ComplexityLevel:  classifyComplexity(sourceText),
		ReadabilityLevel: classifyReadability(sourceText),
		NotedPractices:   notedPractices(sourceText, language),
	}
}

func classifyComplexity(sourceText string) domain.ComplexityLevel {
	score := 0
	for _, cp := range complexityPatterns {
		score += len(cp.pattern.FindAllStringIndex(sourceText, -1))
	}
	switch {
	case score > complexityHighThreshold:
		return domain.ComplexityHigh
	case score > complexityMediumThreshold:
		return domain.ComplexityMedium
	default:
		return domain.ComplexityLow
	}
}

func classifyReadability(sourceText string) domain.ReadabilityLevel {
	total, count := 0, 0
	for _, line := range strings.Split(sourceText, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total += len(line)
		count++
	}
	if count == 0 {
		return domain.ReadabilityGood
	}
	mean := float64(total) / float64(count)
	switch {
	case mean > lineLengthPoorThreshold:
		return domain.ReadabilityPoor
	case mean < lineLengthGoodThreshold:
		return domain.ReadabilityExcellent
	default:
		return domain.ReadabilityGood
	}
}

func notedPractices(sourceText string, language domain.Language) []string {
	practices := make([]string, 0)
	for _, pp := range practicePatterns {
		if pp.language != "" && pp.language != language {
			continue
		}
		if pp.pattern.MatchString(sourceText) {
			practices = append(practices, pp.note)
		}
	}
	return practices
}
