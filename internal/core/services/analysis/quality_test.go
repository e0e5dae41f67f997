package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/codeval-2025.net/internal/domain"
)

func TestScanComplexityLow(t *testing.T) {
	scanner := NewQualityScanner()

	signals := scanner.Scan("const add = (a, b) => a + b;", domain.LanguageJavaScript)

	assert.Equal(t, domain.ComplexityLow, signals.ComplexityLevel)
}

func TestScanComplexityHigh(t *testing.T) {
	scanner := NewQualityScanner()
	source := strings.Repeat("for (let i = 0; i < n; i++) { if (x) {} }\n", 6)

	signals := scanner.Scan(source, domain.LanguageJavaScript)

	assert.Equal(t, domain.ComplexityHigh, signals.ComplexityLevel)
}

func TestScanReadabilityExcellent(t *testing.T) {
	scanner := NewQualityScanner()
	source := "def f(a):\n    return a\n"

	signals := scanner.Scan(source, domain.LanguagePython)

	assert.Equal(t, domain.ReadabilityExcellent, signals.ReadabilityLevel)
}

func TestScanReadabilityPoor(t *testing.T) {
	scanner := NewQualityScanner()
	source := "x = " + strings.Repeat("1 + ", 60) + "1"

	signals := scanner.Scan(source, domain.LanguagePython)

	assert.Equal(t, domain.ReadabilityPoor, signals.ReadabilityLevel)
}

func TestScanNotedPracticesPerLanguage(t *testing.T) {
	scanner := NewQualityScanner()

	jsSignals := scanner.Scan("const f = async (xs) => xs.map(x => x);", domain.LanguageJavaScript)
	assert.Contains(t, jsSignals.NotedPractices, "uses const/let declarations")
	assert.Contains(t, jsSignals.NotedPractices, "uses arrow functions")
	assert.Contains(t, jsSignals.NotedPractices, "uses async/await")

	pySignals := scanner.Scan("ys = [x * 2 for x in xs]", domain.LanguagePython)
	assert.Contains(t, pySignals.NotedPractices, "uses list comprehensions")
	assert.NotContains(t, pySignals.NotedPractices, "uses arrow functions")
}
