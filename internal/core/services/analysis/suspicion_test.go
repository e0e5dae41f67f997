package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanCleanSource(t *testing.T) {
	scanner := NewSuspicionScanner()

	signals := scanner.Scan("function add(a, b) { return a + b; }")

	assert.False(t, signals.PossibleCopyPaste)
	assert.False(t, signals.PossibleAIAssistance)
	assert.Empty(t, signals.NotedPatterns)
}

func TestScanURLInComment(t *testing.T) {
	scanner := NewSuspicionScanner()

	signals := scanner.Scan("// from https://example.com/solutions\nfunction f() {}")

	assert.True(t, signals.PossibleCopyPaste)
	assert.Contains(t, signals.NotedPatterns, "comment contains a URL")
}

func TestScanPlatformReference(t *testing.T) {
	scanner := NewSuspicionScanner()

	signals := scanner.Scan("# LeetCode 146 solution\ndef f(): pass")

	assert.True(t, signals.PossibleCopyPaste)
	assert.Contains(t, signals.NotedPatterns, "references a coding platform")
}

func TestScanFirstPersonProse(t *testing.T) {
	scanner := NewSuspicionScanner()

	signals := scanner.Scan("// I will use a hash map to track counts\nfunction f() {}")

	assert.True(t, signals.PossibleAIAssistance)
	assert.Contains(t, signals.NotedPatterns, "first-person explanatory prose")
}

func TestScanCommentRatio(t *testing.T) {
	scanner := NewSuspicionScanner()
	source := "// a\n// b\n// c\n// d\nlet x = 1;\nlet y = 2;\n"

	signals := scanner.Scan(source)

	assert.Contains(t, signals.NotedPatterns, "high comment-to-code ratio")
}
