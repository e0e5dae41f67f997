// Package analysis implements the static heuristic scans over submission
// source. Both scanners are stateless, advisory, and never influence
// pass/fail. Every heuristic lives in a pattern table so new ones are added
// as data, not control flow.
package analysis

import (
	"regexp"

	"gitlab.com/codeval-2025.net/internal/domain"
)

// complexityPattern contributes its match count to the complexity score.
type complexityPattern struct {
	name    string
	pattern *regexp.Regexp
}

var complexityPatterns = []complexityPattern{
	{"for loop", regexp.MustCompile(`\bfor\b`)},
	{"while loop", regexp.MustCompile(`\bwhile\b`)},
	{"conditional", regexp.MustCompile(`\bif\b`)},
	{"switch", regexp.MustCompile(`\bswitch\b`)},
	{"function declaration", regexp.MustCompile(`\bfunction\b|\bdef\b`)},
	{"lambda", regexp.MustCompile(`=>|\blambda\b`)},
}

// practicePattern adds an informational note when a language idiom appears.
type practicePattern struct {
	language domain.Language // empty matches every language
	note     string
	pattern  *regexp.Regexp
}

var practicePatterns = []practicePattern{
	{domain.LanguageJavaScript, "uses const/let declarations", regexp.MustCompile(`\b(const|let)\s`)},
	{domain.LanguageJavaScript, "uses arrow functions", regexp.MustCompile(`=>`)},
	{domain.LanguageJavaScript, "uses async/await", regexp.MustCompile(`\basync\b|\bawait\b`)},
	{domain.LanguageJavaScript, "uses array methods over manual loops", regexp.MustCompile(`\.(map|filter|reduce)\(`)},
	{domain.LanguagePython, "uses list comprehensions", regexp.MustCompile(`\[[^\]]+\bfor\b[^\]]+\]`)},
	{domain.LanguagePython, "uses f-strings", regexp.MustCompile(`\bf["']`)},
	{domain.LanguagePython, "uses type hints", regexp.MustCompile(`\bdef\s+\w+\([^)]*:\s*\w+`)},
	{domain.LanguageJava, "uses streams", regexp.MustCompile(`\.stream\(\)`)},
}

// suspicionPattern trips an authorship flag and records a reviewer note.
type suspicionPattern struct {
	note       string
	copyPaste  bool
	aiAssisted bool
	pattern    *regexp.Regexp
}

var suspicionPatterns = []suspicionPattern{
	{
		note:      "comment contains a URL",
		copyPaste: true,
		pattern:   regexp.MustCompile(`(//|#).*https?://`),
	},
	{
		note:      "references a coding platform",
		copyPaste: true,
		pattern:   regexp.MustCompile(`(?i)\b(leetcode|geeksforgeeks|stackoverflow|hackerrank|codeforces)\b`),
	},
	{
		note:      "attribution comment present",
		copyPaste: true,
		pattern:   regexp.MustCompile(`(?i)(//|#)\s*(source|taken from|copied from|credit|courtesy)`),
	},
	{
		note:       "leftover debug scaffolding",
		copyPaste:  true,
		pattern:    regexp.MustCompile(`console\.log\(['"](debug|test|here)|print\(['"](debug|test|here)`),
	},
	{
		note:       "extensive doc-comment blocks",
		aiAssisted: true,
		pattern:    regexp.MustCompile(`/\*\*[\s\S]{200,}?\*/|"""[\s\S]{200,}?"""`),
	},
	{
		note:       "first-person explanatory prose",
		aiAssisted: true,
		pattern:    regexp.MustCompile(`(?i)(//|#)\s*(I|we)\s+(will|use|chose|first|then|need)`),
	},
	{
		note:       "step-by-step narrated comments",
		aiAssisted: true,
		pattern:    regexp.MustCompile(`(?i)(//|#)\s*step\s*\d`),
	},
}

// commentRatioThreshold: above this comment-to-code line ratio the code is
// more narration than implementation, which reads as generated boilerplate.
const commentRatioThreshold = 0.3
