package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codeval-2025.net/internal/domain"
)

func TestBuildHarnessSourceUnsupportedLanguage(t *testing.T) {
	builder := NewBuilder()

	_, err := builder.BuildHarnessSource(domain.LanguageJava, "class A {}", "A", domain.TestCase{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not implemented")
}

func TestIsStatefulProblemByClassDeclaration(t *testing.T) {
	source := "class LRUCache {\n  constructor(capacity) {}\n}"

	assert.True(t, isStatefulProblem(source, "LRUCache"))
	assert.False(t, isStatefulProblem(source, "add"))
}

func TestIsStatefulProblemByNameHint(t *testing.T) {
	// No class declaration in source, but the entry point name marks it.
	assert.True(t, isStatefulProblem("", "MyCache"))
	assert.True(t, isStatefulProblem("", "MinStack"))
	assert.False(t, isStatefulProblem("", "twoSum"))
	assert.False(t, isStatefulProblem("", ""))
}

func TestBuildHarnessSourceDispatchesPerLanguage(t *testing.T) {
	builder := NewBuilder()
	testCase := domain.TestCase{Input: []interface{}{1, 2}, ExpectedOutput: 3}

	jsSource, err := builder.BuildHarnessSource(domain.LanguageJavaScript, "function add(a,b){return a+b;}", "add", testCase)
	require.NoError(t, err)
	assert.Contains(t, jsSource, "console.log(JSON.stringify(")

	pySource, err := builder.BuildHarnessSource(domain.LanguagePython, "def add(a,b):\n    return a+b", "add", testCase)
	require.NoError(t, err)
	assert.Contains(t, pySource, "json.dumps")
}
