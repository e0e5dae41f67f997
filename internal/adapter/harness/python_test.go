package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codeval-2025.net/internal/domain"
)

func TestPythonPureFunctionHarness(t *testing.T) {
	gen := pythonGenerator{}
	source := "def add(a, b):\n    return a + b"
	testCase := domain.TestCase{Input: []interface{}{2, 3}, ExpectedOutput: 5}

	harness, err := gen.Build(source, "add", testCase)
	require.NoError(t, err)

	assert.Contains(t, harness, source)
	// arguments travel as JSON and are splatted into the call
	assert.Contains(t, harness, `json.loads(r'''[2,3]''')`)
	assert.Contains(t, harness, "add(*__args)")
	assert.Contains(t, harness, `"success": True`)
	assert.Contains(t, harness, "except Exception as __err:")
}

func TestPythonHarnessHandlesBooleansAndNone(t *testing.T) {
	gen := pythonGenerator{}
	testCase := domain.TestCase{Input: []interface{}{true, nil}}

	harness, err := gen.Build("def f(a, b):\n    return a", "f", testCase)
	require.NoError(t, err)

	// JSON true/null are decoded by the driver, never emitted as Python
	// literals.
	assert.Contains(t, harness, `json.loads(r'''[true,null]''')`)
	assert.NotContains(t, harness, "f(true, null)")
}

func TestPythonStatefulHarness(t *testing.T) {
	gen := pythonGenerator{}
	source := "class Cache:\n    def __init__(self, n): pass\n    def put(self, k, v): pass\n    def get(self, k): return -1"
	testCase := domain.TestCase{Input: []interface{}{lruSequence}}

	harness, err := gen.Build(source, "Cache", testCase)
	require.NoError(t, err)

	assert.Contains(t, harness, "__obj = Cache(2)")
	assert.Contains(t, harness, "__obj.put(1, 1)")
	assert.Contains(t, harness, "__results.append(__obj.get(1))")
	assert.Contains(t, harness, `"output": __results`)
}

func TestPythonStatefulHarnessMissingSequence(t *testing.T) {
	gen := pythonGenerator{}

	_, err := gen.Build("class Cache:\n    pass", "Cache", domain.TestCase{})

	assert.ErrorIs(t, err, ErrNoConstructor)
}
