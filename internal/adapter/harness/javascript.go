package harness

import (
	"encoding/json"
	"fmt"
	"strings"

	"gitlab.com/codeval-2025.net/internal/domain"
)

// javascriptGenerator emits a Node.js driver. The candidate source is
// included verbatim; the driver times the call itself so interpreter startup
// is excluded from the reported elapsed time.
type javascriptGenerator struct{}

func (javascriptGenerator) Build(sourceText, entryPoint string, testCase domain.TestCase) (string, error) {
	if isStatefulProblem(sourceText, entryPoint) {
		return buildJavaScriptReplay(sourceText, entryPoint, testCase)
	}
	args, err := javascriptArgs(testCase.Input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`%s

const __start = Date.now();
try {
    const __value = %s(%s);
    console.log(JSON.stringify({ success: true, output: __value === undefined ? null : __value, executionTime: Date.now() - __start }));
} catch (__err) {
    console.log(JSON.stringify({ success: false, error: __err && __err.message ? __err.message : String(__err), executionTime: Date.now() - __start }));
}
`, sourceText, entryPoint, args), nil
}

func buildJavaScriptReplay(sourceText, entryPoint string, testCase domain.TestCase) (string, error) {
	text, ok := callSequenceText(testCase)
	if !ok {
		return "", ErrNoConstructor
	}
	seq, err := parseReplaySequence(text, entryPoint)
	if err != nil {
		return "", err
	}

	var body strings.Builder
	fmt.Fprintf(&body, "    const __obj = new %s(%s);\n", entryPoint, intArgList(seq.ctorArgs))
	body.WriteString("    const __results = [];\n")
	for _, call := range seq.calls {
		if call.query {
			fmt.Fprintf(&body, "    __results.push(__obj.%s(%s));\n", call.method, intArgList(call.args))
		} else {
			fmt.Fprintf(&body, "    __obj.%s(%s);\n", call.method, intArgList(call.args))
		}
	}

	return fmt.Sprintf(`%s

const __start = Date.now();
try {
%s    console.log(JSON.stringify({ success: true, output: __results, executionTime: Date.now() - __start }));
} catch (__err) {
    console.log(JSON.stringify({ success: false, error: __err && __err.message ? __err.message : String(__err), executionTime: Date.now() - __start }));
}
`, sourceText, body.String()), nil
}

// javascriptArgs serializes input values as JavaScript literals. JSON is a
// syntactic subset of JavaScript expressions, so marshalling each value is
// enough.
func javascriptArgs(input []interface{}) (string, error) {
	parts := make([]string, len(input))
	for i, value := range input {
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("failed to serialize argument %d: %w", i, err)
		}
		parts[i] = string(encoded)
	}
	return strings.Join(parts, ", "), nil
}
