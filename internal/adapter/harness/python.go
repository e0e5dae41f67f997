package harness

import (
	"encoding/json"
	"fmt"
	"strings"

	"gitlab.com/codeval-2025.net/internal/domain"
)

// pythonGenerator emits a Python 3 driver. Arguments travel as a JSON
// document decoded inside the driver, which sidesteps the literal-syntax
// differences between JSON and Python (true/True, null/None).
type pythonGenerator struct{}

func (pythonGenerator) Build(sourceText, entryPoint string, testCase domain.TestCase) (string, error) {
	if isStatefulProblem(sourceText, entryPoint) {
		return buildPythonReplay(sourceText, entryPoint, testCase)
	}
	encoded, err := json.Marshal(testCase.Input)
	if err != nil {
		return "", fmt.Errorf("failed to serialize arguments: %w", err)
	}
	if strings.Contains(string(encoded), "'''") {
		return "", fmt.Errorf("arguments contain an unsupported quote sequence")
	}
	return fmt.Sprintf(`import json
import time

%s

def __run():
    __args = json.loads(r'''%s''')
    __start = time.time()
    try:
        __value = %s(*__args)
        print(json.dumps({"success": True, "output": __value, "executionTime": int((time.time() - __start) * 1000)}))
    except Exception as __err:
        print(json.dumps({"success": False, "error": str(__err), "executionTime": int((time.time() - __start) * 1000)}))

__run()
`, sourceText, string(encoded), entryPoint), nil
}

func buildPythonReplay(sourceText, entryPoint string, testCase domain.TestCase) (string, error) {
	text, ok := callSequenceText(testCase)
	if !ok {
		return "", ErrNoConstructor
	}
	seq, err := parseReplaySequence(text, entryPoint)
	if err != nil {
		return "", err
	}

	var body strings.Builder
	fmt.Fprintf(&body, "        __obj = %s(%s)\n", entryPoint, intArgList(seq.ctorArgs))
	body.WriteString("        __results = []\n")
	for _, call := range seq.calls {
		if call.query {
			fmt.Fprintf(&body, "        __results.append(__obj.%s(%s))\n", call.method, intArgList(call.args))
		} else {
			fmt.Fprintf(&body, "        __obj.%s(%s)\n", call.method, intArgList(call.args))
		}
	}

	return fmt.Sprintf(`import json
import time

%s

def __run():
    __start = time.time()
    try:
%s        print(json.dumps({"success": True, "output": __results, "executionTime": int((time.time() - __start) * 1000)}))
    except Exception as __err:
        print(json.dumps({"success": False, "error": str(__err), "executionTime": int((time.time() - __start) * 1000)}))

__run()
`, sourceText, body.String()), nil
}
