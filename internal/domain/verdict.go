package domain

// ExecutionOutcome represents what one harness process produced for one test case
type ExecutionOutcome struct {
	Succeeded    bool        `json:"succeeded"`
	Value        interface{} `json:"value,omitempty"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
	ElapsedMs    int64       `json:"elapsedMs"`
}

// TestCaseVerdict represents the pass/fail judgment for one test case
type TestCaseVerdict struct {
	TestCase    TestCase         `json:"testCase"`
	Outcome     ExecutionOutcome `json:"outcome"`
	Passed      bool             `json:"passed"`
	ActualValue interface{}      `json:"actualValue,omitempty"`
}
