package domain

// TestCase represents a single test case for a code submission.
// Input holds the ordered argument values passed to the entry point;
// for stateful problems Input[0] is the textual call sequence instead.
type TestCase struct {
	Input          []interface{} `json:"input"`
	ExpectedOutput interface{}   `json:"expectedOutput"`
	Description    string        `json:"description,omitempty"`
	Hidden         bool          `json:"hidden"`
}
