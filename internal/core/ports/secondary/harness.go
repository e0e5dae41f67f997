package secondary

import (
	"gitlab.com/codeval-2025.net/internal/domain"
)

// HarnessBuilder generates the driver program that loads candidate code and
// runs it against one test case, printing a single structured result line.
type HarnessBuilder interface {
	BuildHarnessSource(language domain.Language, sourceText, entryPoint string, testCase domain.TestCase) (string, error)
}
