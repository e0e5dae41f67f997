// Package languages holds the runtime catalog: how each supported language's
// harness file is named and which interpreter command runs it.
package languages

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// sourcePlaceholder marks where the harness file path goes in a command template.
const sourcePlaceholder = "{source}"

// Runtime describes how to execute a harness for one language.
// A Runtime with Runnable=false is registered but not executable yet;
// the process runner degrades it to a deterministic not-implemented outcome.
type Runtime struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Command   string `yaml:"command"`
	Extension string `yaml:"extension"`
	Runnable  bool   `yaml:"runnable"`
}

// BuildCommand splits the command template and substitutes the harness path.
func (rt Runtime) BuildCommand(sourcePath string) (string, []string, error) {
	if rt.Command == "" {
		return "", nil, fmt.Errorf("runtime %q has no command configured", rt.ID)
	}
	parts, err := shlex.Split(rt.Command)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse command template for %q: %w", rt.ID, err)
	}
	if len(parts) == 0 {
		return "", nil, fmt.Errorf("empty command template for %q", rt.ID)
	}
	args := make([]string, 0, len(parts)-1)
	substituted := false
	for _, part := range parts[1:] {
		if strings.Contains(part, sourcePlaceholder) {
			part = strings.ReplaceAll(part, sourcePlaceholder, sourcePath)
			substituted = true
		}
		args = append(args, part)
	}
	if !substituted {
		args = append(args, sourcePath)
	}
	return parts[0], args, nil
}

// Registry maps language IDs to their runtimes.
type Registry struct {
	byID map[string]Runtime
}

// NewRegistry creates a registry pre-populated with the built-in runtimes.
func NewRegistry() *Registry {
	r := &Registry{byID: make(map[string]Runtime)}
	for _, rt := range builtinRuntimes() {
		r.byID[rt.ID] = rt
	}
	return r
}

// Register adds or replaces a runtime.
func (r *Registry) Register(rt Runtime) {
	rt.ID = strings.ToLower(rt.ID)
	r.byID[rt.ID] = rt
}

// Get looks up a runtime by language ID.
func (r *Registry) Get(id string) (Runtime, bool) {
	rt, ok := r.byID[strings.ToLower(id)]
	return rt, ok
}

func builtinRuntimes() []Runtime {
	return []Runtime{
		{
			ID:        "javascript",
			Name:      "Node.js",
			Command:   "node {source}",
			Extension: ".js",
			Runnable:  true,
		},
		{
			ID:        "python",
			Name:      "Python 3",
			Command:   "python3 {source}",
			Extension: ".py",
			Runnable:  true,
		},
		{
			// Compiled-language execution is not implemented; kept in the
			// catalog so requests fail with a stable message instead of an
			// unknown-language one.
			ID:        "java",
			Name:      "Java",
			Extension: ".java",
			Runnable:  false,
		},
	}
}
