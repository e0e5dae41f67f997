package harness

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrNoConstructor is returned when a stateful test input carries no
// recognizable constructor invocation. This is a harness-level error, not a
// comparator mismatch.
var ErrNoConstructor = errors.New("failed to initialize the stateful object")

// The legacy stateful fixture format hardcodes its method vocabulary:
// put(...) mutates, get(...) queries. Generalizing to arbitrary method names
// would need a real parser for the call-sequence grammar; until then the
// tables below are the whole supported surface.
var (
	mutatorMethods = []string{"put"}
	queryMethods   = []string{"get"}
)

// replayCall is one method call recovered from the fixture text. Offset is
// the call's character position in the original text; sorting by it restores
// textual order even though mutators and queries are scanned separately.
type replayCall struct {
	method string
	args   []int
	offset int
	query  bool
}

// replaySequence is a parsed legacy call-sequence fixture.
type replaySequence struct {
	className string
	ctorArgs  []int
	calls     []replayCall
}

// parseReplaySequence scans text like
//
//	new Cache(2); cache.put(1,1); cache.get(1);
//
// into a constructor invocation plus the ordered method calls.
func parseReplaySequence(text, className string) (*replaySequence, error) {
	ctorPattern := regexp.MustCompile(`new\s+` + regexp.QuoteMeta(className) + `\s*\(([^)]*)\)`)
	ctorMatch := ctorPattern.FindStringSubmatch(text)
	if ctorMatch == nil {
		return nil, ErrNoConstructor
	}
	ctorArgs, err := parseIntArgs(ctorMatch[1])
	if err != nil {
		return nil, ErrNoConstructor
	}

	seq := &replaySequence{className: className, ctorArgs: ctorArgs}
	for _, method := range mutatorMethods {
		seq.calls = append(seq.calls, scanCalls(text, method, false)...)
	}
	for _, method := range queryMethods {
		seq.calls = append(seq.calls, scanCalls(text, method, true)...)
	}
	sort.Slice(seq.calls, func(i, j int) bool {
		return seq.calls[i].offset < seq.calls[j].offset
	})
	return seq, nil
}

// scanCalls finds every `.method(args)` occurrence and records its offset.
func scanCalls(text, method string, query bool) []replayCall {
	pattern := regexp.MustCompile(`\.` + regexp.QuoteMeta(method) + `\s*\(([^)]*)\)`)
	var calls []replayCall
	for _, match := range pattern.FindAllStringSubmatchIndex(text, -1) {
		rawArgs := text[match[2]:match[3]]
		args, err := parseIntArgs(rawArgs)
		if err != nil {
			continue
		}
		calls = append(calls, replayCall{
			method: method,
			args:   args,
			offset: match[0],
			query:  query,
		})
	}
	return calls
}

// parseIntArgs parses a comma-separated integer argument list. The legacy
// format only ever carries integers.
func parseIntArgs(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	args := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("non-integer argument %q: %w", part, err)
		}
		args = append(args, n)
	}
	return args, nil
}

// intArgList renders args as a comma-separated literal list, valid in both
// JavaScript and Python.
func intArgList(args []int) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strconv.Itoa(a)
	}
	return strings.Join(parts, ", ")
}
