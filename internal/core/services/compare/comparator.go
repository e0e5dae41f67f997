// Package compare implements the type-coercing structural equality used to
// judge a candidate's actual value against a test case's expected value.
//
// Candidate programs legitimately return a list where the fixture was
// authored as a formatted string, or a float where the fixture holds an int.
// The rules below bridge those representational gaps without letting wrong
// answers through. The function is total: it never panics and treats any
// unserializable value as a non-match.
package compare

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
)

// FloatTolerance bounds the allowed difference between two numbers. It
// absorbs rounding introduced by serialization round-trips.
const FloatTolerance = 1e-9

// Equal reports whether actual matches expected. Rules are tried in order;
// the first applicable rule decides.
func Equal(actual, expected interface{}) bool {
	// Rule 1: identity / exact structural equality.
	if reflect.DeepEqual(actual, expected) {
		return true
	}

	actualSeq, actualIsSeq := asSequence(actual)
	expectedSeq, expectedIsSeq := asSequence(expected)

	// Rule 2: expected authored as a serialized sequence string.
	if expectedStr, ok := expected.(string); ok && actualIsSeq {
		return sequenceMatchesString(actualSeq, expectedStr)
	}

	// Rule 3: symmetric to rule 2.
	if actualStr, ok := actual.(string); ok && expectedIsSeq {
		return sequenceMatchesString(expectedSeq, actualStr)
	}

	// Rule 4: element-wise recursive descent.
	if actualIsSeq && expectedIsSeq {
		if len(actualSeq) != len(expectedSeq) {
			return false
		}
		for i := range actualSeq {
			if !Equal(actualSeq[i], expectedSeq[i]) {
				return false
			}
		}
		return true
	}

	// Rule 5: numeric tolerance.
	if actualNum, ok := asNumber(actual); ok {
		if expectedNum, ok := asNumber(expected); ok {
			return math.Abs(actualNum-expectedNum) < FloatTolerance
		}
	}

	// Rule 6: case-folded, trimmed string equality.
	if actualStr, ok := actual.(string); ok {
		if expectedStr, ok := expected.(string); ok {
			return strings.EqualFold(strings.TrimSpace(actualStr), strings.TrimSpace(expectedStr))
		}
	}

	// Rule 7: canonical serialized forms.
	actualJSON, err := json.Marshal(actual)
	if err != nil {
		return false
	}
	expectedJSON, err := json.Marshal(expected)
	if err != nil {
		return false
	}
	return string(actualJSON) == string(expectedJSON)
}

// sequenceMatchesString handles a sequence on one side and a string on the
// other: if the string parses as a JSON sequence, compare element-wise,
// otherwise compare the sequence's serialized form against the raw string.
func sequenceMatchesString(seq []interface{}, str string) bool {
	var parsed []interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(str)), &parsed); err == nil {
		return Equal(seq, parsed)
	}
	serialized, err := json.Marshal(seq)
	if err != nil {
		return false
	}
	return string(serialized) == strings.TrimSpace(str)
}

// asSequence normalizes any slice or array into []interface{}.
func asSequence(v interface{}) ([]interface{}, bool) {
	if v == nil {
		return nil, false
	}
	if seq, ok := v.([]interface{}); ok {
		return seq, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	seq := make([]interface{}, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		seq[i] = rv.Index(i).Interface()
	}
	return seq, true
}

// asNumber normalizes any numeric type (including json.Number) to float64.
func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
