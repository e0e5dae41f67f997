package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lruSequence = "new Cache(2); cache.put(1,1); cache.put(2,2); cache.get(1); cache.put(3,3); cache.get(2);"

func TestParseReplaySequence(t *testing.T) {
	seq, err := parseReplaySequence(lruSequence, "Cache")
	require.NoError(t, err)

	assert.Equal(t, []int{2}, seq.ctorArgs)
	require.Len(t, seq.calls, 5)

	// Calls must come back in textual order even though mutators and
	// queries are scanned separately.
	methods := make([]string, 0, len(seq.calls))
	for _, call := range seq.calls {
		methods = append(methods, call.method)
	}
	assert.Equal(t, []string{"put", "put", "get", "put", "get"}, methods)

	assert.Equal(t, []int{1, 1}, seq.calls[0].args)
	assert.True(t, seq.calls[2].query)
	assert.False(t, seq.calls[3].query)
}

func TestParseReplaySequenceNoConstructor(t *testing.T) {
	_, err := parseReplaySequence("cache.put(1,1); cache.get(1);", "Cache")

	assert.ErrorIs(t, err, ErrNoConstructor)
}

func TestParseReplaySequenceOffsetsAscending(t *testing.T) {
	seq, err := parseReplaySequence(lruSequence, "Cache")
	require.NoError(t, err)

	for i := 1; i < len(seq.calls); i++ {
		assert.Less(t, seq.calls[i-1].offset, seq.calls[i].offset)
	}
}

func TestParseIntArgs(t *testing.T) {
	args, err := parseIntArgs(" 1 , 2 ,3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, args)

	empty, err := parseIntArgs("   ")
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = parseIntArgs("1, x")
	assert.Error(t, err)
}
