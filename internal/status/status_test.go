package status

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCodeLabelBijection(t *testing.T) {
	seenCodes := map[int]bool{}
	for _, s := range All {
		assert.Equal(t, s.Code, Code(s.Key), "key %q", s.Key)
		assert.Equal(t, s.Label, Label(s.Code), "code %d", s.Code)
		assert.False(t, seenCodes[s.Code], "duplicate code %d", s.Code)
		seenCodes[s.Code] = true
	}

	require.Len(t, All, 7)
	for code := 0; code <= 6; code++ {
		assert.True(t, seenCodes[code], "code %d not covered", code)
	}
}

func TestCodeOrder(t *testing.T) {
	// The backend persists these integers; renumbering would corrupt data.
	expected := map[string]int{
		"expired":           0,
		"saved":             1,
		"applied":           2,
		"initial_interview": 3,
		"final_interview":   4,
		"offered":           5,
		"rejected":          6,
	}
	for key, code := range expected {
		assert.Equal(t, code, Code(key), key)
	}
}

func TestCodeUnknownKeyFallsBackToSaved(t *testing.T) {
	// Compatibility behavior: callers are expected to validate first.
	assert.Equal(t, Code("saved"), Code("withdrawn"))
	assert.Equal(t, Code("saved"), Code(""))
}

func TestLabelOutOfRangeFallsBackToDecimal(t *testing.T) {
	assert.Equal(t, "42", Label(42))
	assert.Equal(t, strconv.Itoa(-1), Label(-1))
}

func TestValid(t *testing.T) {
	for _, s := range All {
		assert.True(t, Valid(s.Key))
	}
	assert.False(t, Valid("withdrawn"))
	assert.False(t, Valid("Saved"))
}

func TestKeysInCodeOrder(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, 7)
	for i, key := range keys {
		assert.Equal(t, All[i].Key, key)
		assert.Equal(t, i, Code(key))
	}
}
