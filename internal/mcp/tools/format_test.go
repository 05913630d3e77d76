package tools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	exactly := strings.Repeat("a", 80)
	assert.Equal(t, exactly, truncate(exactly, 80))

	over := strings.Repeat("a", 81)
	got := truncate(over, 80)
	assert.True(t, strings.HasSuffix(got, ellipsis))
	assert.Len(t, got, 80+len(ellipsis))

	assert.Equal(t, "", truncate("", 80))
	assert.Equal(t, "short", truncate("short", 80))
}

func TestTruncateIsRuneSafe(t *testing.T) {
	s := strings.Repeat("ü", 10)
	got := truncate(s, 5)
	assert.Equal(t, strings.Repeat("ü", 5)+ellipsis, got)
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", orNA(""))
	assert.Equal(t, "N/A", orNA("   "))
	assert.Equal(t, "value", orNA("value"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 14, 2026", formatDate("2026-03-14T09:26:53Z"))
	// Unparseable input passes through untouched.
	assert.Equal(t, "yesterday", formatDate("yesterday"))
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "Mar 14, 2026 9:26 AM", formatDateTime("2026-03-14T09:26:53Z"))
}

func TestNumberedList(t *testing.T) {
	got := numberedList([]string{"first", "second"})
	assert.Equal(t, "1. first\n2. second", got)
}

func TestJoinBlocks(t *testing.T) {
	assert.Equal(t, "a\n\nb", joinBlocks([]string{"a", "b"}))
}

func TestPageDefaults(t *testing.T) {
	assert.Equal(t, 1, pageOrDefault(0))
	assert.Equal(t, 1, pageOrDefault(-2))
	assert.Equal(t, 4, pageOrDefault(4))

	assert.Equal(t, 10, pageSizeOrDefault(0))
	assert.Equal(t, 50, pageSizeOrDefault(50))
}
