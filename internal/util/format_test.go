package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralize(t *testing.T) {
	assert.Equal(t, "0 projects", Pluralize(0, "project", "projects"))
	assert.Equal(t, "1 project", Pluralize(1, "project", "projects"))
	assert.Equal(t, "5 projects", Pluralize(5, "project", "projects"))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "0.0%", FormatPercentage(1, 0))
	assert.Equal(t, "50.0%", FormatPercentage(1, 2))
	assert.Equal(t, "33.3%", FormatPercentage(1, 3))
}

func TestDisplayHelpers(t *testing.T) {
	assert.Equal(t, 4, GetDisplayWidth("日本"))
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "   ab", PadLeft("ab", 5))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, " ab  ", CenterText("ab", 5))
	assert.True(t, strings.Contains(FormatSectionSeparator(3), "───"))
}
