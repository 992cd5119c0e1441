package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchModelLongestPatternWins(t *testing.T) {
	entry, ok := MatchModel("iPhone 16 Pro Max")
	require.True(t, ok)
	assert.Equal(t, "iphone-16-pro-max", entry.OfficialID)

	entry, ok = MatchModel("iPhone 16 Pro")
	require.True(t, ok)
	assert.Equal(t, "iphone-16-pro", entry.OfficialID)

	entry, ok = MatchModel("iphone 16")
	require.True(t, ok)
	assert.Equal(t, "iphone-16", entry.OfficialID)
}

func TestMatchModelUnknown(t *testing.T) {
	_, ok := MatchModel("Nokia 3310")
	assert.False(t, ok)
}

func TestMatchModelUncoveredSamsung(t *testing.T) {
	entry, ok := MatchModel("Galaxy S24 Ultra")
	require.True(t, ok)
	assert.Empty(t, entry.OfficialID)
}

func TestTitleMatchesModel(t *testing.T) {
	cases := []struct {
		title string
		model string
		want  bool
	}{
		// A base-model search must not pick up higher-trim listings even
		// though the title contains the search string.
		{"iPhone 16 Pro Max LCD Screen Replacement", "iPhone 16", false},
		{"iPhone 16 LCD Screen Replacement", "iPhone 16", true},
		{"iPhone 16 Pro OLED Assembly", "iPhone 16 Pro", true},
		{"iPhone 16 Pro OLED Assembly", "iPhone 16 Pro Max", false},
		{"Samsung Galaxy S24 Ultra Screen", "S24 Ultra", true},
		{"Samsung Galaxy S24 Screen", "S24 Ultra", false},
		{"USB-C Charging Cable", "iPhone 16", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, TitleMatchesModel(tc.title, tc.model), "%q vs %q", tc.title, tc.model)
	}
}

func TestTitleMatchesModelUnknownFallsBackToSubstring(t *testing.T) {
	assert.True(t, TitleMatchesModel("Nokia 3310 Battery BL-5C", "Nokia 3310"))
	assert.False(t, TitleMatchesModel("Nokia 105 Battery", "Nokia 3310"))
}

func TestIssueKeyword(t *testing.T) {
	assert.Equal(t, "LCD", IssueKeyword("Screen"))
	assert.Equal(t, "Charging Port", IssueKeyword("Charging"))
	assert.Equal(t, "Speaker", IssueKeyword("Speaker"))
}
