package service

import (
	"strings"
)

// ModelEntry ties a model substring pattern to the official vendor's product
// identifier. OfficialID is empty for models the vendor API does not cover.
type ModelEntry struct {
	Pattern    string
	OfficialID string
}

// modelTable is ordered most specific first. Matching stops at the first
// pattern contained in the input, so "16 pro max" must be checked before
// "16 pro" before "16"; reordering it breaks cross-model disambiguation.
var modelTable = []ModelEntry{
	{"16 pro max", "iphone-16-pro-max"},
	{"16 pro", "iphone-16-pro"},
	{"16 plus", "iphone-16-plus"},
	{"16e", "iphone-16e"},
	{"16", "iphone-16"},
	{"15 pro max", "iphone-15-pro-max"},
	{"15 pro", "iphone-15-pro"},
	{"15 plus", "iphone-15-plus"},
	{"15", "iphone-15"},
	{"14 pro max", "iphone-14-pro-max"},
	{"14 pro", "iphone-14-pro"},
	{"14 plus", "iphone-14-plus"},
	{"14", "iphone-14"},
	{"13 pro max", "iphone-13-pro-max"},
	{"13 pro", "iphone-13-pro"},
	{"13 mini", "iphone-13-mini"},
	{"13", "iphone-13"},
	{"se", "iphone-se"},
	{"s24 ultra", ""},
	{"s24", ""},
	{"s23 ultra", ""},
	{"s23", ""},
	{"a54", ""},
}

// MatchModel resolves a free-form model string to its catalog entry.
func MatchModel(model string) (ModelEntry, bool) {
	lowered := strings.ToLower(model)
	for _, entry := range modelTable {
		if strings.Contains(lowered, entry.Pattern) {
			return entry, true
		}
	}
	return ModelEntry{}, false
}

// TitleMatchesModel reports whether a listing title refers to the same model
// the customer asked for. When the model is in the catalog, both sides must
// resolve to the same entry: a search for "iPhone 16" must not accept an
// "iPhone 16 Pro Max" listing even though the title contains "iPhone 16".
// Unknown models fall back to a plain substring check.
func TitleMatchesModel(title, model string) bool {
	want, known := MatchModel(model)
	if !known {
		return strings.Contains(strings.ToLower(title), strings.ToLower(model))
	}

	got, ok := MatchModel(title)
	return ok && got.Pattern == want.Pattern
}
