package service

import (
	"context"
)

// PartQuery identifies the part a customer needs priced.
type PartQuery struct {
	Brand string
	Model string
	Issue string
}

// PriceSource is a single external vendor of part prices. Query returns the
// price in whole KES. A source that cannot produce a usable price returns an
// error; the aggregator treats that as a zero contribution and moves on, so
// implementations never need retries.
type PriceSource interface {
	Name() string
	Query(ctx context.Context, q PartQuery) (int64, error)
}

// issueKeywords maps a reported issue to the component keyword retailers
// actually list parts under.
var issueKeywords = map[string]string{
	"Screen":   "LCD",
	"Battery":  "Battery",
	"Charging": "Charging Port",
	"Water":    "Full Service",
	"Software": "Software",
}

// IssueKeyword returns the search keyword for an issue, falling back to the
// issue itself when no mapping exists.
func IssueKeyword(issue string) string {
	if kw, ok := issueKeywords[issue]; ok {
		return kw
	}
	return issue
}
