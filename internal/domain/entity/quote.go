package entity

// PriceQuote is the ephemeral estimate handed to a customer before a repair
// job is created. It is recomputed on every request and never persisted.
type PriceQuote struct {
	PartPrice     int64  `json:"part_price"`
	ServiceFee    int64  `json:"service_fee"`
	TotalPrice    int64  `json:"total_price"`
	Currency      string `json:"currency"`
	EstimatedTime string `json:"estimated_time"`

	Sources []SourceQuote `json:"sources"`
}

// SourceQuote records what a single external source contributed to a quote.
// A zero price means the source failed or had no usable listing and was
// excluded from the aggregate.
type SourceQuote struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Official bool   `json:"official"`
}
