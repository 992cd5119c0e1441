package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// issueServiceIDs maps an issue to the official vendor's service identifier.
var issueServiceIDs = map[string]string{
	"Screen":   "screen-replacement",
	"Battery":  "battery-replacement",
	"Charging": "charging-port",
	"Water":    "liquid-damage",
	"Software": "software-restore",
}

// OfficialPriceSource quotes certified-part prices from the manufacturer's
// repair-pricing API. Prices come back in USD and are converted to KES with a
// fixed exchange rate and an import/tax multiplier.
type OfficialPriceSource struct {
	baseURL          string
	usdToKes         float64
	importMultiplier float64
	httpClient       *http.Client
}

func NewOfficialPriceSource(baseURL string, usdToKes, importMultiplier float64) *OfficialPriceSource {
	return &OfficialPriceSource{
		baseURL:          strings.TrimRight(baseURL, "/"),
		usdToKes:         usdToKes,
		importMultiplier: importMultiplier,
		httpClient:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *OfficialPriceSource) Name() string {
	return "apple-official"
}

type officialPriceResponse struct {
	Product string `json:"product"`
	Service string `json:"service"`
	Price   struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"price"`
}

func (s *OfficialPriceSource) Query(ctx context.Context, q PartQuery) (int64, error) {
	if !strings.EqualFold(q.Brand, "apple") {
		return 0, fmt.Errorf("official source covers Apple only, got %q", q.Brand)
	}

	entry, ok := MatchModel(q.Model)
	if !ok || entry.OfficialID == "" {
		return 0, fmt.Errorf("no official product mapping for model %q", q.Model)
	}

	serviceID, ok := issueServiceIDs[q.Issue]
	if !ok {
		return 0, fmt.Errorf("no official service mapping for issue %q", q.Issue)
	}

	endpoint := fmt.Sprintf("%s/repair-pricing?product=%s&service=%s",
		s.baseURL, url.QueryEscape(entry.OfficialID), url.QueryEscape(serviceID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("official pricing API returned status %d", resp.StatusCode)
	}

	var payload officialPriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("malformed official pricing response: %w", err)
	}

	if payload.Price.Amount <= 0 {
		return 0, fmt.Errorf("official pricing API returned non-positive amount %.2f", payload.Price.Amount)
	}

	kes := int64(math.Round(payload.Price.Amount * s.usdToKes * s.importMultiplier))
	if kes <= 0 {
		return 0, fmt.Errorf("converted official price is non-positive")
	}

	return kes, nil
}
