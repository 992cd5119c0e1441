package service

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const retailerUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// RetailerPriceSource scrapes a local spare-part shop's WooCommerce search
// page for the street price of a part. Listings for other models are skipped
// via the catalog match, so a "16" search does not pick up "16 Pro Max" parts.
type RetailerPriceSource struct {
	name      string
	searchURL string // printf pattern with one %s for the escaped search term
	client    *http.Client
}

func NewRetailerPriceSource(name, searchURL string) *RetailerPriceSource {
	return &RetailerPriceSource{
		name:      name,
		searchURL: searchURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *RetailerPriceSource) Name() string {
	return s.name
}

func (s *RetailerPriceSource) Query(ctx context.Context, q PartQuery) (int64, error) {
	term := fmt.Sprintf("%s %s %s", q.Brand, q.Model, IssueKeyword(q.Issue))
	endpoint := fmt.Sprintf(s.searchURL, url.QueryEscape(term))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", retailerUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%s search returned status %d", s.name, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("parsing %s search page: %w", s.name, err)
	}

	var price int64
	doc.Find("li.product").EachWithBreak(func(_ int, listing *goquery.Selection) bool {
		title := strings.TrimSpace(listing.Find(".woocommerce-loop-product__title").First().Text())
		if title == "" {
			title = strings.TrimSpace(listing.Find("h2").First().Text())
		}
		if !TitleMatchesModel(title, q.Model) {
			return true
		}

		// Prefer the sale price when one is marked up.
		raw := listing.Find(".price ins .amount").First().Text()
		if raw == "" {
			raw = listing.Find(".price .amount").First().Text()
		}

		if p := parseListingPrice(raw); p > 0 {
			price = p
			return false
		}
		return true
	})

	if price == 0 {
		return 0, fmt.Errorf("%s had no valid listing for %s %s", s.name, q.Brand, q.Model)
	}

	return price, nil
}

// parseListingPrice pulls a whole-KES amount out of scraped text such as
// "KSh 3,200.00". Anything unparseable yields 0.
func parseListingPrice(text string) int64 {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := strings.TrimSuffix(b.String(), ".")
	if cleaned == "" {
		return 0
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || amount <= 0 {
		return 0
	}

	return int64(math.Round(amount))
}
