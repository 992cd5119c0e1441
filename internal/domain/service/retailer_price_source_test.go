package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPageTemplate = `<html><body><ul class="products">%s</ul></body></html>`

func listing(title, priceHTML string) string {
	return fmt.Sprintf(`<li class="product">
		<h2 class="woocommerce-loop-product__title">%s</h2>
		<span class="price">%s</span>
	</li>`, title, priceHTML)
}

func newRetailerTestServer(t *testing.T, listings ...string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("s"))
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla")

		var body string
		for _, l := range listings {
			body += l
		}
		fmt.Fprintf(w, searchPageTemplate, body)
	}))
}

func TestRetailerSkipsOtherModels(t *testing.T) {
	srv := newRetailerTestServer(t,
		listing("iPhone 16 Pro Max LCD Screen", `<span class="amount">KSh 5,999.00</span>`),
		listing("iPhone 16 LCD Screen Replacement", `<span class="amount">KSh 3,200.00</span>`),
	)
	defer srv.Close()

	src := NewRetailerPriceSource("shop-test", srv.URL+"/?s=%s")

	price, err := src.Query(context.Background(), PartQuery{Brand: "Apple", Model: "iPhone 16", Issue: "Screen"})
	require.NoError(t, err)
	assert.Equal(t, int64(3200), price)
}

func TestRetailerPrefersSalePrice(t *testing.T) {
	srv := newRetailerTestServer(t,
		listing("iPhone 16 LCD Screen",
			`<del><span class="amount">KSh 4,000.00</span></del><ins><span class="amount">KSh 3,500.00</span></ins>`),
	)
	defer srv.Close()

	src := NewRetailerPriceSource("shop-test", srv.URL+"/?s=%s")

	price, err := src.Query(context.Background(), PartQuery{Brand: "Apple", Model: "iPhone 16", Issue: "Screen"})
	require.NoError(t, err)
	assert.Equal(t, int64(3500), price)
}

func TestRetailerNoMatchingListing(t *testing.T) {
	srv := newRetailerTestServer(t,
		listing("iPhone 16 Pro Max LCD Screen", `<span class="amount">KSh 5,999.00</span>`),
		listing("USB-C Charging Cable", `<span class="amount">KSh 500.00</span>`),
	)
	defer srv.Close()

	src := NewRetailerPriceSource("shop-test", srv.URL+"/?s=%s")

	_, err := src.Query(context.Background(), PartQuery{Brand: "Apple", Model: "iPhone 16", Issue: "Screen"})
	assert.Error(t, err)
}

func TestRetailerServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	src := NewRetailerPriceSource("shop-test", srv.URL+"/?s=%s")

	_, err := src.Query(context.Background(), PartQuery{Brand: "Apple", Model: "iPhone 16", Issue: "Screen"})
	assert.Error(t, err)
}

func TestParseListingPrice(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"KSh 3,200.00", 3200},
		{"KSh3200", 3200},
		{"KSh 3,249.50", 3250},
		{"Call for price", 0},
		{"", 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, parseListingPrice(tc.in), tc.in)
	}
}
