package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repairlink/internal/domain/service"
	"repairlink/pkg/errors"
)

type stubSource struct {
	name  string
	price int64
	err   error
	delay time.Duration
}

func (s *stubSource) Name() string {
	return s.name
}

func (s *stubSource) Query(ctx context.Context, q service.PartQuery) (int64, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	if s.err != nil {
		return 0, s.err
	}
	return s.price, nil
}

func newTestPricingUseCase(official service.PriceSource, retailers ...service.PriceSource) *PricingUseCase {
	return NewPricingUseCase(official, retailers, DefaultPricingConfig())
}

func TestEstimateBlendsOfficialAndLocal(t *testing.T) {
	uc := newTestPricingUseCase(
		&stubSource{name: "apple-official", price: 26000},
		&stubSource{name: "shop-a", price: 3200},
		&stubSource{name: "shop-b", price: 3400},
	)

	quote, err := uc.Estimate(context.Background(), "Apple", "iPhone 16", "Screen")
	require.NoError(t, err)

	// 0.8*26000 + 0.2*mean(3200,3400)
	assert.Equal(t, int64(21460), quote.PartPrice)
	assert.Equal(t, int64(6438), quote.ServiceFee)
	assert.Equal(t, int64(27898), quote.TotalPrice)
	assert.Equal(t, "KES", quote.Currency)

	require.Len(t, quote.Sources, 3)
	assert.True(t, quote.Sources[0].Official)
	assert.Equal(t, int64(26000), quote.Sources[0].Price)
	assert.False(t, quote.Sources[1].Official)
}

func TestEstimateOfficialOnly(t *testing.T) {
	uc := newTestPricingUseCase(
		&stubSource{name: "apple-official", price: 26000},
		&stubSource{name: "shop-a", err: fmt.Errorf("no listings")},
	)

	quote, err := uc.Estimate(context.Background(), "Apple", "iPhone 16", "Screen")
	require.NoError(t, err)

	assert.Equal(t, int64(26000), quote.PartPrice)
	assert.Equal(t, int64(7800), quote.ServiceFee)
}

func TestEstimateLocalOnlyAppliesLaborFloor(t *testing.T) {
	uc := newTestPricingUseCase(
		&stubSource{name: "apple-official", err: fmt.Errorf("api down")},
		&stubSource{name: "shop-a", price: 3200},
		&stubSource{name: "shop-b", price: 3400},
	)

	quote, err := uc.Estimate(context.Background(), "Apple", "iPhone 16", "Screen")
	require.NoError(t, err)

	assert.Equal(t, int64(3300), quote.PartPrice)
	// 30% of 3300 is 990, below the labor floor
	assert.Equal(t, int64(1000), quote.ServiceFee)
	assert.Equal(t, int64(4300), quote.TotalPrice)
}

func TestEstimateFallsBackWhenAllSourcesFail(t *testing.T) {
	uc := newTestPricingUseCase(
		&stubSource{name: "apple-official", err: fmt.Errorf("api down")},
		&stubSource{name: "shop-a", err: fmt.Errorf("timeout")},
	)

	quote, err := uc.Estimate(context.Background(), "Apple", "iPhone 16", "Screen")
	require.NoError(t, err)

	// Screen base 3000 scaled by the apple multiplier
	assert.Equal(t, int64(4500), quote.PartPrice)
	assert.Equal(t, int64(1350), quote.ServiceFee)
	assert.Equal(t, int64(5850), quote.TotalPrice)
	assert.Positive(t, quote.TotalPrice)
}

func TestEstimateFallbackUnknownBrandAndIssue(t *testing.T) {
	uc := newTestPricingUseCase(nil)

	quote, err := uc.Estimate(context.Background(), "Nokia", "3310", "Antenna")
	require.NoError(t, err)

	assert.Equal(t, int64(1000), quote.PartPrice)
	assert.Equal(t, int64(1000), quote.ServiceFee)
}

func TestEstimateExcludesSlowSources(t *testing.T) {
	cfg := DefaultPricingConfig()
	cfg.SourceTimeout = 20 * time.Millisecond

	uc := NewPricingUseCase(
		&stubSource{name: "apple-official", price: 26000},
		[]service.PriceSource{
			&stubSource{name: "shop-slow", price: 99999, delay: 500 * time.Millisecond},
			&stubSource{name: "shop-a", price: 3200},
		},
		cfg,
	)

	quote, err := uc.Estimate(context.Background(), "Apple", "iPhone 16", "Screen")
	require.NoError(t, err)

	// 0.8*26000 + 0.2*3200; the slow shop contributes nothing
	assert.Equal(t, int64(21440), quote.PartPrice)

	require.Len(t, quote.Sources, 3)
	assert.Zero(t, quote.Sources[1].Price)
}

func TestEstimateRequiresAllArguments(t *testing.T) {
	uc := newTestPricingUseCase(nil)

	for _, tc := range []struct{ brand, model, issue string }{
		{"", "iPhone 16", "Screen"},
		{"Apple", "", "Screen"},
		{"Apple", "iPhone 16", ""},
	} {
		_, err := uc.Estimate(context.Background(), tc.brand, tc.model, tc.issue)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
	}
}
