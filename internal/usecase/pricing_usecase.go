package usecase

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"repairlink/internal/domain/entity"
	"repairlink/internal/domain/service"
	"repairlink/pkg/errors"
	"repairlink/pkg/logger"
)

// PricingConfig carries every constant the aggregator needs so tests can
// inject alternate rates and tables.
type PricingConfig struct {
	// OfficialWeight is the share of the official price in the blended part
	// price; the local-market mean gets the remainder.
	OfficialWeight float64

	LaborRate  float64
	LaborFloor int64

	SourceTimeout time.Duration

	Currency      string
	EstimatedTime string

	// FallbackBase is the per-issue floor price used when every source
	// fails; FallbackDefault covers unlisted issues. BrandMultipliers scales
	// the base by brand reputation.
	FallbackBase     map[string]int64
	FallbackDefault  int64
	BrandMultipliers map[string]float64
}

// DefaultPricingConfig returns the production table in KES.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		OfficialWeight: 0.8,
		LaborRate:      0.30,
		LaborFloor:     1000,
		SourceTimeout:  5 * time.Second,
		Currency:       "KES",
		EstimatedTime:  "2-4 Hours",
		FallbackBase: map[string]int64{
			"Screen":   3000,
			"Battery":  1500,
			"Charging": 1000,
			"Water":    2000,
			"Software": 1000,
		},
		FallbackDefault: 1000,
		BrandMultipliers: map[string]float64{
			"apple":   1.5,
			"samsung": 1.3,
			"google":  1.3,
			"huawei":  1.0,
			"xiaomi":  0.8,
			"tecno":   0.8,
			"infinix": 0.8,
		},
	}
}

// PricingUseCase aggregates part prices from the official vendor and local
// retailers into a single customer quote.
type PricingUseCase struct {
	official  service.PriceSource
	retailers []service.PriceSource
	cfg       PricingConfig
}

func NewPricingUseCase(official service.PriceSource, retailers []service.PriceSource, cfg PricingConfig) *PricingUseCase {
	return &PricingUseCase{
		official:  official,
		retailers: retailers,
		cfg:       cfg,
	}
}

// Estimate produces a quote for repairing the given part. Source failures are
// absorbed: the quote is always positive, falling back to a static brand table
// when no source answers.
func (uc *PricingUseCase) Estimate(ctx context.Context, brand, model, issue string) (*entity.PriceQuote, error) {
	if brand == "" || model == "" || issue == "" {
		return nil, errors.BadRequest("brand, model and issue are required", nil)
	}

	q := service.PartQuery{Brand: brand, Model: model, Issue: issue}

	sources := make([]service.PriceSource, 0, 1+len(uc.retailers))
	if uc.official != nil {
		sources = append(sources, uc.official)
	}
	sources = append(sources, uc.retailers...)

	prices := make([]int64, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src service.PriceSource) {
			defer wg.Done()

			srcCtx, cancel := context.WithTimeout(ctx, uc.cfg.SourceTimeout)
			defer cancel()

			price, err := src.Query(srcCtx, q)
			if err != nil {
				logger.Warn("price source %s excluded for %s %s: %v", src.Name(), brand, model, err)
				return
			}
			prices[i] = price
		}(i, src)
	}
	wg.Wait()

	var officialPrice int64
	var localPrices []int64
	breakdown := make([]entity.SourceQuote, 0, len(sources))

	for i, src := range sources {
		isOfficial := uc.official != nil && i == 0
		if isOfficial {
			officialPrice = prices[i]
		} else if prices[i] > 0 {
			localPrices = append(localPrices, prices[i])
		}
		breakdown = append(breakdown, entity.SourceQuote{
			Name:     src.Name(),
			Price:    prices[i],
			Official: isOfficial,
		})
	}

	partPrice := uc.combine(officialPrice, localPrices, brand, issue)
	serviceFee := uc.laborFee(partPrice)

	return &entity.PriceQuote{
		PartPrice:     partPrice,
		ServiceFee:    serviceFee,
		TotalPrice:    partPrice + serviceFee,
		Currency:      uc.cfg.Currency,
		EstimatedTime: uc.cfg.EstimatedTime,
		Sources:       breakdown,
	}, nil
}

// combine blends the official and local prices. The official price dominates:
// it reflects certified-part cost, while local listings track the aftermarket.
func (uc *PricingUseCase) combine(official int64, local []int64, brand, issue string) int64 {
	localMean := meanPrice(local)

	switch {
	case official > 0 && localMean > 0:
		w := uc.cfg.OfficialWeight
		return roundKes(w*float64(official) + (1-w)*float64(localMean))
	case official > 0:
		return official
	case localMean > 0:
		return localMean
	default:
		return uc.fallbackPrice(brand, issue)
	}
}

func (uc *PricingUseCase) laborFee(partPrice int64) int64 {
	fee := roundKes(float64(partPrice) * uc.cfg.LaborRate)
	if fee < uc.cfg.LaborFloor {
		return uc.cfg.LaborFloor
	}
	return fee
}

func (uc *PricingUseCase) fallbackPrice(brand, issue string) int64 {
	base, ok := uc.cfg.FallbackBase[issue]
	if !ok {
		base = uc.cfg.FallbackDefault
	}

	multiplier, ok := uc.cfg.BrandMultipliers[strings.ToLower(brand)]
	if !ok {
		multiplier = 1.0
	}

	price := roundKes(float64(base) * multiplier)
	if price <= 0 {
		price = uc.cfg.FallbackDefault
	}
	return price
}

func meanPrice(prices []int64) int64 {
	if len(prices) == 0 {
		return 0
	}
	var sum int64
	for _, p := range prices {
		sum += p
	}
	return roundKes(float64(sum) / float64(len(prices)))
}

func roundKes(v float64) int64 {
	return int64(math.Round(v))
}
