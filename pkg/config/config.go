package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	Environment     string

	// Repair lifecycle knobs
	ShippingFlatFee int64
	ScheduleOffset  time.Duration
	CommissionCut   float64

	// Price aggregation knobs
	PriceSourceTimeout time.Duration
	UsdToKes           float64
	ImportMultiplier   float64
	OfficialWeight     float64
	LaborRate          float64
	LaborFloor         int64
	OfficialPriceURL   string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),

		ShippingFlatFee: getEnvAsInt64("SHIPPING_FLAT_FEE", 500),
		ScheduleOffset:  time.Duration(getEnvAsInt64("SCHEDULE_OFFSET_MINUTES", 120)) * time.Minute,
		CommissionCut:   getEnvAsFloat("COMMISSION_CUT", 0.15),

		PriceSourceTimeout: time.Duration(getEnvAsInt64("PRICE_SOURCE_TIMEOUT_MS", 5000)) * time.Millisecond,
		UsdToKes:           getEnvAsFloat("USD_TO_KES", 130.0),
		ImportMultiplier:   getEnvAsFloat("IMPORT_MULTIPLIER", 1.16),
		OfficialWeight:     getEnvAsFloat("OFFICIAL_PRICE_WEIGHT", 0.8),
		LaborRate:          getEnvAsFloat("LABOR_RATE", 0.30),
		LaborFloor:         getEnvAsInt64("LABOR_FLOOR", 1000),
		OfficialPriceURL:   getEnv("OFFICIAL_PRICE_URL", "https://support.apple.com/repair-pricing/api"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		floatValue, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return floatValue
		}
	}
	return defaultValue
}
