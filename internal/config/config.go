package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	StoreName      string
	CurrencySymbol string
	DiscountRate   decimal.Decimal
	OutputDir      string
	SeedFile       string
	LogLevel       string
	LogFormat      string
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	rate, err := parseRate(k.String("POS_DISCOUNT_RATE"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		StoreName:      valueOrDefault(k.String("POS_STORE_NAME"), "ELECTRONIC STORE"),
		CurrencySymbol: currencySymbol(k),
		DiscountRate:   rate,
		OutputDir:      valueOrDefault(k.String("POS_OUTPUT_DIR"), "."),
		SeedFile:       strings.TrimSpace(k.String("POS_SEED_FILE")),
		LogLevel:       valueOrDefault(k.String("OBS_LOG_LEVEL"), "info"),
		LogFormat:      valueOrDefault(k.String("OBS_LOG_FORMAT"), "console"),
	}

	return cfg, nil
}

// currencySymbol keeps an explicitly empty POS_CURRENCY_SYMBOL: the
// operator may run the tool without any currency marker.
func currencySymbol(k *koanf.Koanf) string {
	if k.Exists("POS_CURRENCY_SYMBOL") {
		return k.String("POS_CURRENCY_SYMBOL")
	}
	return "₹"
}

func parseRate(value string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero, nil
	}
	rate, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("POS_DISCOUNT_RATE: %w", err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, errors.New("POS_DISCOUNT_RATE must be between 0 and 100")
	}
	return rate, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
