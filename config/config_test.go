package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.AppPort != "8002" {
		t.Fatalf("port: got %q", cfg.AppPort)
	}
	if cfg.PaymentCurrency != "gbp" {
		t.Fatalf("currency: got %q", cfg.PaymentCurrency)
	}
	if cfg.Store != "mongo" {
		t.Fatalf("store: got %q", cfg.Store)
	}
	if cfg.RejectDuplicatePaymentIntents {
		t.Fatalf("duplicate intents should be accepted by default")
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("PAYMENT_CURRENCY", "eur")
	t.Setenv("REJECT_DUPLICATE_PAYMENT_INTENTS", "true")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.PaymentCurrency != "eur" {
		t.Fatalf("currency: got %q", cfg.PaymentCurrency)
	}
	if !cfg.RejectDuplicatePaymentIntents {
		t.Fatalf("expected duplicate rejection from env")
	}
}

func TestIsProduction(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	AppConfig.Env = "production"
	if !IsProduction() {
		t.Fatalf("expected production")
	}
	AppConfig.Env = "development"
	if IsProduction() {
		t.Fatalf("expected non-production")
	}
}
