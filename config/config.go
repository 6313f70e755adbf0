package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings holds the tunables of the pricing engine. Strategy names are
// deliberately explicit: the decay and popularity formulas each have two
// supported variants and the deployment must pick one, never a blend.
type Settings struct {
	Port        string
	PriceJitter float64 // symmetric jitter band applied to quotes, e.g. 0.01

	DecayStrategy      string // "scaled" (default) or "damped"
	PopularityStrategy string // "log" (default) or "linear"

	StreamInterval  time.Duration // pause between pushed quote frames
	RefreshInterval time.Duration // pause between price refresh sweeps
}

func Load() *Settings {
	return &Settings{
		Port:               EnvOrDefault("PORT", "8080"),
		PriceJitter:        envFloat("PRICE_JITTER", 0.01),
		DecayStrategy:      EnvOrDefault("DECAY_STRATEGY", "scaled"),
		PopularityStrategy: EnvOrDefault("POPULARITY_STRATEGY", "log"),
		StreamInterval:     envDuration("STREAM_INTERVAL", time.Second),
		RefreshInterval:    envDuration("REFRESH_INTERVAL", time.Minute),
	}
}

func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
