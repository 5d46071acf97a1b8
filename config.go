package ttlcache

import (
	"encoding/json"
	"fmt"
	"time"
)

// Unbounded disables capacity-based eviction. It is the default
// capacity.
const Unbounded = 0

// DefaultTTL is the time-to-live applied when none is configured.
const DefaultTTL = time.Second

// Config contains configuration for cache creation.
type Config struct {
	// TTL is the time-to-live applied to every entry at insertion
	// and refresh. Must be >= 0. Zero means entries expire as soon
	// as the clock advances past their write.
	TTL time.Duration `json:"ttl"`

	// Max is the entry capacity. Unbounded (0) disables capacity
	// eviction; any bounded value must be > 1. A capacity of
	// exactly 1 is rejected by contract, not as an arbitrary
	// choice: callers that want a single-slot cache hold the value
	// directly.
	Max int `json:"max"`
}

// DefaultConfig returns the default cache configuration: one-second
// TTL, unbounded capacity.
func DefaultConfig() Config {
	return Config{
		TTL: DefaultTTL,
		Max: Unbounded,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.TTL < 0 {
		return wrapInvalid("Validate", "ttl must be non-negative, got %v", c.TTL)
	}
	if c.Max != Unbounded && c.Max <= 1 {
		return wrapInvalid("Validate", "max must be greater than 1, got %d", c.Max)
	}
	return nil
}

// UnmarshalJSON implements custom JSON unmarshaling for Config so the
// TTL accepts duration strings (e.g. "250ms", "1h") in addition to
// nanosecond integers.
func (c *Config) UnmarshalJSON(data []byte) error {
	// Use an alias to avoid infinite recursion
	type Alias Config

	aux := &struct {
		TTL json.RawMessage `json:"ttl,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(c),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(aux.TTL) > 0 {
		ttl, err := parseDurationField(aux.TTL, "ttl")
		if err != nil {
			return err
		}
		c.TTL = ttl
	}

	return nil
}

// parseDurationField parses a JSON duration field that can be either:
// - An integer (nanoseconds)
// - A string (duration like "1h", "5m", "30s")
func parseDurationField(data json.RawMessage, fieldName string) (time.Duration, error) {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		duration, err := time.ParseDuration(str)
		if err != nil {
			return 0, fmt.Errorf("invalid duration string for %s: %w", fieldName, err)
		}
		return duration, nil
	}

	var nsec int64
	if err := json.Unmarshal(data, &nsec); err != nil {
		return 0, fmt.Errorf("field %s must be either a duration string (e.g. '1h') or integer nanoseconds", fieldName)
	}
	return time.Duration(nsec), nil
}
