package ttlcache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"zero ttl", Config{TTL: 0}, false},
		{"bounded", Config{TTL: time.Second, Max: 2}, false},
		{"unbounded", Config{TTL: time.Second, Max: Unbounded}, false},
		{"negative ttl", Config{TTL: -1}, true},
		{"max one", Config{TTL: time.Second, Max: 1}, true},
		{"negative max", Config{TTL: time.Second, Max: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigUnmarshalJSONDurationStrings(t *testing.T) {
	tests := []struct {
		name     string
		jsonData string
		want     Config
		wantErr  bool
	}{
		{
			name:     "duration string",
			jsonData: `{"ttl": "250ms", "max": 1000}`,
			want:     Config{TTL: 250 * time.Millisecond, Max: 1000},
		},
		{
			name:     "integer nanoseconds",
			jsonData: `{"ttl": 1000000000, "max": 50}`,
			want:     Config{TTL: 1 * time.Second, Max: 50},
		},
		{
			name:     "compound duration",
			jsonData: `{"ttl": "1m30s"}`,
			want:     Config{TTL: 90 * time.Second},
		},
		{
			name:     "invalid duration string",
			jsonData: `{"ttl": "soon"}`,
			wantErr:  true,
		},
		{
			name:     "minimal config",
			jsonData: `{}`,
			want:     Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Config
			err := json.Unmarshal([]byte(tt.jsonData), &got)

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if got.TTL != tt.want.TTL {
				t.Errorf("TTL = %v, want %v", got.TTL, tt.want.TTL)
			}
			if got.Max != tt.want.Max {
				t.Errorf("Max = %v, want %v", got.Max, tt.want.Max)
			}
		})
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := Config{TTL: 5 * time.Minute, Max: 500}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var got Config
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}

	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}

	if err := got.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
}
