package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	tests := []struct {
		name            string
		envVars         map[string]string
		wantListenAddr  string
		wantPosting     bool
		wantMaxInFlight int
		wantInterval    time.Duration
	}{
		{
			name:            "defaults with no environment",
			envVars:         map[string]string{},
			wantListenAddr:  ":8080",
			wantPosting:     false,
			wantMaxInFlight: 8,
			wantInterval:    10 * time.Hour,
		},
		{
			name: "PORT overrides listen address",
			envVars: map[string]string{
				"PORT": "9000",
			},
			wantListenAddr:  ":9000",
			wantPosting:     false,
			wantMaxInFlight: 8,
			wantInterval:    10 * time.Hour,
		},
		{
			name: "posting enabled via environment",
			envVars: map[string]string{
				"POST_TO_TWITTER_ENABLED": "true",
			},
			wantListenAddr:  ":8080",
			wantPosting:     true,
			wantMaxInFlight: 8,
			wantInterval:    10 * time.Hour,
		},
		{
			name: "posting flag is case-insensitive",
			envVars: map[string]string{
				"POST_TO_TWITTER_ENABLED": "TRUE",
			},
			wantListenAddr:  ":8080",
			wantPosting:     true,
			wantMaxInFlight: 8,
			wantInterval:    10 * time.Hour,
		},
		{
			name: "custom cycle reset interval and in-flight cap",
			envVars: map[string]string{
				"LOG_CLEAR_INTERVAL_HOURS": "24",
				"MAX_IN_FLIGHT":            "16",
			},
			wantListenAddr:  ":8080",
			wantPosting:     false,
			wantMaxInFlight: 16,
			wantInterval:    24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for k, v := range tt.envVars {
				os.Setenv(k, v) //nolint:errcheck,gosec // Test setup
			}

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned error: %v", err)
			}

			if cfg.ListenAddr != tt.wantListenAddr {
				t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, tt.wantListenAddr)
			}
			if cfg.PostingEnabled != tt.wantPosting {
				t.Errorf("PostingEnabled = %t, want %t", cfg.PostingEnabled, tt.wantPosting)
			}
			if cfg.MaxInFlight != tt.wantMaxInFlight {
				t.Errorf("MaxInFlight = %d, want %d", cfg.MaxInFlight, tt.wantMaxInFlight)
			}
			if cfg.CycleResetInterval != tt.wantInterval {
				t.Errorf("CycleResetInterval = %v, want %v", cfg.CycleResetInterval, tt.wantInterval)
			}
		})
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "non-numeric cycle interval",
			envVars: map[string]string{"LOG_CLEAR_INTERVAL_HOURS": "soon"},
		},
		{
			name:    "non-numeric in-flight cap",
			envVars: map[string]string{"MAX_IN_FLIGHT": "many"},
		},
		{
			name:    "zero in-flight cap",
			envVars: map[string]string{"MAX_IN_FLIGHT": "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envVars {
				os.Setenv(k, v) //nolint:errcheck,gosec // Test setup
			}

			if _, err := Load(); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}

func TestHasTwitterCredentials(t *testing.T) {
	cfg := &Config{
		TwitterAPIKey:            "k",
		TwitterAPISecret:         "s",
		TwitterAccessToken:       "t",
		TwitterAccessTokenSecret: "ts",
	}
	if !cfg.HasTwitterCredentials() {
		t.Error("expected credentials to be complete")
	}

	cfg.TwitterAccessTokenSecret = ""
	if cfg.HasTwitterCredentials() {
		t.Error("expected missing access token secret to be detected")
	}
}

func TestLocation(t *testing.T) {
	os.Clearenv()
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location() returned error: %v", err)
	}
	if loc.String() != "America/New_York" {
		t.Errorf("Location = %s, want America/New_York", loc)
	}

	cfg.Timezone = "Not/AZone"
	if _, err := cfg.Location(); err == nil {
		t.Error("expected error for invalid timezone")
	}
}
