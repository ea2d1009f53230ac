package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"media": map[string]any{
			"bucketUrl": "",
		},
		"geocoding": map[string]any{
			"google": map[string]any{
				"apiKey": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MEDIA_BUCKETURL", want: "media.bucketUrl"},
		{envKey: "GEOCODING_GOOGLE_APIKEY", want: "geocoding.google.apiKey"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Search.RadiusMeters != 50000 {
		t.Fatalf("default search radius = %v, want 50000", cfg.Search.RadiusMeters)
	}
	if cfg.Media.RetryAttempts != 3 {
		t.Fatalf("default media retry attempts = %d, want 3", cfg.Media.RetryAttempts)
	}
	if cfg.Geocoding.Timeout <= 0 {
		t.Fatal("default geocoding timeout not set")
	}
}
