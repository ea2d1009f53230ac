// Package config loads the service configuration from YAML with
// environment-variable overrides layered on top.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "32MB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *pgLib.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Geocoding configures the provider chain used during listing ingestion.
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Media configures the object-storage bucket for listing photos.
	Media *MediaConfig `json:"media" yaml:"media"`

	// Search configures the listing search query.
	Search *SearchConfig `json:"search" yaml:"search"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GeocodingConfig defines the geocoding provider chain. Providers are tried
// in order (Google first, then Nominatim); each call gets its own timeout.
type GeocodingConfig struct {
	Google struct {
		BaseURL string `json:"baseUrl" yaml:"baseUrl"`
		APIKey  string `json:"apiKey" yaml:"apiKey"`
	} `json:"google" yaml:"google"`

	Nominatim struct {
		BaseURL   string `json:"baseUrl" yaml:"baseUrl"`
		UserAgent string `json:"userAgent" yaml:"userAgent"`
	} `json:"nominatim" yaml:"nominatim"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// MediaConfig defines the photo upload bucket and upload behaviour.
type MediaConfig struct {
	// BucketURL is a gocloud.dev bucket URL, e.g. "s3://roost-photos?region=us-east-1"
	// or "file:///var/roost/photos" for local development.
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// KeyPrefix is prepended to every object key.
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`

	// PublicBaseURL, when set, is the origin returned photo URLs are built
	// on (e.g. a CDN). Empty means bucket-native URLs.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	// MaxConcurrentUploads bounds in-flight uploads per request.
	MaxConcurrentUploads int `json:"maxConcurrentUploads" yaml:"maxConcurrentUploads"`

	// RetryAttempts is the per-photo upload attempt budget.
	RetryAttempts int `json:"retryAttempts" yaml:"retryAttempts"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SearchConfig defines listing search parameters.
type SearchConfig struct {
	// RadiusMeters bounds the proximity filter. Fixed server-side so a
	// request can never widen the query.
	RadiusMeters float64 `json:"radiusMeters" yaml:"radiusMeters"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Layer environment variables on top of the file values.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to a path and align each segment with
			// the existing YAML keys, e.g. MEDIA_BUCKETURL -> media.bucketUrl.
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	cfg.ApplyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

// ApplyDefaults fills in the defaults for any section the config file omits.
func (cfg *Config) ApplyDefaults() {
	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{}
	}
	if cfg.Geocoding.Google.BaseURL == "" {
		cfg.Geocoding.Google.BaseURL = "https://maps.googleapis.com"
	}
	if cfg.Geocoding.Nominatim.BaseURL == "" {
		cfg.Geocoding.Nominatim.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geocoding.Timeout <= 0 {
		cfg.Geocoding.Timeout = 5 * time.Second
	}

	if cfg.Media == nil {
		cfg.Media = &MediaConfig{}
	}
	if cfg.Media.KeyPrefix == "" {
		cfg.Media.KeyPrefix = "properties/"
	}
	if cfg.Media.MaxConcurrentUploads <= 0 {
		cfg.Media.MaxConcurrentUploads = 4
	}
	if cfg.Media.RetryAttempts <= 0 {
		cfg.Media.RetryAttempts = 3
	}
	if cfg.Media.Timeout <= 0 {
		cfg.Media.Timeout = 30 * time.Second
	}

	if cfg.Search == nil {
		cfg.Search = &SearchConfig{}
	}
	if cfg.Search.RadiusMeters <= 0 {
		cfg.Search.RadiusMeters = 50 * 1000 // 50 km, same bound as the legacy service
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []pgLib.ConnectionConfig {
	var replicas []pgLib.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replicas = append(replicas, pgLib.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
