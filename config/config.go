// Package config loads application configuration from a YAML file with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

// Log holds logger settings.
type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// Config is the root application configuration.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	// Naver holds NCP Maps and Naver Developers credentials.
	Naver *NaverConfig `json:"naver" yaml:"naver"`

	// OSRM holds the open-data routing fallback configuration.
	OSRM *OSRMConfig `json:"osrm" yaml:"osrm"`

	// Routing configures the provider fallback chain.
	Routing *RoutingConfig `json:"routing" yaml:"routing"`

	// RouteCache configures the optional Redis cache in front of the resolver.
	RouteCache *RouteCacheConfig `json:"routeCache" yaml:"routeCache"`
}

// NaverConfig holds credentials for the NCP Maps APIs (directions, geocoding)
// and the separate Naver Developers Local Search API.
type NaverConfig struct {
	MapClientID     string `json:"mapClientId" yaml:"mapClientId"`
	MapClientSecret string `json:"mapClientSecret" yaml:"mapClientSecret"`

	SearchClientID     string `json:"searchClientId" yaml:"searchClientId"`
	SearchClientSecret string `json:"searchClientSecret" yaml:"searchClientSecret"`
}

// OSRMConfig holds the OSRM routing service endpoint.
type OSRMConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// RoutingConfig configures route resolution behavior.
type RoutingConfig struct {
	// ProviderTimeout bounds each outbound provider call.
	ProviderTimeout time.Duration `json:"providerTimeout" yaml:"providerTimeout"`

	// HaversineFallback appends an offline straight-line estimator as the
	// last provider in the chain.
	HaversineFallback bool `json:"haversineFallback" yaml:"haversineFallback"`

	// EstimateSpeedKmh is the assumed driving speed for the estimator.
	EstimateSpeedKmh float64 `json:"estimateSpeedKmh" yaml:"estimateSpeedKmh"`
}

// RouteCacheConfig configures the optional provider-response cache.
type RouteCacheConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// LoadWithEnv loads a .yaml file through koanf and layers environment
// variables on top, e.g. NAVER_MAPCLIENTID overrides naver.mapClientId.
func LoadWithEnv[T any](name string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", name)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", name)
	}

	// Environment variables override file values; NAVER_MAPCLIENTSECRET
	// becomes naver.mapclientsecret and is matched case-insensitively below.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
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
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	return cfg, nil
}

// New loads the application config, searching the working directory and the
// usual relative config locations.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Routing == nil {
		cfg.Routing = &RoutingConfig{}
	}
	if cfg.Routing.ProviderTimeout <= 0 {
		cfg.Routing.ProviderTimeout = 5 * time.Second
	}
	if cfg.OSRM == nil {
		cfg.OSRM = &OSRMConfig{}
	}
	if cfg.OSRM.BaseURL == "" {
		cfg.OSRM.BaseURL = "https://router.project-osrm.org"
	}
	if cfg.Naver == nil {
		cfg.Naver = &NaverConfig{}
	}
}
