package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all surfgen settings.
const envPrefix = "SURFGEN"

// newViper builds a pre-configured Viper instance: YAML file type, SURFGEN_
// env prefix, automatic env binding, and a key replacer mapping "." to "_"
// so that nested keys like "engine.max_sites" resolve to
// "SURFGEN_ENGINE_MAX_SITES".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	registerKeys(v)
	return v
}

// registerKeys declares every configuration key to viper with its platform
// default.  Without this, AutomaticEnv cannot surface SURFGEN_* variables for
// keys absent from the config file, because Unmarshal only visits keys viper
// already knows about.
func registerKeys(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.mode", DefaultServerMode)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", DefaultRedisAddr)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.dial_timeout", "5s")
	v.SetDefault("redis.read_timeout", "3s")
	v.SetDefault("redis.write_timeout", "3s")
	v.SetDefault("redis.default_ttl", DefaultRedisTTL)
	v.SetDefault("redis.key_prefix", DefaultRedisKeyPrefix)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output", "stdout")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", DefaultMetricsNamespace)
	v.SetDefault("metrics.enable_process_metrics", false)
	v.SetDefault("metrics.enable_go_metrics", false)

	v.SetDefault("builder.repeats_in_plane_111", DefaultRepeatsInPlane111)
	v.SetDefault("builder.layers_111", DefaultLayers111)
	v.SetDefault("builder.repeats_in_plane_100", DefaultRepeatsInPlane100)
	v.SetDefault("builder.layers_100", DefaultLayers100)
	v.SetDefault("builder.vacuum_gap", DefaultVacuumGap)
	v.SetDefault("builder.fallback_element", DefaultFallbackElement)

	v.SetDefault("engine.surface_band", DefaultSurfaceBand)
	v.SetDefault("engine.top_site_height", DefaultTopSiteHeight)
	v.SetDefault("engine.bridge_site_height", DefaultBridgeSiteHeight)
	v.SetDefault("engine.hollow_site_height", DefaultHollowSiteHeight)
	v.SetDefault("engine.neighbor_min_distance", DefaultNeighborMinDistance)
	v.SetDefault("engine.neighbor_max_distance", DefaultNeighborMaxDistance)
	v.SetDefault("engine.top_sample_rate", DefaultTopSampleRate)
	v.SetDefault("engine.bridge_sample_rate", DefaultBridgeSampleRate)
	v.SetDefault("engine.jitter_amplitude", DefaultJitterAmplitude)
	v.SetDefault("engine.min_sites", DefaultMinSites)
	v.SetDefault("engine.max_sites", DefaultMaxSites)
	v.SetDefault("engine.top_site_offset", DefaultTopSiteOffset)
	v.SetDefault("engine.bridge_site_offset", DefaultBridgeSiteOffset)
	v.SetDefault("engine.hollow_site_offset", DefaultHollowSiteOffset)
	v.SetDefault("engine.electronegativity_k", DefaultElectronegativityK)
	v.SetDefault("engine.default_random_seed", 0)
	v.SetDefault("engine.seed_from_clock_if_unset", true)
}

// Load reads the YAML file at configPath, merges SURFGEN_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from SURFGEN_* environment variables
// with no config file, the preferred strategy for containerised deployments.
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath and invokes onChange with the newly parsed Config
// whenever the file changes on disk.  Intended for hot-reloading non-critical
// settings such as log level and engine sampling rates; callers are
// responsible for applying only the safe subset at runtime.  Changes that
// fail to parse or validate are dropped without invoking onChange.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read; errors are ignored here because callers Load first.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}

// MustLoad wraps Load and panics on error; for use in main() where a
// config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
