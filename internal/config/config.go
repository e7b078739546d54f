// Package config defines all configuration structures for surfgen.  No I/O or
// parsing logic lives here, only plain data types and validation; loading is
// handled by loader.go.
package config

import (
	"fmt"
	"time"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RedisConfig holds connection parameters for the optional structure cache.
type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	DefaultTTL   time.Duration `mapstructure:"default_ttl"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"
	Output string `mapstructure:"output"`
}

// MetricsConfig holds prometheus exposition parameters.
type MetricsConfig struct {
	Enabled              bool   `mapstructure:"enabled"`
	Namespace            string `mapstructure:"namespace"`
	EnableProcessMetrics bool   `mapstructure:"enable_process_metrics"`
	EnableGoMetrics      bool   `mapstructure:"enable_go_metrics"`
}

// BuilderConfig holds slab generation parameters.  The defaults reproduce the
// canonical demo output: 3x3x4 two-atom-basis cells for (111), 4x4x4 for
// other terminations, 10 Å of vacuum.
type BuilderConfig struct {
	RepeatsInPlane111 int     `mapstructure:"repeats_in_plane_111"`
	Layers111         int     `mapstructure:"layers_111"`
	RepeatsInPlane100 int     `mapstructure:"repeats_in_plane_100"`
	Layers100         int     `mapstructure:"layers_100"`
	VacuumGap         float64 `mapstructure:"vacuum_gap"` // Å
	FallbackElement   string  `mapstructure:"fallback_element"`
}

// EngineConfig holds adsorption-site search parameters.  All distances are in
// Å, energies in eV.
type EngineConfig struct {
	SurfaceBand          float64 `mapstructure:"surface_band"`
	TopSiteHeight        float64 `mapstructure:"top_site_height"`
	BridgeSiteHeight     float64 `mapstructure:"bridge_site_height"`
	HollowSiteHeight     float64 `mapstructure:"hollow_site_height"`
	NeighborMinDistance  float64 `mapstructure:"neighbor_min_distance"`
	NeighborMaxDistance  float64 `mapstructure:"neighbor_max_distance"`
	TopSampleRate        float64 `mapstructure:"top_sample_rate"`
	BridgeSampleRate     float64 `mapstructure:"bridge_sample_rate"`
	JitterAmplitude      float64 `mapstructure:"jitter_amplitude"`
	MinSites             int     `mapstructure:"min_sites"`
	MaxSites             int     `mapstructure:"max_sites"`
	TopSiteOffset        float64 `mapstructure:"top_site_offset"`
	BridgeSiteOffset     float64 `mapstructure:"bridge_site_offset"`
	HollowSiteOffset     float64 `mapstructure:"hollow_site_offset"`
	ElectronegativityK   float64 `mapstructure:"electronegativity_k"`
	DefaultRandomSeed    int64   `mapstructure:"default_random_seed"`
	SeedFromClockIfUnset bool    `mapstructure:"seed_from_clock_if_unset"`
}

// Config is the root configuration structure for surfgen.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Builder BuilderConfig `mapstructure:"builder"`
	Engine  EngineConfig  `mapstructure:"engine"`
}

// Validate performs semantic validation of the fully-populated Config.  It
// returns the first error encountered; callers should treat any error as
// fatal and refuse to start.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when redis.enabled is true")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	if c.Builder.RepeatsInPlane111 < 1 || c.Builder.Layers111 < 1 {
		return fmt.Errorf("config: builder (111) grid dimensions must be >= 1")
	}
	if c.Builder.RepeatsInPlane100 < 1 || c.Builder.Layers100 < 1 {
		return fmt.Errorf("config: builder (100) grid dimensions must be >= 1")
	}
	if c.Builder.VacuumGap < 0 {
		return fmt.Errorf("config: builder.vacuum_gap must be >= 0, got %g", c.Builder.VacuumGap)
	}
	if c.Builder.FallbackElement == "" {
		return fmt.Errorf("config: builder.fallback_element is required")
	}

	if c.Engine.SurfaceBand <= 0 {
		return fmt.Errorf("config: engine.surface_band must be > 0, got %g", c.Engine.SurfaceBand)
	}
	if c.Engine.NeighborMinDistance >= c.Engine.NeighborMaxDistance {
		return fmt.Errorf("config: engine neighbor window [%g, %g] is empty",
			c.Engine.NeighborMinDistance, c.Engine.NeighborMaxDistance)
	}
	if c.Engine.TopSampleRate < 0 || c.Engine.TopSampleRate > 1 {
		return fmt.Errorf("config: engine.top_sample_rate %g is out of [0, 1]", c.Engine.TopSampleRate)
	}
	if c.Engine.BridgeSampleRate < 0 || c.Engine.BridgeSampleRate > 1 {
		return fmt.Errorf("config: engine.bridge_sample_rate %g is out of [0, 1]", c.Engine.BridgeSampleRate)
	}
	if c.Engine.JitterAmplitude < 0 {
		return fmt.Errorf("config: engine.jitter_amplitude must be >= 0, got %g", c.Engine.JitterAmplitude)
	}
	if c.Engine.MaxSites < 1 {
		return fmt.Errorf("config: engine.max_sites must be >= 1, got %d", c.Engine.MaxSites)
	}
	if c.Engine.MinSites < 0 || c.Engine.MinSites > c.Engine.MaxSites {
		return fmt.Errorf("config: engine.min_sites %d is out of [0, max_sites=%d]",
			c.Engine.MinSites, c.Engine.MaxSites)
	}

	return nil
}
