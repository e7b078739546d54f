package config

import "time"

// Default value constants.  The builder and engine defaults are the canonical
// demo parameters; changing them changes the shape of every generated slab.
const (
	DefaultServerPort      = 8080
	DefaultServerMode      = "debug"
	DefaultShutdownTimeout = 30 * time.Second

	DefaultRedisAddr      = "localhost:6379"
	DefaultRedisTTL       = 15 * time.Minute
	DefaultRedisKeyPrefix = "surfgen:"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMetricsNamespace = "surfgen"

	DefaultRepeatsInPlane111 = 3
	DefaultLayers111         = 4
	DefaultRepeatsInPlane100 = 4
	DefaultLayers100         = 4
	DefaultVacuumGap         = 10.0
	DefaultFallbackElement   = "Au"

	DefaultSurfaceBand         = 1.5
	DefaultTopSiteHeight       = 2.0
	DefaultBridgeSiteHeight    = 1.8
	DefaultHollowSiteHeight    = 1.5
	DefaultNeighborMinDistance = 2.0
	DefaultNeighborMaxDistance = 3.0
	DefaultTopSampleRate       = 0.7
	DefaultBridgeSampleRate    = 0.8
	DefaultJitterAmplitude     = 0.1
	DefaultMinSites            = 5
	DefaultMaxSites            = 8
	DefaultTopSiteOffset       = 0.5
	DefaultBridgeSiteOffset    = -0.2
	DefaultHollowSiteOffset    = -0.8
	DefaultElectronegativityK  = 0.5
)

// ApplyDefaults fills every zero-value field in cfg with the platform
// default.  Fields already set by the caller are left unchanged so explicit
// configuration always wins.  Call after unmarshalling and before Validate.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.DefaultTTL == 0 {
		cfg.Redis.DefaultTTL = DefaultRedisTTL
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}
	if cfg.Redis.PoolSize == 0 {
		cfg.Redis.PoolSize = 10
	}
	if cfg.Redis.DialTimeout == 0 {
		cfg.Redis.DialTimeout = 5 * time.Second
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}

	if cfg.Builder.RepeatsInPlane111 == 0 {
		cfg.Builder.RepeatsInPlane111 = DefaultRepeatsInPlane111
	}
	if cfg.Builder.Layers111 == 0 {
		cfg.Builder.Layers111 = DefaultLayers111
	}
	if cfg.Builder.RepeatsInPlane100 == 0 {
		cfg.Builder.RepeatsInPlane100 = DefaultRepeatsInPlane100
	}
	if cfg.Builder.Layers100 == 0 {
		cfg.Builder.Layers100 = DefaultLayers100
	}
	if cfg.Builder.VacuumGap == 0 {
		cfg.Builder.VacuumGap = DefaultVacuumGap
	}
	if cfg.Builder.FallbackElement == "" {
		cfg.Builder.FallbackElement = DefaultFallbackElement
	}

	if cfg.Engine.SurfaceBand == 0 {
		cfg.Engine.SurfaceBand = DefaultSurfaceBand
	}
	if cfg.Engine.TopSiteHeight == 0 {
		cfg.Engine.TopSiteHeight = DefaultTopSiteHeight
	}
	if cfg.Engine.BridgeSiteHeight == 0 {
		cfg.Engine.BridgeSiteHeight = DefaultBridgeSiteHeight
	}
	if cfg.Engine.HollowSiteHeight == 0 {
		cfg.Engine.HollowSiteHeight = DefaultHollowSiteHeight
	}
	if cfg.Engine.NeighborMinDistance == 0 {
		cfg.Engine.NeighborMinDistance = DefaultNeighborMinDistance
	}
	if cfg.Engine.NeighborMaxDistance == 0 {
		cfg.Engine.NeighborMaxDistance = DefaultNeighborMaxDistance
	}
	if cfg.Engine.TopSampleRate == 0 {
		cfg.Engine.TopSampleRate = DefaultTopSampleRate
	}
	if cfg.Engine.BridgeSampleRate == 0 {
		cfg.Engine.BridgeSampleRate = DefaultBridgeSampleRate
	}
	if cfg.Engine.JitterAmplitude == 0 {
		cfg.Engine.JitterAmplitude = DefaultJitterAmplitude
	}
	if cfg.Engine.MinSites == 0 {
		cfg.Engine.MinSites = DefaultMinSites
	}
	if cfg.Engine.MaxSites == 0 {
		cfg.Engine.MaxSites = DefaultMaxSites
	}
	if cfg.Engine.TopSiteOffset == 0 {
		cfg.Engine.TopSiteOffset = DefaultTopSiteOffset
	}
	if cfg.Engine.BridgeSiteOffset == 0 {
		cfg.Engine.BridgeSiteOffset = DefaultBridgeSiteOffset
	}
	if cfg.Engine.HollowSiteOffset == 0 {
		cfg.Engine.HollowSiteOffset = DefaultHollowSiteOffset
	}
	if cfg.Engine.ElectronegativityK == 0 {
		cfg.Engine.ElectronegativityK = DefaultElectronegativityK
	}
}

// NewDefaultConfig returns a Config populated entirely with defaults.
// Useful for tests and for running without a config file.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
