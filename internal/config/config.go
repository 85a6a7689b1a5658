// Package config loads configs/config.yml plus CHILLER_* environment overrides
// and validates everything once, before any reading is processed.
package config

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"chiller_guard/internal/guard"
	"chiller_guard/internal/health"
	"chiller_guard/internal/models"
	"chiller_guard/internal/physics"
	"chiller_guard/internal/scenario"

	"github.com/spf13/viper"
)

const envPrefix = "CHILLER"

type Config struct {
	Port     string            `mapstructure:"port"`
	LogLevel string            `mapstructure:"log_level"`
	DB       DBConfig          `mapstructure:"db"`
	Server   ServerConfig      `mapstructure:"server"`
	Physics  physics.Constants `mapstructure:"physics"`
	Guard    guard.Config      `mapstructure:"guard"`
	Health   health.Config     `mapstructure:"health"`
	Alerts   AlertConfig       `mapstructure:"alerts"`
	Replay   ReplayConfig      `mapstructure:"replay"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
}

// AlertConfig decides when an accepted reading raises a HEALTH_ALERT event.
type AlertConfig struct {
	HealthBelow float64 `mapstructure:"health_below"`
}

// ReplayConfig drives the background replay simulator.
type ReplayConfig struct {
	Enabled  bool               `mapstructure:"enabled"`
	Scenario models.FailureType `mapstructure:"scenario"`
	AssetID  string             `mapstructure:"asset_id"`
	Days     int                `mapstructure:"days"`
	Interval time.Duration      `mapstructure:"interval"`
	Tick     time.Duration      `mapstructure:"tick"`
	Seed     int64              `mapstructure:"seed"`
	Loop     bool               `mapstructure:"loop"`
}

var ErrInvalid = errors.New("invalid config")

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("db.path", "chiller.db")
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	// generate with ingest=true runs inside one request
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("physics.saturation_offset", physics.DefaultSaturationOffset)
	v.SetDefault("guard.approach_tolerance", guard.DefaultApproachTolerance)
	v.SetDefault("guard.strict", false)
	v.SetDefault("alerts.health_below", 55.0)
	v.SetDefault("replay.enabled", false)
	v.SetDefault("replay.scenario", string(models.FailureHealthy))
	v.SetDefault("replay.asset_id", scenario.DefaultAssetID)
	v.SetDefault("replay.interval", scenario.DefaultInterval)
	v.SetDefault("replay.tick", time.Second)
	v.SetDefault("replay.seed", 1)
	v.SetDefault("replay.loop", true)
	setBoundDefaults(v)
}

// setBoundDefaults registers every field of the built-in bound and band tables
// as its own key, so a file entry that sets only warn_max keeps the other
// fields of that entry.
func setBoundDefaults(v *viper.Viper) {
	gd := guard.DefaultConfig()
	for ch, r := range gd.Ranges {
		k := "guard.ranges." + ch + "."
		v.SetDefault(k+"min", r.Min)
		v.SetDefault(k+"max", r.Max)
		v.SetDefault(k+"warn_min", r.WarnMin)
		v.SetDefault(k+"warn_max", r.WarnMax)
	}
	for ch, r := range gd.Rates {
		k := "guard.rates." + ch + "."
		v.SetDefault(k+"warn", r.Warn)
		v.SetDefault(k+"max", r.Max)
	}
	for name, b := range health.DefaultBands() {
		k := "health.bands." + name + "."
		v.SetDefault(k+"direction", string(b.Direction))
		v.SetDefault(k+"excellent", b.Excellent)
		v.SetDefault(k+"good", b.Good)
		v.SetDefault(k+"fair", b.Fair)
		v.SetDefault(k+"poor", b.Poor)
		v.SetDefault(k+"target", b.Target)
		v.SetDefault(k+"unit", b.Unit)
		v.SetDefault(k+"description", b.Description)
	}
}

// Load reads path, or configs/config.yml when path is empty. A missing default
// file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyDomainDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDomainDefaults fills band and bound tables key by key for configs that
// did not come through setDefaults. Weights are taken whole: a partial weight
// map from the file is validated as given.
func (c *Config) applyDomainDefaults() {
	if len(c.Health.Weights) == 0 {
		c.Health.Weights = health.DefaultWeights()
	}
	c.Health.Bands = merge(health.DefaultBands(), c.Health.Bands)

	gd := guard.DefaultConfig()
	c.Guard.Ranges = merge(gd.Ranges, c.Guard.Ranges)
	c.Guard.Rates = merge(gd.Rates, c.Guard.Rates)

	if c.Replay.Days == 0 {
		c.Replay.Days = int(scenario.DefaultDuration(c.Replay.Scenario) / (24 * time.Hour))
	}
}

func merge[V any](defaults, override map[string]V) map[string]V {
	out := maps.Clone(defaults)
	maps.Copy(out, override)
	return out
}

// Validate fails fast on anything the domain packages would reject.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("%w: port is empty", ErrInvalid)
	}
	if c.DB.Path == "" {
		return fmt.Errorf("%w: db.path is empty", ErrInvalid)
	}
	if c.Physics.SaturationOffset < 0 {
		return fmt.Errorf("%w: physics.saturation_offset must be >= 0", ErrInvalid)
	}
	if err := c.Guard.Validate(); err != nil {
		return fmt.Errorf("guard: %w", err)
	}
	if err := c.Health.Validate(); err != nil {
		return fmt.Errorf("health: %w", err)
	}
	if c.Alerts.HealthBelow < 0 || c.Alerts.HealthBelow > 100 {
		return fmt.Errorf("%w: alerts.health_below must be within [0, 100]", ErrInvalid)
	}
	if c.Replay.Enabled {
		if _, ok := scenario.Lookup(c.Replay.Scenario); !ok {
			return fmt.Errorf("%w: replay.scenario %q", ErrInvalid, c.Replay.Scenario)
		}
		if c.Replay.Days < 0 || c.Replay.Interval <= 0 || c.Replay.Tick <= 0 {
			return fmt.Errorf("%w: replay needs days >= 0, interval > 0, tick > 0", ErrInvalid)
		}
	}
	return nil
}

// ReplaySpec turns the replay section into a scenario spec.
func (c *Config) ReplaySpec() models.ScenarioSpec {
	return models.ScenarioSpec{
		Type:     c.Replay.Scenario,
		AssetID:  c.Replay.AssetID,
		Duration: time.Duration(c.Replay.Days) * 24 * time.Hour,
		Interval: c.Replay.Interval,
	}
}
