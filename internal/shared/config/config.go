// Package config loads the operational tuning knobs for the transfer
// decision engine: the solver deadline, default transport assumption,
// alternative-count cap, solve-rate budget, and the acuity/level affinity
// toggle. The Rules Registry (survival windows, capability/resource tables,
// MEDEVAC role timelines) is not configured here — those are compile-time
// constants, not ops knobs, and live in internal/transfer/rules.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EngineOptions holds every environment-overridable knob the engine reads
// at construction time. Zero-value EngineOptions is not valid; use Load or
// Default.
type EngineOptions struct {
	Solver    SolverConfig    `yaml:"solver" mapstructure:"solver"`
	Transport TransportConfig `yaml:"transport" mapstructure:"transport"`
	RateLimit RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
	Cost      CostConfig      `yaml:"cost" mapstructure:"cost"`
}

// SolverConfig bounds how long a single Decide call is allowed to search.
type SolverConfig struct {
	// DeadlineMS is the wall-clock budget, in milliseconds, for the MCI/PHE
	// optimizer within one Decide call; the MEDEVAC chain builder does not
	// use it. When it elapses mid-scan with an incumbent already
	// found, the engine returns that incumbent with solver_status FEASIBLE
	// instead of OPTIMAL.
	DeadlineMS int `yaml:"deadline_ms" mapstructure:"deadline_ms"`
	// MaxAlternatives caps how many runner-up facilities are enumerated
	// alongside the primary decision.
	MaxAlternatives int `yaml:"max_alternatives" mapstructure:"max_alternatives"`
}

func (s SolverConfig) Deadline() time.Duration {
	return time.Duration(s.DeadlineMS) * time.Millisecond
}

// TransportConfig picks the ground/air assumption used by geo.ETA when a
// facility pair's transport mode is not explicit in the request.
type TransportConfig struct {
	DefaultMode string `yaml:"default_mode" mapstructure:"default_mode"`
}

// RateLimitConfig bounds how many solver passes (alternative re-solves
// plus MEDEVAC hop searches) the engine will run per
// second across all callers sharing one engine.Governor. A non-positive
// value means unlimited.
type RateLimitConfig struct {
	SolvesPerSecond float64 `yaml:"solves_per_second" mapstructure:"solves_per_second"`
	Burst           int     `yaml:"burst" mapstructure:"burst"`
}

// CostConfig toggles supplemented cost-model behavior beyond spec.md's
// literal formula.
type CostConfig struct {
	// EnableAcuityLevelAffinity adds a soft term rewarding assignment of
	// higher-acuity patients to lower-numbered (higher-capability)
	// facility levels. Off by default so the default cost formula matches
	// the documented one exactly.
	EnableAcuityLevelAffinity bool `yaml:"enable_acuity_level_affinity" mapstructure:"enable_acuity_level_affinity"`
}

// Default returns the options the engine uses when no configuration source
// is wired in at all — every field here matches spec.md's literal text.
func Default() EngineOptions {
	return EngineOptions{
		Solver: SolverConfig{
			DeadlineMS:      5000,
			MaxAlternatives: 3,
		},
		Transport: TransportConfig{
			DefaultMode: "ground",
		},
		RateLimit: RateLimitConfig{
			SolvesPerSecond: 0,
			Burst:           0,
		},
		Cost: CostConfig{
			EnableAcuityLevelAffinity: false,
		},
	}
}

// Load reads EngineOptions from an optional config file plus environment
// variables prefixed TRANSFER_, falling back to Default for anything unset.
// A missing config file is not an error; a malformed one is.
func Load() (EngineOptions, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TRANSFER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("solver.deadline_ms", def.Solver.DeadlineMS)
	v.SetDefault("solver.max_alternatives", def.Solver.MaxAlternatives)
	v.SetDefault("transport.default_mode", def.Transport.DefaultMode)
	v.SetDefault("rate_limit.solves_per_second", def.RateLimit.SolvesPerSecond)
	v.SetDefault("rate_limit.burst", def.RateLimit.Burst)
	v.SetDefault("cost.enable_acuity_level_affinity", def.Cost.EnableAcuityLevelAffinity)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return EngineOptions{}, err
		}
	}

	var opts EngineOptions
	if err := v.Unmarshal(&opts); err != nil {
		return EngineOptions{}, err
	}

	return opts, nil
}
