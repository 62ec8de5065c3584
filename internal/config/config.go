// Package config resolves process configuration from defaults, the
// environment (SUBWAY_ prefix, optionally seeded from a .env file) and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"subway-simulation/internal/domain"
	"subway-simulation/internal/platform/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	KeyStations     = "stations"
	KeyStartStation = "start-station"
	KeyRate         = "rate"
	KeySubwaySpeed  = "subway-speed"
	KeyTimeUnit     = "time-unit"
	KeyVerbosity    = "verbosity"
	KeyPrompt       = "prompt"

	EnvPrefix = "subway"
)

// Config holds everything the simulator binary needs at startup.
type Config struct {
	// Initial simulation parameters. They are applied through the same
	// validation as interactive "set" commands.
	Simulation domain.Config
	LogLevel   logrus.Level
	// Print an input prompt when stdin is a terminal.
	Prompt bool
}

// LoadDotEnv copies variables from .env files into the environment
// without overriding ones already set.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyStations, domain.DefaultLineLength)
	v.SetDefault(KeyStartStation, domain.DefaultStartStation)
	v.SetDefault(KeyRate, domain.DefaultTimeRate)
	v.SetDefault(KeySubwaySpeed, domain.DefaultTravelSpeed)
	v.SetDefault(KeyTimeUnit, domain.DefaultTimeUnit)
	v.SetDefault(KeyVerbosity, "warning")
	v.SetDefault(KeyPrompt, true)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return v
}

func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		return nil, errors.New("load config: viper is nil")
	}

	unit := v.GetDuration(KeyTimeUnit)
	if unit <= 0 {
		return nil, fmt.Errorf("load config: %s must be positive, got %q", KeyTimeUnit, v.GetString(KeyTimeUnit))
	}

	level, err := logging.ParseLevel(v.GetString(KeyVerbosity))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &Config{
		Simulation: domain.Config{
			LineLength:   v.GetInt(KeyStations),
			StartStation: v.GetInt(KeyStartStation),
			TimeRate:     v.GetFloat64(KeyRate),
			TravelSpeed:  v.GetFloat64(KeySubwaySpeed),
			TimeUnit:     unit,
		},
		LogLevel: level,
		Prompt:   v.GetBool(KeyPrompt),
	}, nil
}

// Fields lists the initial parameters in the order they must be applied:
// the line length first, so the start station is checked against it.
func (c *Config) Fields() []FieldValue {
	s := c.Simulation
	return []FieldValue{
		{Field: domain.FieldStations, Value: float64(s.LineLength)},
		{Field: domain.FieldStartStation, Value: float64(s.StartStation)},
		{Field: domain.FieldRate, Value: s.TimeRate},
		{Field: domain.FieldSubwaySpeed, Value: s.TravelSpeed},
	}
}

type FieldValue struct {
	Field domain.Field
	Value float64
}
