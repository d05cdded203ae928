package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/pathgeom"
)

// EnvPrefix prefixes the environment variables read by [Load], as in
// PATHGEOM_TOLERANCE.
const EnvPrefix = "PATHGEOM"

type Config struct {
	// Flattening tolerance. Non-positive values select
	// [pathgeom.DefaultTolerance].
	Tolerance float64 `toml:"tolerance" envconfig:"TOLERANCE"`
	// Distance between samples when marching along polylines.
	Step float64 `toml:"step" envconfig:"STEP"`
	// Radius over which normals are blended at corners.
	CornerRadius float64 `toml:"corner_radius" envconfig:"CORNER_RADIUS"`
	// Seed of the sketch effect.
	Seed uint64 `toml:"seed" envconfig:"SEED"`
	// Maximum number of fractional digits in output. 0 means as many as
	// needed.
	Precision int `toml:"precision" envconfig:"PRECISION"`
}

func Default() *Config {
	return &Config{
		Tolerance: pathgeom.DefaultTolerance,
		Step:      8,
	}
}

// Load returns the default configuration, overridden by the TOML file at
// path, if path isn't empty, and then by the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) {
		errs = append(errs, fmt.Errorf("tolerance must be finite, got %g", c.Tolerance))
	}
	if !(c.Step > 0) || math.IsInf(c.Step, 0) {
		errs = append(errs, fmt.Errorf("step must be positive and finite, got %g", c.Step))
	}
	if c.CornerRadius < 0 || math.IsNaN(c.CornerRadius) {
		errs = append(errs, fmt.Errorf("corner radius must not be negative, got %g", c.CornerRadius))
	}
	if c.Precision < 0 {
		errs = append(errs, fmt.Errorf("precision must not be negative, got %d", c.Precision))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
