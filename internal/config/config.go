// Package config holds the run configuration: defaults, an optional TOML
// file, .env files and CONTACTNET_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/contactnet/contact"
	"github.com/katalvlaran/contactnet/internal/logging"
	"github.com/pelletier/go-toml/v2"
)

// Dataset kinds.
const (
	DatasetVillage = "village"
	DatasetSchool  = "school"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CONTACTNET_"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	// Dataset selects the input kind: "village" (contact-record CSVs) or
	// "school" (one GEXF graph).
	Dataset string `toml:"dataset"`

	// Inputs are the input files, read in order.
	Inputs []string `toml:"inputs"`

	// Output is the metrics CSV path. Empty means OutputPath's default.
	Output string `toml:"output"`

	// Top is the length of each ranking.
	Top int `toml:"top"`

	// Bins is the number of degree histogram bins.
	Bins int `toml:"bins"`

	Loader      LoaderConfig      `toml:"loader"`
	Aggregation AggregationConfig `toml:"aggregation"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Logging     logging.Config    `toml:"logging"`
}

// LoaderConfig configures input decoding.
type LoaderConfig struct {
	// Comma is the CSV delimiter, a single character.
	Comma string `toml:"comma"`

	// WeightAttribute is the GEXF edge attribute read as the weight.
	WeightAttribute string `toml:"weight_attribute"`
}

// AggregationConfig configures event aggregation.
type AggregationConfig struct {
	// Policy resolves conflicting participant attributes: "first" or "last".
	Policy string `toml:"policy"`
}

// MetricsConfig configures the metrics engine.
type MetricsConfig struct {
	Damping       float64 `toml:"damping"`
	Tolerance     float64 `toml:"tolerance"`
	MaxIterations int     `toml:"max_iterations"`
	Sequential    bool    `toml:"sequential"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Dataset: DatasetVillage,
		Top:     10,
		Bins:    20,
		Loader: LoaderConfig{
			Comma:           ",",
			WeightAttribute: "weight",
		},
		Aggregation: AggregationConfig{Policy: contact.FirstSeen.String()},
		Metrics: MetricsConfig{
			Damping:       0.85,
			Tolerance:     1e-6,
			MaxIterations: 100,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads a TOML file over Default. An empty path returns Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnvFiles loads .env style files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from CONTACTNET_* variables:
// DATASET, INPUTS (comma separated), OUTPUT, TOP, BINS, COMMA,
// WEIGHT_ATTRIBUTE, POLICY, DAMPING, TOLERANCE, MAX_ITERATIONS,
// LOG_LEVEL, LOG_FORMAT and LOG_OUTPUT.
func (c *Config) ApplyEnv() error {
	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	num := func(name string, dst *int) error {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalid, EnvPrefix, name, v)
		}
		*dst = n
		return nil
	}
	float := func(name string, dst *float64) error {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not a number", ErrInvalid, EnvPrefix, name, v)
		}
		*dst = f
		return nil
	}

	str("DATASET", &c.Dataset)
	if v, ok := os.LookupEnv(EnvPrefix + "INPUTS"); ok {
		c.Inputs = splitList(v)
	}
	str("OUTPUT", &c.Output)
	str("COMMA", &c.Loader.Comma)
	str("WEIGHT_ATTRIBUTE", &c.Loader.WeightAttribute)
	str("POLICY", &c.Aggregation.Policy)
	str("LOG_LEVEL", &c.Logging.Level)
	str("LOG_FORMAT", &c.Logging.Format)
	str("LOG_OUTPUT", &c.Logging.Output)

	return errors.Join(
		num("TOP", &c.Top),
		num("BINS", &c.Bins),
		num("MAX_ITERATIONS", &c.Metrics.MaxIterations),
		float("DAMPING", &c.Metrics.Damping),
		float("TOLERANCE", &c.Metrics.Tolerance),
	)
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	switch c.Dataset {
	case DatasetVillage:
		if len(c.Inputs) == 0 {
			bad("dataset %q needs at least one input file", c.Dataset)
		}
	case DatasetSchool:
		if len(c.Inputs) != 1 {
			bad("dataset %q needs exactly one GEXF input, got %d", c.Dataset, len(c.Inputs))
		}
	default:
		bad("unknown dataset %q (want %q or %q)", c.Dataset, DatasetVillage, DatasetSchool)
	}
	if c.Top < 1 {
		bad("top must be at least 1, got %d", c.Top)
	}
	if c.Bins < 1 {
		bad("bins must be at least 1, got %d", c.Bins)
	}
	if utf8.RuneCountInString(c.Loader.Comma) != 1 {
		bad("comma must be a single character, got %q", c.Loader.Comma)
	}
	if _, err := contact.ParseAttributePolicy(c.Aggregation.Policy); err != nil {
		bad("policy: %v", err)
	}
	if c.Metrics.Damping < 0 || c.Metrics.Damping > 1 {
		bad("damping must be within [0, 1], got %g", c.Metrics.Damping)
	}
	if c.Metrics.Tolerance <= 0 {
		bad("tolerance must be positive, got %g", c.Metrics.Tolerance)
	}
	if c.Metrics.MaxIterations < 1 {
		bad("max_iterations must be at least 1, got %d", c.Metrics.MaxIterations)
	}
	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}

	return errors.Join(errs...)
}

// OutputPath returns Output, or "centralities_<dataset>.csv" when unset.
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return "centralities_" + c.Dataset + ".csv"
}

// CommaRune returns the first rune of Loader.Comma, or ',' when empty.
func (c *Config) CommaRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Loader.Comma)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
