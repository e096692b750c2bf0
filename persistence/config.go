// SPDX-License-Identifier: MIT

package persistence

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtopo/barcode"
	"github.com/katalvlaran/lvtopo/field"
	"github.com/katalvlaran/lvtopo/stream"
)

// Algorithm names accepted by Config.
const (
	AlgorithmClassical = "classical"
	AlgorithmPHCol     = "phcol"
	AlgorithmPHRow     = "phrow"
	AlgorithmPCoh      = "pcoh"
)

// Field names accepted by Config.
const (
	FieldGF2      = "gf2"
	FieldModular  = "modular"
	FieldRational = "rational"
)

// Config describes one persistence computation, loadable from YAML:
//
//	min_dimension: 0
//	max_dimension: 2
//	algorithm: phcol
//	policy: absolute-homology
//	field: modular
//	modulus: 3
//	verify: true
type Config struct {
	MinDimension int    `json:"min_dimension" yaml:"min_dimension"`
	MaxDimension int    `json:"max_dimension" yaml:"max_dimension"`
	Algorithm    string `json:"algorithm" yaml:"algorithm"`
	Policy       string `json:"policy" yaml:"policy"`
	Field        string `json:"field" yaml:"field"`
	Modulus      int64  `json:"modulus" yaml:"modulus"`
	Verify       bool   `json:"verify" yaml:"verify"`
}

// DefaultConfig returns the engine defaults: dimensions [0, 2), PHCol,
// absolute homology over GF(2), no verification.
func DefaultConfig() Config {
	return Config{
		MinDimension: DefaultMinDimension,
		MaxDimension: DefaultMaxDimension,
		Algorithm:    AlgorithmPHCol,
		Policy:       AbsoluteHomology.String(),
		Field:        FieldGF2,
		Verify:       DefaultVerification,
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected. An empty document yields the defaults.
//
// Errors: ErrInvalidConfig (wrapping the decoder error when there is one).
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("ParseConfig: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("LoadConfig: %w", err)
	}

	return ParseConfig(data)
}

// Validate checks ranges, names and algorithm/policy compatibility:
// phcol takes homology policies, phrow cohomology policies, classical and
// pcoh only absolute ones.
//
// Errors: ErrInvalidConfig.
func (c Config) Validate() error {
	if c.MinDimension < 0 || c.MaxDimension < c.MinDimension {
		return fmt.Errorf("Validate: dimensions [%d, %d): %w", c.MinDimension, c.MaxDimension, ErrInvalidConfig)
	}
	policy, err := c.ResolvedPolicy()
	if err != nil {
		return fmt.Errorf("Validate: %w: %w", ErrInvalidConfig, err)
	}
	switch c.Algorithm {
	case AlgorithmPHCol:
		if !policy.Homology() {
			return fmt.Errorf("Validate: %s cannot produce %v: %w", c.Algorithm, policy, ErrInvalidConfig)
		}
	case AlgorithmPHRow:
		if policy.Homology() {
			return fmt.Errorf("Validate: %s cannot produce %v: %w", c.Algorithm, policy, ErrInvalidConfig)
		}
	case AlgorithmClassical, AlgorithmPCoh:
		if !policy.Absolute() {
			return fmt.Errorf("Validate: %s cannot produce %v: %w", c.Algorithm, policy, ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("Validate: algorithm %q: %w", c.Algorithm, ErrInvalidConfig)
	}
	switch c.Field {
	case FieldGF2, FieldRational:
	case FieldModular:
		if _, err = field.NewModular(c.Modulus); err != nil {
			return fmt.Errorf("Validate: %w: %w", ErrInvalidConfig, err)
		}
	default:
		return fmt.Errorf("Validate: field %q: %w", c.Field, ErrInvalidConfig)
	}

	return nil
}

// ResolvedPolicy parses the Policy name.
func (c Config) ResolvedPolicy() (Policy, error) { return ParsePolicy(c.Policy) }

// Options returns the engine options the config implies.
func (c Config) Options() []Option {
	return []Option{
		WithDimensions(c.MinDimension, c.MaxDimension),
		WithVerification(c.Verify),
	}
}

// Run executes the configured algorithm on s with e. The engine's own
// options apply; the config's field and dimensions are not consulted here.
//
// Errors: ErrInvalidConfig, plus whatever the algorithm returns.
func Run[U comparable, F any](e *Engine[U, F], s stream.Filtered[U], cfg Config) (*barcode.Collection[int], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := cfg.ResolvedPolicy()
	if err != nil {
		return nil, fmt.Errorf("Run: %w: %w", ErrInvalidConfig, err)
	}
	switch cfg.Algorithm {
	case AlgorithmClassical:
		return e.Classical(s)
	case AlgorithmPCoh:
		return e.PCoh(s)
	default:
		return e.ComputeIntervals(s, policy)
	}
}

// Compute builds the engine the config describes, over the configured field,
// and runs it on s. opts are applied after the config's own options.
func Compute[U comparable](cfg Config, s stream.Filtered[U], basis func(a, b U) int, opts ...Option) (*barcode.Collection[int], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts = append(cfg.Options(), opts...)
	switch cfg.Field {
	case FieldModular:
		return Run(New[U, int64](field.MustModular(cfg.Modulus), basis, opts...), s, cfg)
	case FieldRational:
		return Run(New[U, *big.Rat](field.Rational{}, basis, opts...), s, cfg)
	default:
		return Run(New[U, bool](field.Boolean{}, basis, opts...), s, cfg)
	}
}
