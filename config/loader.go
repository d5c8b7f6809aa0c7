// SPDX-License-Identifier: MIT
// Package: gfp/config
//
// loader.go — layered loading: defaults, YAML file, environment, validation.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gfp/compare"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GFP_"

var validate = newValidator()

// newValidator returns a validator with the custom "distance" tag. It runs
// at package init, so a failed registration panics.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("distance", validDistance); err != nil {
		panic(fmt.Sprintf("config: register distance validation: %v", err))
	}

	return v
}

// validDistance accepts any name ParseMetric understands.
func validDistance(fl validator.FieldLevel) bool {
	_, err := compare.ParseMetric(fl.Field().String())
	return err == nil
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty) and GFP_* environment variables, then validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, errors.Join(err, ErrInvalidConfig))
		}
		defer f.Close()
		if err := decode(f, &cfg); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse decodes YAML from r over Default and validates the result without
// consulting the environment.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := decode(r, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its struct tag.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate: %w", errors.Join(err, ErrInvalidConfig))
	}

	return nil
}

// decode overlays YAML onto cfg. Unknown keys are rejected; an empty
// document leaves cfg unchanged.
func decode(r io.Reader, cfg *Config) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read: %w", errors.Join(err, ErrInvalidConfig))
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("yaml: %w", errors.Join(err, ErrInvalidConfig))
	}

	return nil
}

// envBinding ties one variable to a setter on Config.
type envBinding struct {
	key string
	set func(c *Config, v string) error
}

var envBindings = []envBinding{
	{"PAGERANK_DAMPING", floatSetter(func(c *Config) *float64 { return &c.PageRank.Damping })},
	{"PAGERANK_TOLERANCE", floatSetter(func(c *Config) *float64 { return &c.PageRank.Tolerance })},
	{"PAGERANK_MAX_ITERATIONS", intSetter(func(c *Config) *int { return &c.PageRank.MaxIterations })},
	{"EIGENVECTOR_TOLERANCE", floatSetter(func(c *Config) *float64 { return &c.Eigenvector.Tolerance })},
	{"EIGENVECTOR_MAX_ITERATIONS", intSetter(func(c *Config) *int { return &c.Eigenvector.MaxIterations })},
	{"WORKERS", intSetter(func(c *Config) *int { return &c.Workers })},
	{"DISTANCE", func(c *Config, v string) error { c.Distance = v; return nil }},
	{"LOG_LEVEL", func(c *Config, v string) error { c.Log.Level = strings.ToLower(v); return nil }},
	{"LOG_DEVELOPMENT", func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.Log.Development = b
		return nil
	}},
}

// applyEnv overlays every set GFP_* variable found through lookup.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	for _, b := range envBindings {
		v, ok := lookup(EnvPrefix + b.key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		if err := b.set(cfg, strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("env %s%s=%q: %w", EnvPrefix, b.key, v, errors.Join(err, ErrInvalidConfig))
		}
	}

	return nil
}

func floatSetter(field func(*Config) *float64) func(*Config, string) error {
	return func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(c) = f
		return nil
	}
}

func intSetter(field func(*Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}
