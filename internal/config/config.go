// Package config loads the engine configuration from YAML and the
// environment.
package config

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Environment variables that override file values.
const (
	EnvWorkers = "NDARRAY_WORKERS"
	EnvBLAS    = "NDARRAY_BLAS"
	EnvSeed    = "NDARRAY_SEED"
)

// Errors returned by Validate.
var (
	ErrInvalidWorkers  = errors.New("config: parallel.workers must be >= 0")
	ErrInvalidMinChunk = errors.New("config: parallel.min_chunk must be >= 0")
)

// Config is the engine configuration.
//
//	parallel: {enabled: true, workers: 8, min_chunk: 4096}
//	matmul:   {blas: false}
//	random:   {seed: 42}
type Config struct {
	Parallel parallel.Config `yaml:"parallel"`
	MatMul   MatMul          `yaml:"matmul"`
	Random   Random          `yaml:"random"`
}

// MatMul configures matrix multiplication.
type MatMul struct {
	BLAS bool `yaml:"blas"`
}

// Random configures the default random source.
type Random struct {
	// Seed makes the default source deterministic. Nil keeps it
	// nondeterministic.
	Seed *uint64 `yaml:"seed,omitempty"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{Parallel: parallel.DefaultConfig()}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.Parallel.NumWorkers < 0 {
		return ErrInvalidWorkers
	}
	if c.Parallel.MinChunkSize < 0 {
		return ErrInvalidMinChunk
	}
	return nil
}

// Backend returns the CPU backend configuration.
func (c Config) Backend() cpu.Config {
	return cpu.Config{Parallel: c.Parallel, BLAS: c.MatMul.BLAS}
}

// Parse reads YAML on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "config: decode")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the configuration file at path, applies environment overrides
// and validates the result. An empty path yields Default with overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "config: read %s", path)
		}
		if cfg, err = Parse(bytes.NewReader(data)); err != nil {
			return Config{}, errors.WithMessage(err, path)
		}
		klog.V(2).InfoS("Loaded config", "path", path)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "config: %s", EnvWorkers)
		}
		c.Parallel.NumWorkers = n
		c.Parallel.Enabled = n > 1
	}
	if v, ok := lookup(EnvBLAS); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "config: %s", EnvBLAS)
		}
		c.MatMul.BLAS = b
	}
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "config: %s", EnvSeed)
		}
		c.Random.Seed = &seed
	}
	return nil
}
