package config

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

const (
	DefaultNodeCount   = 3
	DefaultHopTimeout  = 30 * time.Second
	DefaultConcurrency = 4
)

type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Store    StoreConfig    `yaml:"store"`
}

// PipelineConfig sizes the mixing chain. The retry budget of a ballot box is
// fixed and not part of the configuration.
type PipelineConfig struct {
	NodeCount   int           `yaml:"nodeCount"`
	HopTimeout  time.Duration `yaml:"hopTimeout"`
	Concurrency int           `yaml:"concurrency"`
}

type StoreConfig struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"inMemory"`
}

func Default() *Config {
	return (&Config{Store: StoreConfig{InMemory: true}}).WithDefaults()
}

// WithDefaults fills zero pipeline values.
func (c *Config) WithDefaults() *Config {
	if c.Pipeline.NodeCount == 0 {
		c.Pipeline.NodeCount = DefaultNodeCount
	}
	if c.Pipeline.HopTimeout == 0 {
		c.Pipeline.HopTimeout = DefaultHopTimeout
	}
	if c.Pipeline.Concurrency == 0 {
		c.Pipeline.Concurrency = DefaultConcurrency
	}
	return c
}

func (c *Config) Validate() error {
	switch {
	case c.Pipeline.NodeCount < 1:
		return errors.WithMessagef(ErrInvalidConfig, "nodeCount %d", c.Pipeline.NodeCount)
	case c.Pipeline.HopTimeout < 0:
		return errors.WithMessagef(ErrInvalidConfig, "hopTimeout %s", c.Pipeline.HopTimeout)
	case c.Pipeline.Concurrency < 1:
		return errors.WithMessagef(ErrInvalidConfig, "concurrency %d", c.Pipeline.Concurrency)
	case !c.Store.InMemory && c.Store.Path == "":
		return errors.WithMessage(ErrInvalidConfig, "store.path is required unless store.inMemory is set")
	}
	return nil
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a yaml document, rejecting unknown keys.
func Read(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "read config")
	}
	c.WithDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
