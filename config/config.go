package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/graphsat/vertexcover/pkg/sat"
)

type File struct {
	VertexCoverConfig Config `yaml:"vertexCover"`
}

type Config struct {
	Backend                  string `yaml:"backend"`
	ExitOnInvalidVertexCount *bool  `yaml:"exitOnInvalidVertexCount"`
	Debug                    bool   `yaml:"debug"`
	Trace                    bool   `yaml:"trace"`
	DumpDir                  string `yaml:"dumpDir"`
	MetricsFile              string `yaml:"metricsFile"`
	CacheSize                int    `yaml:"cacheSize"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	if c.Backend == "" {
		c.Backend = sat.Gini
	}
	if c.ExitOnInvalidVertexCount == nil {
		exit := true
		c.ExitOnInvalidVertexCount = &exit
	}
}

// ExitOnInvalid reports whether an invalid vertex count should stop
// processing.
func (c *Config) ExitOnInvalid() bool {
	return c.ExitOnInvalidVertexCount == nil || *c.ExitOnInvalidVertexCount
}

// Validate checks c once flags have been applied on top of the file.
func (c *Config) Validate() error {
	if _, err := sat.NewFactory(c.Backend); err != nil {
		return err
	}
	if c.CacheSize < 0 {
		return errors.Errorf("cacheSize must not be negative, got %d", c.CacheSize)
	}
	return nil
}

func LoadConfig(cfgPath string) (*Config, error) {
	path := os.ExpandEnv(cfgPath)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()

	d, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	var cfgFile File
	if err := yaml.UnmarshalStrict(d, &cfgFile); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}

	config := &cfgFile.VertexCoverConfig
	config.setDefaults()

	return config, nil
}
