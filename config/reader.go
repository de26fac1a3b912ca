package config

import (
	"os"

	"github.com/pelletier/go-toml"
)

const (
	BuildVersion = "v0.1.0-BUILD_VERSION"

	DefaultLogLevel  = 2
	DefaultPrecision = 8
	DefaultWidth     = 8
)

type Custom struct {
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
	Rational struct {
		Precision int32 `toml:"precision"`
	} `toml:"rational"`
	Board struct {
		Width int `toml:"width"`
	} `toml:"board"`
}

func Default() *Custom {
	var config Custom
	config.fill()
	return &config
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	config.fill()
	return &config, nil
}

func (c *Custom) fill() {
	if c.Log.Level == 0 {
		c.Log.Level = DefaultLogLevel
	}
	if c.Rational.Precision == 0 {
		c.Rational.Precision = DefaultPrecision
	}
	if c.Board.Width == 0 {
		c.Board.Width = DefaultWidth
	}
}
