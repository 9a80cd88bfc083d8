// Package config holds the server and client settings, loadable from a
// YAML file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server Server `yaml:"server"`
	Client Client `yaml:"client"`
}

type Server struct {
	Addr    string `yaml:"addr"`
	Workers int    `yaml:"workers"`
}

type Client struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
	BufferSize     int `yaml:"buffer_size"`
}

func Default() *Config {
	return &Config{
		Server: Server{
			Addr:    "0.0.0.0:8080",
			Workers: 4,
		},
		Client: Client{
			TimeoutSeconds: 30,
			BufferSize:     1024,
		},
	}
}

// Load reads the file at path and unmarshals it over the defaults, so a
// partial file only overrides what it names.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
