package main

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "file_backend"

type Config struct {
	Port        int            `yaml:"port" envconfig:"PORT"`
	Root        string         `yaml:"root" envconfig:"ROOT"`
	ContentType string         `yaml:"contentType" envconfig:"CONTENT_TYPE"`
	Optimize    OptimizeConfig `yaml:"optimize"`
}

type OptimizeConfig struct {
	Enabled    bool    `yaml:"enabled" envconfig:"OPTIMIZE_ENABLED"`
	Quality    float32 `yaml:"quality" envconfig:"OPTIMIZE_QUALITY"`
	Autofilter bool    `yaml:"autofilter" envconfig:"OPTIMIZE_AUTOFILTER"`
}

func defaultConfig() Config {
	return Config{
		Port: 8080,
		Optimize: OptimizeConfig{
			Quality:    80,
			Autofilter: true,
		},
	}
}

// getConfig layers the configuration sources: defaults, then the yaml
// file if one is given, then FILE_BACKEND_* environment variables.
func getConfig(filename string) (Config, error) {
	config := defaultConfig()
	if filename != "" {
		configBytes, err := os.ReadFile(filename)
		if err != nil {
			return config, err
		}
		if err := yaml.Unmarshal(configBytes, &config); err != nil {
			return config, err
		}
	}
	err := envconfig.Process(envPrefix, &config)
	return config, err
}
