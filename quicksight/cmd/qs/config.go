package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/acksell/qsight/quicksight/qsapi"
)

const (
	configFilename = "qs.yaml"
	defaultPort    = 3080
)

// Config holds the defaults loaded from qs.yaml.
type Config struct {
	AccountID string `yaml:"accountId"`
	Namespace string `yaml:"namespace"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`

	// DataDir is where qs serve keeps its BadgerDB database.
	DataDir string `yaml:"dataDir"`

	// Port is the HTTP port of qs serve.
	Port int `yaml:"port"`
}

// LoadConfig searches for qs.yaml starting from dir and walking up to the
// filesystem root. Returns an empty config if none is found.
func LoadConfig(dir string) (Config, error) {
	var cfg Config

	path := findConfigFile(dir)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func findConfigFile(dir string) string {
	for {
		path := filepath.Join(dir, configFilename)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func loadWorkingConfig() (Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}
	return LoadConfig(dir)
}

// withFlags returns cfg with every flag that was set taking precedence.
func (cfg Config) withFlags(f globalFlags) Config {
	if f.account != "" {
		cfg.AccountID = f.account
	}
	if f.namespace != "" {
		cfg.Namespace = f.namespace
	}
	if f.region != "" {
		cfg.Region = f.region
	}
	if f.endpoint != "" {
		cfg.Endpoint = f.endpoint
	}
	if cfg.Namespace == "" {
		cfg.Namespace = qsapi.DefaultNamespace
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	return cfg
}

var errNoAccount = errors.New("no account id: set --account or accountId in " + configFilename)
