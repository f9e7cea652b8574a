// Package config provides types for handling configuration parameters.
package config

import (
	"flag"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config handles server-related constants and parameters.
type Config struct {
	ServerConfig  ServerConfig  `yaml:"server" json:"server"`
	StorageConfig StorageConfig `yaml:"storage" json:"storage"`
	HashidConfig  HashidConfig  `yaml:"hashids" json:"hashids"`
}

// ServerConfig defines default server-relates constants and parameters and overwrites them with environment variables.
type ServerConfig struct {
	ServerAddress string `yaml:"server_address" json:"server_address" env:"SERVER_ADDRESS" env-default:":8080"`
	BaseURL       string `yaml:"base_url" json:"base_url" env:"BASE_URL" env-default:"http://localhost:8080"`
	EnableHTTPS   bool   `yaml:"enable_https" json:"enable_https" env:"ENABLE_HTTPS"`
	TrustedSubnet string `yaml:"trusted_subnet" json:"trusted_subnet" env:"TRUSTED_SUBNET"`
}

// StorageConfig retrieves storage-related parameters from environment.
type StorageConfig struct {
	FileStoragePath string `yaml:"file_storage_path" json:"file_storage_path" env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string `yaml:"database_dsn" json:"database_dsn" env:"DATABASE_DSN"`
	DatabaseDriver  string `yaml:"database_driver" json:"database_driver" env:"DATABASE_DRIVER" env-default:"pgx"`
}

// NewDefaultConfiguration sets up a total configuration from environment variables.
func NewDefaultConfiguration() (*Config, error) {
	cfg := Config{}
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewFileConfiguration sets up a total configuration from a YAML, JSON, TOML or EDN file, with
// environment variables taking precedence over file values.
func NewFileConfiguration(path string) (*Config, error) {
	cfg := Config{}
	err := cleanenv.ReadConfig(path, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Parse parses command line arguments. A config file given with -c replaces the current values,
// flags set explicitly take precedence over it.
func (c *Config) Parse(args []string) error {
	fs := flag.NewFlagSet("hashidsd", flag.ContinueOnError)
	a := fs.String("a", c.ServerConfig.ServerAddress, "Server address")
	b := fs.String("b", c.ServerConfig.BaseURL, "Base url")
	f := fs.String("f", c.StorageConfig.FileStoragePath, "File storage path")
	d := fs.String("d", c.StorageConfig.DatabaseDSN, "Database DSN")
	s := fs.Bool("s", c.ServerConfig.EnableHTTPS, "Enable HTTPS")
	t := fs.String("t", c.ServerConfig.TrustedSubnet, "Trusted subnet in CIDR notation")
	path := fs.String("c", "", "Config file path")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	if *path != "" {
		fileCfg, err := NewFileConfiguration(*path)
		if err != nil {
			return err
		}
		*c = *fileCfg
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "a":
			c.ServerConfig.ServerAddress = *a
		case "b":
			c.ServerConfig.BaseURL = *b
		case "f":
			c.StorageConfig.FileStoragePath = *f
		case "d":
			c.StorageConfig.DatabaseDSN = *d
		case "s":
			c.ServerConfig.EnableHTTPS = *s
		case "t":
			c.ServerConfig.TrustedSubnet = *t
		}
	})
	return nil
}
