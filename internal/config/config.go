package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Params  ParamsConfig  `yaml:"params" envconfig:"PARAMS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/etl.log" validate:"required_if=Output file,required_if=Output both"`
}

// ParamsConfig locates the parameter workbook that carries the run paths.
type ParamsConfig struct {
	File string `yaml:"file" envconfig:"FILE" default:"parameter_paths.xlsx" validate:"required"`
}

// Load loads configuration from environment variables and an optional YAML
// file. Environment variables take precedence over file values.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("ARM", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileCfg, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = mergeConfigs(*fileCfg, cfg)
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config. A field set in the
// environment wins only when it differs from the envconfig default, so a
// YAML file can still override defaults.
func mergeConfigs(fileConfig, envConfig Config) Config {
	merged := envConfig

	if fileConfig.Logging.Level != "" && envConfig.Logging.Level == "info" {
		merged.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Format != "" && envConfig.Logging.Format == "json" {
		merged.Logging.Format = fileConfig.Logging.Format
	}
	if fileConfig.Logging.Output != "" && envConfig.Logging.Output == "console" {
		merged.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.FilePath != "" && envConfig.Logging.FilePath == "logs/etl.log" {
		merged.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if fileConfig.Params.File != "" && envConfig.Params.File == "parameter_paths.xlsx" {
		merged.Params.File = fileConfig.Params.File
	}

	return merged
}
