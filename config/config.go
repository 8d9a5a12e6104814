package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/CIDgravity/snakelet"
)

// config structure
type Config struct {
	API       APIConfig       `mapstructure:"API"`
	Github    GithubConfig    `mapstructure:"GITHUB"`
	Tasks     TasksConfig     `mapstructure:"TASKS"`
	Languages LanguagesConfig `mapstructure:"LANGUAGES"`
	Logs      LogsConfig      `mapstructure:"LOGS"`
}

type APIConfig struct {
	ListenPort           string `mapstructure:"ListenPort"`
	MaxRequestsPerMinute int    `mapstructure:"MaxRequestsPerMinute"`
}

type GithubConfig struct {
	Token           string `mapstructure:"Token"`
	GraphQLEndpoint string `mapstructure:"GraphQLEndpoint"`
}

type TasksConfig struct {
	MaxParallelTasksAllowed int `mapstructure:"MaxParallelTasksAllowed"`
	MaxCompareUsers         int `mapstructure:"MaxCompareUsers"` // 0 means no limit
}

type LanguagesConfig struct {
	DefaultCount int `mapstructure:"DefaultCount"`
	MaxCount     int `mapstructure:"MaxCount"`
}

type LogsConfig struct {
	Level            string `mapstructure:"Level"` // error | warn | info | debug - case insensitive
	OutputLogsAsJSON bool   `mapstructure:"OutputLogsAsJSON"`
}

// Load
func Load() (*Config, error) {
	configFilePath, err := findConfigFile()
	if err != nil {
		return nil, err
	}

	// load default and config file content
	cfg := GetDefault()
	_, err = snakelet.InitAndLoad(cfg, configFilePath)

	if err != nil {
		return nil, err
	}

	// token from environment always wins over the file
	if token, found := os.LookupEnv("GITHUB_TOKEN"); found && token != "" {
		cfg.Github.Token = token
	}

	return cfg, nil
}

// findConfigFile looks next to the binary first, then in the working directory
func findConfigFile() (string, error) {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))

	if err != nil {
		return "", err
	}

	configFilePath := filepath.Join(dir, "config", "config.toml")

	if _, err := os.Stat(configFilePath); errors.Is(err, os.ErrNotExist) {
		if _, err := os.Stat("config/config.toml"); errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		configFilePath = "config/config.toml"
	}

	return configFilePath, nil
}

// GetDefault
func GetDefault() *Config {
	return &Config{
		API: APIConfig{
			ListenPort:           "5000",
			MaxRequestsPerMinute: 60,
		},
		Github: GithubConfig{
			Token:           "",
			GraphQLEndpoint: "https://api.github.com/graphql",
		},
		Tasks: TasksConfig{
			MaxParallelTasksAllowed: 8,
			MaxCompareUsers:         10,
		},
		Languages: LanguagesConfig{
			DefaultCount: 5,
			MaxCount:     20,
		},
		Logs: LogsConfig{
			Level:            "debug",
			OutputLogsAsJSON: false,
		},
	}
}
