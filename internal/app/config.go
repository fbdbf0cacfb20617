package app

import "fmt"

// Config holds everything an App instance needs to run.
type Config struct {
	ProjectPath string
	OutputPath  string
	ThemePath   string
	LogFormat   string
	LogLevel    string
}

// NewConfig validates a raw Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectPath == "" {
		return nil, fmt.Errorf("project path must not be empty")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "gantt_chart.svg"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
