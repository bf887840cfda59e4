package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SessionPath string // .hcl session file or a directory of them

	Mode      string // optional counting-mode override applied to every puzzle
	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.SessionPath == "" {
		return nil, errors.New("SessionPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
