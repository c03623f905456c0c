package app

import (
	"io"

	"github.com/rs/zerolog"
)

// App is the resolved configuration plus everything built from it.
type App struct {
	Config Config
	Log    zerolog.Logger
	*Wire
}

// New builds the logger and dependency graph for cfg. Logs go to logOut.
func New(cfg Config, logOut io.Writer) (*App, error) {
	log, err := NewLogger(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	w, err := NewWire(cfg, log)
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, Log: log, Wire: w}, nil
}
