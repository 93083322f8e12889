// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/espmemmap/internal/render"
	"github.com/retroenv/retrogolib/log"
	"github.com/xyproto/env/v2"
)

// Environment variables that provide defaults for command line flags.
const (
	EnvChip  = "ESPMEMMAP_CHIP"
	EnvFlash = "ESPMEMMAP_FLASH"
	EnvWidth = "ESPMEMMAP_WIDTH"
)

// Defaults contains flag defaults read from the environment.
type Defaults struct {
	Chip  string
	Flash string
	Width int
}

// ReadDefaults returns the flag defaults, taken from the environment if set.
func ReadDefaults() Defaults {
	return Defaults{
		Chip:  env.Str(EnvChip),
		Flash: env.Str(EnvFlash),
		Width: env.Int(EnvWidth, render.DefaultWidth),
	}
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
