// Package logging builds the zap loggers used by the CLI and the TUI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the logger configuration.
type Options struct {
	// Debug switches to zap's development config at debug level.
	Debug bool
	// Level is the minimum level outside debug mode (debug, info, warn, error).
	Level string
	// File redirects output to a file instead of stderr.
	File string
	// Silent returns a no-op logger unless File is set. The TUI uses this so
	// log lines never land on the screen.
	Silent bool
}

// New builds a console-encoded logger.
func New(opts Options) (*zap.Logger, error) {
	if opts.Silent && opts.File == "" {
		return zap.NewNop(), nil
	}

	var cfg zap.Config
	if opts.Debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		lvl := zapcore.InfoLevel
		if opts.Level != "" {
			if err := lvl.UnmarshalText([]byte(opts.Level)); err != nil {
				return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
			}
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		cfg.Sampling = nil
	}
	cfg.Encoding = "console"
	cfg.DisableStacktrace = !opts.Debug

	if opts.File != "" {
		cfg.OutputPaths = []string{opts.File}
		cfg.ErrorOutputPaths = []string{opts.File}
	} else {
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
