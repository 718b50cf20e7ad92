// Package logger builds the application logger: structured zap output
// through a size-rotated file, so long exploration sessions do not grow an
// unbounded log.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options for the log file. Zero values fall back to the defaults below.
type Options struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	Debug      bool
}

const (
	defaultPath       = "logs/explorer.log"
	defaultMaxSizeMB  = 5
	defaultMaxBackups = 3
)

// New returns a sugared logger writing to the rotated file. lumberjack
// creates the directory on first write, so there is nothing to set up.
func New(opts Options) *zap.SugaredLogger {
	if opts.Path == "" {
		opts.Path = defaultPath
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = defaultMaxSizeMB
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = defaultMaxBackups
	}

	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		}),
		level,
	)
	return zap.New(core).Sugar()
}

// Nop returns a logger that discards everything; used in tests.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
