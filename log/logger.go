// Package log builds the structured zap loggers used by the recovery driver.
package log

import (
	zap "github.com/Laisky/zap"
	"github.com/Laisky/zap/zapcore"
	"github.com/pkg/errors"
)

// Level is the name of a logging level.
type Level string

// String implements the Stringer interface.
func (l Level) String() string {
	return string(l)
}

const (
	// LevelDebug Logger level debug
	LevelDebug Level = "debug"
	// LevelInfo Logger level info
	LevelInfo Level = "info"
	// LevelWarn Logger level warn
	LevelWarn Level = "warn"
	// LevelError Logger level error
	LevelError Level = "error"
)

// Encoding is the output format of a logger.
type Encoding string

const (
	EncodingConsole Encoding = "console"
	EncodingJSON    Encoding = "json"
)

// Shared is the logger used by the driver unless another one is injected.
// It writes console encoded logs at info level to stderr, so that stdout is
// left to the report.
var Shared = func() *Logger {
	l, err := New(WithName("shamir"))
	if err != nil {
		panic(err)
	}
	return l
}()

// Logger is a zap logger whose level can be changed after construction.
type Logger struct {
	*zap.Logger

	// zap does not expose the level of a built logger, so the atomic level
	// it was built with is kept here.
	level zap.AtomicLevel
}

type option struct {
	zap.Config
	name string
}

func (o *option) fillDefault() *option {
	o.name = "app"
	o.Config = zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         string(EncodingConsole),
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	o.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	o.EncoderConfig.MessageKey = "message"
	o.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	o.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return o
}

// Option configures a logger.
type Option func(o *option) error

// WithName sets the logger name.
func WithName(name string) Option {
	return func(o *option) error {
		o.name = name
		return nil
	}
}

// WithLevel sets the logger level.
func WithLevel(level Level) Option {
	return func(o *option) error {
		lvl, err := LevelToZap(level)
		if err != nil {
			return err
		}
		o.Level.SetLevel(lvl)
		return nil
	}
}

// WithEncoding sets the logger encoding.
func WithEncoding(encoding Encoding) Option {
	return func(o *option) error {
		switch encoding {
		case EncodingConsole:
			o.Encoding = string(EncodingConsole)
		case EncodingJSON:
			o.Encoding = string(EncodingJSON)
		default:
			return errors.Errorf("invalid encoding: %s", encoding)
		}
		return nil
	}
}

// WithOutputPaths replaces the paths that logs are written to, like "stderr"
// or a file name.
func WithOutputPaths(paths ...string) Option {
	return func(o *option) error {
		o.OutputPaths = paths
		return nil
	}
}

// New creates a new logger.
func New(opts ...Option) (*Logger, error) {
	opt := new(option).fillDefault()
	for _, f := range opts {
		if err := f(opt); err != nil {
			return nil, err
		}
	}

	zl, err := opt.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build zap logger")
	}

	return &Logger{
		Logger: zl.Named(opt.name),
		level:  opt.Level,
	}, nil
}

// Level returns the current level of the logger.
func (l *Logger) Level() Level {
	lvl, err := LevelFromZap(l.level.Level())
	if err != nil {
		panic(err)
	}
	return lvl
}

// ChangeLevel changes the level of the logger. Loggers derived from this one
// share its level.
func (l *Logger) ChangeLevel(level Level) error {
	lvl, err := LevelToZap(level)
	if err != nil {
		return err
	}

	l.level.SetLevel(lvl)
	l.Debug("set logger level", zap.String("level", level.String()))
	return nil
}

// Named returns a child logger with the given name appended.
func (l *Logger) Named(name string) *Logger {
	return &Logger{Logger: l.Logger.Named(name), level: l.level}
}

// With returns a child logger with the given fields attached.
func (l *Logger) With(fields ...zapcore.Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...), level: l.level}
}

// LevelToZap converts a level name to a zap level.
func LevelToZap(level Level) (zapcore.Level, error) {
	switch level {
	case LevelDebug:
		return zap.DebugLevel, nil
	case LevelInfo:
		return zap.InfoLevel, nil
	case LevelWarn:
		return zap.WarnLevel, nil
	case LevelError:
		return zap.ErrorLevel, nil
	default:
		return 0, errors.Errorf("invalid level: %s", level)
	}
}

// LevelFromZap converts a zap level to a level name.
func LevelFromZap(level zapcore.Level) (Level, error) {
	switch level {
	case zap.DebugLevel:
		return LevelDebug, nil
	case zap.InfoLevel:
		return LevelInfo, nil
	case zap.WarnLevel:
		return LevelWarn, nil
	case zap.ErrorLevel:
		return LevelError, nil
	default:
		return "", errors.Errorf("invalid level: %s", level)
	}
}
