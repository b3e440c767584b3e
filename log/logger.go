package log

import (
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logging surface used throughout the module,
// backed by zap.
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Error logs an error at error level.
	Error(err error)

	// With returns a new logger with the given key/value pairs attached
	// to every entry.
	With(args ...interface{}) Logger
	// WithError returns a new logger with the error attached as a
	// field.
	WithError(err error) Logger

	// Config returns the settings this logger was created with.
	Config() NewInput

	// Sync flushes any buffered entries.
	Sync() stackerr.Error
}

// NewInput configures a new Logger.
type NewInput struct {
	// IsDevelopment selects the human-readable console encoder and
	// debug-level defaults.
	IsDevelopment bool
	// Name is an optional logger name prefix.
	Name string
	// Level is the minimum level to emit.
	Level zapcore.Level
}

type logger struct {
	sugar  *zap.SugaredLogger
	config NewInput
}

// New creates a Logger with the given settings.
func New(input NewInput) Logger {
	var cfg zap.Config
	if input.IsDevelopment {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(input.Level)

	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// zap only fails here on an invalid config, which cannot be
		// expressed through NewInput.
		panic(err)
	}
	if input.Name != "" {
		zl = zl.Named(input.Name)
	}
	return &logger{
		sugar:  zl.Sugar(),
		config: input,
	}
}

func (l *logger) Debugf(template string, args ...interface{}) {
	l.sugar.Debugf(template, args...)
}
func (l *logger) Infof(template string, args ...interface{}) {
	l.sugar.Infof(template, args...)
}
func (l *logger) Warnf(template string, args ...interface{}) {
	l.sugar.Warnf(template, args...)
}
func (l *logger) Errorf(template string, args ...interface{}) {
	l.sugar.Errorf(template, args...)
}

func (l *logger) Debugw(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}
func (l *logger) Infow(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}
func (l *logger) Warnw(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}
func (l *logger) Errorw(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

func (l *logger) Error(err error) {
	l.sugar.Errorw(err.Error(), zap.Error(err))
}

func (l *logger) With(args ...interface{}) Logger {
	return &logger{
		sugar:  l.sugar.With(args...),
		config: l.config,
	}
}

func (l *logger) WithError(err error) Logger {
	return l.With(zap.Error(err))
}

func (l *logger) Config() NewInput {
	return l.config
}

func (l *logger) Sync() stackerr.Error {
	if err := l.sugar.Sync(); err != nil {
		return stackerr.Wrap(err)
	}
	return nil
}
