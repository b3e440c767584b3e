package log

import (
	"sync"

	"github.com/Invicton-Labs/go-stackerr"
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"

	"github.com/duyanh-y4n/Collections-C/gensync"
)

type defaultLoggerHook func(logger Logger) stackerr.Error

// HookRegistration identifies a registered default-logger hook.
type HookRegistration struct {
	id string
}

// Close deregisters the hook.
func (r HookRegistration) Close() {
	defaultLoggerHooks.Delete(r.id)
}

var defaultLoggerHooks = gensync.NewMap[string, defaultLoggerHook](nil)

// RegisterDefaultLoggerHook registers a hook that is invoked immediately
// with the current default logger and again whenever the default logger
// is replaced. Loggers that wrap the default logger use this to follow
// updates.
func RegisterDefaultLoggerHook(hook defaultLoggerHook) (HookRegistration, stackerr.Error) {
	registration := HookRegistration{
		id: uuid.New().String(),
	}
	if err := hook(Default()); err != nil {
		return HookRegistration{}, err
	}
	defaultLoggerHooks.Store(registration.id, hook)
	return registration, nil
}

var (
	defaultLogger     Logger
	defaultLoggerLock sync.Mutex
)

// InitDefault replaces the process-wide default logger and notifies
// registered hooks.
func InitDefault(input NewInput) Logger {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()
	defaultLogger = New(input)
	defaultLoggerHooks.Range(func(_ string, hook defaultLoggerHook) bool {
		if err := hook(defaultLogger); err != nil {
			defaultLogger.Error(err)
		}
		return true
	})
	return defaultLogger
}

// Default returns the process-wide default logger, creating a
// production logger at info level on first use.
func Default() Logger {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()
	if defaultLogger == nil {
		defaultLogger = New(NewInput{Level: zapcore.InfoLevel})
	}
	return defaultLogger
}

// Package-level shortcuts through the default logger.

func Debugf(template string, args ...interface{}) { Default().Debugf(template, args...) }
func Infof(template string, args ...interface{})  { Default().Infof(template, args...) }
func Warnf(template string, args ...interface{})  { Default().Warnf(template, args...) }
func Errorf(template string, args ...interface{}) { Default().Errorf(template, args...) }

func Debugw(msg string, keysAndValues ...interface{}) { Default().Debugw(msg, keysAndValues...) }
func Infow(msg string, keysAndValues ...interface{})  { Default().Infow(msg, keysAndValues...) }
func Warnw(msg string, keysAndValues ...interface{})  { Default().Warnw(msg, keysAndValues...) }
func Errorw(msg string, keysAndValues ...interface{}) { Default().Errorw(msg, keysAndValues...) }

func Error(err error) { Default().Error(err) }
