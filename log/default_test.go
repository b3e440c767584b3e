package log

import (
	"testing"

	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap/zapcore"
)

func TestDefaultIsLazy(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default returned nil")
	}
}

func TestRegisterDefaultLoggerHook(t *testing.T) {
	calls := 0
	registration, err := RegisterDefaultLoggerHook(func(logger Logger) stackerr.Error {
		if logger == nil {
			t.Error("hook received a nil logger")
		}
		calls++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	defer registration.Close()

	if calls != 1 {
		t.Fatalf("hook called %d times at registration, want 1", calls)
	}

	InitDefault(NewInput{Name: "test", Level: zapcore.WarnLevel})
	if calls != 2 {
		t.Errorf("hook called %d times after InitDefault, want 2", calls)
	}

	registration.Close()
	InitDefault(NewInput{Name: "test", Level: zapcore.WarnLevel})
	if calls != 2 {
		t.Errorf("hook called %d times after Close, want 2", calls)
	}
}

func TestRegisterDefaultLoggerHookError(t *testing.T) {
	_, err := RegisterDefaultLoggerHook(func(Logger) stackerr.Error {
		return stackerr.Errorf("refusing registration")
	})
	if err == nil {
		t.Fatal("expected an error")
	}

	// A failed registration must not leave the hook behind.
	before := 0
	defaultLoggerHooks.Range(func(string, defaultLoggerHook) bool {
		before++
		return true
	})
	InitDefault(NewInput{Name: "test", Level: zapcore.WarnLevel})
	after := 0
	defaultLoggerHooks.Range(func(string, defaultLoggerHook) bool {
		after++
		return true
	})
	if after != before {
		t.Errorf("hook count changed from %d to %d", before, after)
	}
}
