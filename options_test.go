package eventfire

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.mode != ModeSync {
		t.Errorf("default mode = %v, want sync", cfg.mode)
	}
	if !cfg.errorDetail {
		t.Error("error detail capture should default to enabled")
	}
	if cfg.traceback {
		t.Error("traceback capture should default to disabled")
	}
	if cfg.errorHandler == nil || cfg.panicHandler == nil {
		t.Error("diagnostics callbacks should default to no-ops, not nil")
	}
}

func TestOptions(t *testing.T) {
	cfg := defaultConfig()

	called := false
	WithMode(ModeAsync)(&cfg)
	WithErrorDetail(false)(&cfg)
	WithTraceback(true)(&cfg)
	WithErrorHandler(func(e Event, handler Handler, err error) { called = true })(&cfg)
	WithPanicHandler(func(e Event, panicValue any, stack []byte) { called = true })(&cfg)

	if cfg.mode != ModeAsync {
		t.Errorf("mode = %v, want async", cfg.mode)
	}
	if cfg.errorDetail {
		t.Error("error detail should be disabled")
	}
	if !cfg.traceback {
		t.Error("traceback should be enabled")
	}

	cfg.errorHandler(Event{}, nil, nil)
	if !called {
		t.Error("custom error handler was not installed")
	}
}

func TestOptions_NilCallbacksIgnored(t *testing.T) {
	cfg := defaultConfig()

	WithErrorHandler(nil)(&cfg)
	WithPanicHandler(nil)(&cfg)

	if cfg.errorHandler == nil || cfg.panicHandler == nil {
		t.Error("nil callbacks should not replace the defaults")
	}
}
