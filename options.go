package eventfire

// Option configures a Dispatcher.
type Option func(*config)

// config contains configuration for the dispatcher.
type config struct {
	// mode selects sync or async delivery.
	mode Mode

	// errorDetail controls whether failure outcomes carry structured
	// error information or only the bare ErrHandlerFailure marker.
	errorDetail bool

	// traceback controls whether detailed failures additionally carry a
	// formatted stack trace string.
	traceback bool

	// errorHandler is called when a handler returns an error.
	errorHandler ErrorHandler

	// panicHandler is called when a handler panics.
	panicHandler PanicHandler
}

// defaultConfig returns the default configuration.
func defaultConfig() config {
	return config{
		mode:         ModeSync,
		errorDetail:  true,
		traceback:    false,
		errorHandler: defaultErrorHandler,
		panicHandler: defaultPanicHandler,
	}
}

// WithMode sets the delivery mode.
func WithMode(m Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithErrorDetail enables or disables structured error capture for failure
// outcomes. Enabled by default.
func WithErrorDetail(enabled bool) Option {
	return func(c *config) {
		c.errorDetail = enabled
	}
}

// WithTraceback enables or disables stack trace capture for failure
// outcomes. Disabled by default; has no effect when error detail capture is
// disabled.
func WithTraceback(enabled bool) Option {
	return func(c *config) {
		c.traceback = enabled
	}
}

// WithErrorHandler sets the diagnostics callback for handler errors.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithPanicHandler sets the diagnostics callback for handler panics.
func WithPanicHandler(h PanicHandler) Option {
	return func(c *config) {
		if h != nil {
			c.panicHandler = h
		}
	}
}
