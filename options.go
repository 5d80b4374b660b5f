package ex2rst

// Option configures extraction behavior.
type Option func(*config)

type config struct {
	headerDiscard bool
	wrapLimit     int
	rules         ImageRules
	warnf         func(Warning)
}

func newConfig(opts []Option) config {
	cfg := config{
		headerDiscard: true,
		rules:         DefaultImageRules(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (c *config) warn(w Warning) {
	if c.warnf != nil {
		c.warnf(w)
	}
}

// WithHeaderDiscard enables or disables dropping the leading file header.
// Header discarding is on by default: every line before the first
// documentation opener is skipped. Disable it for inputs that start with
// code rather than a header.
func WithHeaderDiscard(enabled bool) Option {
	return func(cfg *config) {
		cfg.headerDiscard = enabled
	}
}

// WithProseWrap re-wraps documentation prose at the given column. A limit
// of zero, the default, keeps the original line breaks. Image directives
// and their annotations are never re-wrapped.
func WithProseWrap(limit int) Option {
	return func(cfg *config) {
		cfg.wrapLimit = limit
	}
}

// WithImageRules overrides the image-directive annotation rules.
func WithImageRules(rules ImageRules) Option {
	return func(cfg *config) {
		cfg.rules = rules
	}
}

// WithWarningFunc registers a callback for scan warnings, such as a
// documentation block that is still open at end of input. Warnings never
// change the produced output.
func WithWarningFunc(fn func(Warning)) Option {
	return func(cfg *config) {
		cfg.warnf = fn
	}
}
