package dlm

import "log/slog"

// Option configures an Extractor.
type Option func(*config)

type config struct {
	includeOOV bool
	normalizer func(string) string
	logger     *slog.Logger
}

func defaultConfig() config {
	return config{
		includeOOV: true,
		logger:     slog.Default(),
	}
}

// WithOOV controls whether the catch-all OOV candidate is appended to every
// group (default: true). When disabled, occurrences whose observed word is
// not among the cept's candidates are suppressed entirely rather than
// mislabeled.
func WithOOV(include bool) Option {
	return func(c *config) {
		c.includeOOV = include
	}
}

// WithNormalizer applies f to cept and word text read from the words file
// (default: none). Pair it with phrasetable.WithNormalizer so lookups see
// the same form on both sides.
func WithNormalizer(f func(string) string) Option {
	return func(c *config) {
		c.normalizer = f
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
