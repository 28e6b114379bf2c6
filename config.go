package throng

import (
	"log/slog"
	"sync"
)

// DefaultLimit is the concurrency limit used when no tier provides one.
const DefaultLimit = 1024

// Settings holds the resolved execution settings for a single operation.
//
// Settings are merged from three tiers: the process-wide default
// (SetDefault), the adapter tier (options passed to New/FromFunc/FromSource),
// and the call-site tier (options passed to the operation itself). Later
// tiers win field by field; a non-positive Limit at any tier falls through
// to the previous tier rather than being treated as an error.
type Settings struct {
	// Limit is the maximum number of simultaneously in-flight tasks.
	Limit int `yaml:"limit,omitempty" json:"limit,omitempty" mapstructure:"limit"`

	// Logger for structured logging during execution (nil means slog.Default)
	Logger *slog.Logger `yaml:"-" json:"-" mapstructure:"-"`
}

// defaultMu guards the process-wide default settings
var (
	defaultMu       sync.RWMutex
	defaultSettings = Settings{Limit: DefaultLimit}
)

// Default returns a copy of the process-wide default settings.
// The returned value is always fully populated (Limit >= 1).
func Default() Settings {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultSettings
}

// SetDefault replaces the process-wide default settings atomically.
// A non-positive Limit is replaced with DefaultLimit, so the default tier
// always has every field populated.
func SetDefault(s Settings) {
	if s.Limit <= 0 {
		s.Limit = DefaultLimit
	}
	defaultMu.Lock()
	defaultSettings = s
	defaultMu.Unlock()
}

// ResetDefault restores the initial process-wide defaults.
func ResetDefault() {
	SetDefault(Settings{Limit: DefaultLimit})
}

// Resolve merges the given tiers over the process-wide default.
// Tiers are ordered least to most specific; the rightmost populated field
// wins. Resolve never fails: invalid (non-positive) limits simply fall
// through to the next tier, ultimately to the process default.
func Resolve(tiers ...Settings) Settings {
	merged := Default()
	for _, tier := range tiers {
		if tier.Limit > 0 {
			merged.Limit = tier.Limit
		}
		if tier.Logger != nil {
			merged.Logger = tier.Logger
		}
	}
	if merged.Logger == nil {
		merged.Logger = slog.Default()
	}
	return merged
}

// Option configures a tier of settings on an adapter or a single call.
type Option func(*Settings)

// WithLimit sets the concurrency limit for this tier.
// Non-positive values are ignored at resolution time and fall through to
// the next tier.
func WithLimit(n int) Option {
	return func(s *Settings) {
		s.Limit = n
	}
}

// WithLogger sets the logger used for execution debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Settings) {
		s.Logger = logger
	}
}

// applyOptions folds options into an empty tier
func applyOptions(opts []Option) Settings {
	var s Settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
