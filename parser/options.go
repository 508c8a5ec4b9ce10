package parser

import "errors"

// DefaultNestLimit is the maximum container nesting depth used when no
// WithNestLimit option is given.
const DefaultNestLimit = 20

// ErrNestLimit indicates a nest limit below 1 was requested.
var ErrNestLimit = errors.New("nest limit must be at least 1")

// EmojiOracle recognizes a unicode emoji at the start of s. It returns the
// byte length of the matched span and the emoji payload. The parser core
// never decides which codepoint sequences are emoji; without an oracle no
// UnicodeEmoji nodes are produced.
type EmojiOracle func(s string) (size int, emoji string, ok bool)

// Option configures a parse.
type Option func(*Config)

// Config holds parser configuration assembled from Options.
type Config struct {
	nestLimit int
	emoji     EmojiOracle
}

// WithNestLimit sets the maximum container nesting depth. The limit must be
// at least 1; Parse reports ErrNestLimit otherwise.
func WithNestLimit(n int) Option {
	return func(c *Config) {
		c.nestLimit = n
	}
}

// WithEmojiOracle installs the unicode-emoji oracle.
func WithEmojiOracle(o EmojiOracle) Option {
	return func(c *Config) {
		c.emoji = o
	}
}

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{nestLimit: DefaultNestLimit}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.nestLimit < 1 {
		return nil, ErrNestLimit
	}
	return cfg, nil
}
