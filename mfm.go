// Package mfm parses MFM (Misskey Flavored Markdown) into a node tree.
//
// The full grammar recognizes block constructs (quote, search, code block,
// math block, center) and inline constructs (bold, italic, mentions,
// hashtags, URLs, links, effect functions, and more); the simple grammar
// recognizes only emoji shortcodes, unicode emoji (when an oracle is
// installed), and text. Node types live in the ast
// subpackage; the engine lives in the parser subpackage.
package mfm

import (
	"github.com/mfm-lang/mfm/ast"
	"github.com/mfm-lang/mfm/parser"
)

// Option configures a parse. See WithNestLimit and WithEmojiOracle.
type Option = parser.Option

// WithNestLimit sets the maximum container nesting depth (default 20,
// minimum 1).
func WithNestLimit(n int) Option {
	return parser.WithNestLimit(n)
}

// WithEmojiOracle installs a unicode-emoji recognizer. Without one, no
// UnicodeEmoji nodes are produced.
func WithEmojiOracle(o parser.EmojiOracle) Option {
	return parser.WithEmojiOracle(o)
}

// Parse generates an MFM node tree from the input string.
func Parse(input string, opts ...Option) ([]ast.Node, error) {
	return parser.Parse(input, opts...)
}

// ParseWithNestLimit generates an MFM node tree with a specific maximum
// nest depth.
func ParseWithNestLimit(input string, limit int) ([]ast.Node, error) {
	return parser.Parse(input, parser.WithNestLimit(limit))
}

// ParseSimple generates a node sequence using the simple grammar: unicode
// emoji (when an oracle is installed), emoji codes, and text.
func ParseSimple(input string, opts ...Option) ([]ast.Simple, error) {
	return parser.ParseSimple(input, opts...)
}
