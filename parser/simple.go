package parser

import (
	"unicode/utf8"

	"github.com/mfm-lang/mfm/ast"
)

// ParseSimple parses input with the simple grammar: unicode emoji (when an
// oracle is installed), emoji codes, and text. No blocks, no other inline
// constructs, no depth tracking.
func ParseSimple(input string, opts ...Option) ([]ast.Simple, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	p := &parser{src: input}
	var nodes []ast.Simple
	prev := noPrev
	for !p.eof() {
		start := p.pos
		var n ast.Simple
		if cfg.emoji != nil {
			if e, ok := p.parseUnicodeEmoji(context{emoji: cfg.emoji}); ok {
				n = e.(ast.Simple)
			}
		}
		if n == nil {
			if e, ok := p.parseEmojiCode(prev); ok {
				n = e.(ast.Simple)
			}
		}
		if n == nil {
			if t, ok := p.parseText(); ok {
				n = t.(ast.Simple)
			}
		}
		if n == nil || p.pos == start {
			p.pos = start
			p.fatal("simple parser consumed no input")
			return nil, p.err
		}
		prev, _ = utf8.DecodeLastRuneInString(p.src[start:p.pos])
		nodes = append(nodes, n)
	}
	return ast.MergeTextSimple(nodes), nil
}
