// Package parser implements the MFM parsing engine: a recursive,
// context-sensitive, first-match alternation over block and inline
// constructs producing an ast node tree.
//
// The grammar is expressed as methods on an internal parser state with
// explicit position save and restore. Branch failure is an ordinary
// (value, ok) return and the alternation tries the next branch; the only
// fatal condition is the infinite-loop guard, surfaced as ParseError.
package parser

import (
	"unicode/utf8"

	"github.com/mfm-lang/mfm/ast"
)

// noPrev marks the absence of a previously consumed character, at the start
// of the input or on entry into a container body.
const noPrev rune = -1

// context is the immutable per-call parser state threaded through every
// grammar method.
type context struct {
	nestLimit int
	depth     int
	inLink    bool
	emoji     EmojiOracle
}

// nest returns the child context for entering a container. ok is false when
// the depth limit is reached, in which case the caller parses its body as a
// single literal text run instead of recursing.
func (c context) nest() (context, bool) {
	if c.depth+1 >= c.nestLimit {
		return c, false
	}
	c.depth++
	return c, true
}

type parser struct {
	src string
	pos int
	err error
}

func (p *parser) fatal(msg string) {
	if p.err == nil {
		p.err = &ParseError{Offset: p.pos, Message: msg}
	}
}

// Parse parses input with the full grammar and returns the coalesced node
// sequence. The empty string parses to an empty sequence. Any well-formed
// UTF-8 string parses successfully; an error indicates an invalid option or
// an engine defect caught by the loop guard.
func Parse(input string, opts ...Option) ([]ast.Node, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	p := &parser{src: input}
	ctx := context{nestLimit: cfg.nestLimit, emoji: cfg.emoji}
	nodes, err := p.parseNodes(ctx)
	if err != nil {
		return nil, err
	}
	return ast.MergeText(nodes), nil
}

// parseNodes runs the top-level dispatcher: a context-tracking repeat of
// (block | inline) that threads the last consumed rune into each iteration.
func (p *parser) parseNodes(ctx context) ([]ast.Node, error) {
	var nodes []ast.Node
	prev := noPrev
	for !p.eof() {
		start := p.pos
		var n ast.Node
		if b, ok := p.parseBlock(ctx, prev); ok {
			n = b
		} else if in, ok := p.parseInline(ctx, prev); ok {
			n = in
		}
		if p.err != nil {
			return nil, p.err
		}
		if n == nil || p.pos == start {
			p.pos = start
			p.fatal("no parser consumed input")
			return nil, p.err
		}
		prev, _ = utf8.DecodeLastRuneInString(p.src[start:p.pos])
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// parseBlock tries the block alternatives in their fixed order.
func (p *parser) parseBlock(ctx context, prev rune) (ast.Block, bool) {
	if p.err != nil {
		return nil, false
	}
	if n, ok := p.parseQuote(ctx, prev); ok {
		return n, true
	}
	if n, ok := p.parseSearch(prev); ok {
		return n, true
	}
	if n, ok := p.parseCodeBlock(prev); ok {
		return n, true
	}
	if n, ok := p.parseMathBlock(prev); ok {
		return n, true
	}
	if n, ok := p.parseCenter(ctx, prev); ok {
		return n, true
	}
	return nil, false
}

// parseInline tries the inline alternatives in their fixed order. The text
// fallback at the end guarantees progress at any non-empty position.
func (p *parser) parseInline(ctx context, prev rune) (ast.Inline, bool) {
	if p.err != nil {
		return nil, false
	}
	if ctx.emoji != nil {
		if n, ok := p.parseUnicodeEmoji(ctx); ok {
			return n, true
		}
	}
	if n, ok := p.parseEmojiCode(prev); ok {
		return n, true
	}
	if n, ok := p.parseBig(ctx); ok {
		return n, true
	}
	if n, ok := p.parseBold(ctx); ok {
		return n, true
	}
	if n, ok := p.parseSmall(ctx); ok {
		return n, true
	}
	if n, ok := p.parseItalic(ctx, prev); ok {
		return n, true
	}
	if n, ok := p.parseStrike(ctx); ok {
		return n, true
	}
	if n, ok := p.parseInlineCode(); ok {
		return n, true
	}
	if n, ok := p.parseMathInline(); ok {
		return n, true
	}
	if !ctx.inLink {
		if n, ok := p.parseMention(prev); ok {
			return n, true
		}
		if n, ok := p.parseHashtag(ctx, prev); ok {
			return n, true
		}
		if n, ok := p.parseURL(ctx); ok {
			return n, true
		}
		if n, ok := p.parseLink(ctx); ok {
			return n, true
		}
	}
	if n, ok := p.parseFn(ctx); ok {
		return n, true
	}
	if n, ok := p.parsePlain(); ok {
		return n, true
	}
	return p.parseText()
}

// parseText consumes exactly one codepoint. It is the universal fallback.
func (p *parser) parseText() (ast.Inline, bool) {
	if p.eof() {
		return nil, false
	}
	r := p.bump()
	return &ast.Text{Text: string(r)}, true
}

// stopFunc is a zero-width lookahead deciding where a container body ends.
type stopFunc func(p *parser) bool

func stopLit(lit string) stopFunc {
	return func(p *parser) bool { return p.lookingAt(lit) }
}

// inlineMany1 is the context-tracking repeat over inline content: one or
// more inline nodes, stopping before stop matches. Each iteration receives
// the last rune of the span consumed by the previous one; the first
// iteration sees no previous character. An iteration that succeeds without
// consuming input trips the loop guard.
func (p *parser) inlineMany1(ctx context, stop stopFunc) ([]ast.Inline, bool) {
	var out []ast.Inline
	prev := noPrev
	for {
		if p.err != nil {
			return nil, false
		}
		if p.eof() || stop(p) {
			break
		}
		start := p.pos
		n, ok := p.parseInline(ctx, prev)
		if !ok {
			break
		}
		if p.pos == start {
			p.pos = start
			p.fatal("inline parser consumed no input")
			return nil, false
		}
		prev, _ = utf8.DecodeLastRuneInString(p.src[start:p.pos])
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// textUntil consumes one or more runes up to stop or end of input and
// returns them verbatim. Used for container bodies at the depth limit.
func (p *parser) textUntil(stop stopFunc) (string, bool) {
	start := p.pos
	for !p.eof() && !stop(p) {
		p.bump()
	}
	if p.pos == start {
		return "", false
	}
	return p.src[start:p.pos], true
}

// inlineBody parses a container body: recursively below the nest limit,
// as a single literal text run at it. The result is not yet coalesced.
func (p *parser) inlineBody(ctx context, stop stopFunc) ([]ast.Inline, bool) {
	if child, ok := ctx.nest(); ok {
		return p.inlineMany1(child, stop)
	}
	s, ok := p.textUntil(stop)
	if !ok {
		return nil, false
	}
	return []ast.Inline{&ast.Text{Text: s}}, true
}
