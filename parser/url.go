package parser

import (
	"strings"

	"github.com/mfm-lang/mfm/ast"
)

// parseURL parses the two URL forms in order: the bare form and the
// angle-bracketed form.
func (p *parser) parseURL(ctx context) (ast.Inline, bool) {
	if n, ok := p.parseBareURL(ctx); ok {
		return n, true
	}
	return p.parseAngleURL()
}

// parseBareURL parses http(s)://… greedily over URL runs and balanced
// parenthesis or bracket nests, then trims trailing dots and commas. The
// trimmed bytes are returned to the input for subsequent matching.
func (p *parser) parseBareURL(ctx context) (ast.Inline, bool) {
	mark := p.pos
	if !p.eat("https://") && !p.eat("http://") {
		return nil, false
	}
	schemeLen := p.pos - mark
	for p.urlItem(ctx) {
	}
	url := strings.TrimRight(p.src[mark:p.pos], ".,")
	p.pos = mark + len(url)
	if len(url) <= schemeLen {
		// Nothing but the scheme survived the trim.
		p.pos = mark
		return nil, false
	}
	return &ast.URL{URL: url}, true
}

var urlBrackets = [][2]string{
	{"(", ")"},
	{"[", "]"},
}

// urlItem consumes one URL body item: a balanced bracket nest (below the
// nest limit) or a run of URL characters.
func (p *parser) urlItem(ctx context) bool {
	if child, ok := ctx.nest(); ok {
		for _, pair := range urlBrackets {
			mark := p.pos
			if !p.eat(pair[0]) {
				continue
			}
			for p.urlItem(child) {
			}
			if p.eat(pair[1]) {
				return true
			}
			p.pos = mark
		}
	}
	_, ok := p.eatRegexp(reURLRun)
	return ok
}

// parseAngleURL parses <http(s)://…>: anything up to the closing angle
// bracket that is not a space or line terminator.
func (p *parser) parseAngleURL() (ast.Inline, bool) {
	mark := p.pos
	if !p.eat("<") {
		return nil, false
	}
	start := p.pos
	if !p.eat("https://") && !p.eat("http://") {
		p.pos = mark
		return nil, false
	}
	schemeEnd := p.pos
	for !p.eof() {
		r, size := p.peek()
		if r == '>' || isSpace(r) || r == '\n' || r == '\r' {
			break
		}
		p.pos += size
	}
	if p.pos == schemeEnd || !p.eat(">") {
		p.pos = mark
		return nil, false
	}
	return &ast.URL{URL: p.src[start : p.pos-1], Brackets: true}, true
}

// parseLink parses [label](url) with an optional leading '?' marking a
// silent link. The label is parsed one level deeper with mention, hashtag,
// URL, and link parsing disabled; the URL part accepts either URL form.
func (p *parser) parseLink(ctx context) (ast.Inline, bool) {
	mark := p.pos
	silent := p.eat("?")
	if !p.eat("[") {
		p.pos = mark
		return nil, false
	}
	stop := func(p *parser) bool { return p.lookingAt("]") || p.atLineEnd() }
	labelCtx := ctx
	labelCtx.inLink = true
	label, ok := p.inlineBody(labelCtx, stop)
	if !ok || !p.eat("]") || !p.eat("(") {
		p.pos = mark
		return nil, false
	}
	urlNode, ok := p.parseURL(ctx)
	if !ok {
		p.pos = mark
		return nil, false
	}
	if !p.eat(")") {
		p.pos = mark
		return nil, false
	}
	return &ast.Link{
		URL:      urlNode.(*ast.URL).URL,
		Silent:   silent,
		Children: ast.MergeTextInline(label),
	}, true
}
