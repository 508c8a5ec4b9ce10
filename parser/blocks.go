package parser

import (
	"strings"

	"github.com/mfm-lang/mfm/ast"
)

// parseQuote parses a block quote: one or more lines each beginning with
// '>'. The joined body is re-parsed with the full grammar one level deeper.
// Up to two line terminators are consumed on either side of the block.
func (p *parser) parseQuote(ctx context, prev rune) (ast.Block, bool) {
	mark := p.pos
	if !p.eatLineHead(prev, 2) {
		p.pos = mark
		return nil, false
	}
	var lines []string
	for {
		if !p.eat(">") {
			break
		}
		p.eatSpaces()
		lines = append(lines, p.takeLine())
		save := p.pos
		if p.eatLineEnding() && p.lookingAt(">") {
			continue
		}
		p.pos = save
		break
	}
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		p.pos = mark
		return nil, false
	}
	p.eatLineEnding()
	p.eatLineEnding()

	inner := strings.Join(lines, "\n")
	var children []ast.Node
	if child, ok := ctx.nest(); ok {
		sub := &parser{src: inner}
		nodes, err := sub.parseNodes(child)
		if err != nil {
			p.err = err
			p.pos = mark
			return nil, false
		}
		children = ast.MergeText(nodes)
	} else {
		children = []ast.Node{&ast.Text{Text: inner}}
	}
	return &ast.Quote{Children: children}, true
}

// searchButtons are the accepted search button words, longest first. The
// ASCII words match case-insensitively.
var searchButtons = []string{"[検索]", "[search]", "検索", "search"}

func (p *parser) eatSearchButton() bool {
	for _, b := range searchButtons {
		if p.eatFold(b) {
			return true
		}
	}
	return false
}

// parseSearch parses a search block: a query line terminated by a single
// space and a button word at end of line.
func (p *parser) parseSearch(prev rune) (ast.Block, bool) {
	mark := p.pos
	if !p.eatLineHead(prev, 1) {
		p.pos = mark
		return nil, false
	}
	start := p.pos
	for {
		if p.eof() || p.atLineEnd() {
			p.pos = mark
			return nil, false
		}
		r, _ := p.peek()
		if isSpace(r) {
			sep := p.pos
			p.bump()
			if p.eatSearchButton() && p.atLineEnd() {
				query := p.src[start:sep]
				if query == "" {
					p.pos = mark
					return nil, false
				}
				content := p.src[start:p.pos]
				p.eatLineEnding()
				return &ast.Search{Query: query, Content: content}, true
			}
			p.pos = sep
		}
		p.bump()
	}
}

// parseCodeBlock parses a fenced code block. The body runs until a line
// that starts with the closing fence and ends at a line boundary; fences
// not on their own line are preserved in the code.
func (p *parser) parseCodeBlock(prev rune) (ast.Block, bool) {
	mark := p.pos
	if !p.eatLineHead(prev, 1) || !p.eat("```") {
		p.pos = mark
		return nil, false
	}
	lang := p.takeLine()
	if !p.eatLineEnding() {
		p.pos = mark
		return nil, false
	}
	start := p.pos
	for {
		if p.eof() {
			p.pos = mark
			return nil, false
		}
		save := p.pos
		if p.eatLineEnding() && p.eat("```") && p.atLineEnd() {
			code := p.src[start:save]
			if code == "" {
				p.pos = mark
				return nil, false
			}
			p.eatLineEnding()
			return &ast.CodeBlock{Code: code, Lang: lang}, true
		}
		p.pos = save
		p.bump()
	}
}

// parseMathBlock parses a display-math block delimited by \[ and \]. A
// single line terminator may follow the opener and precede the closer; the
// closer must sit at a line boundary.
func (p *parser) parseMathBlock(prev rune) (ast.Block, bool) {
	mark := p.pos
	if !p.eatLineHead(prev, 1) || !p.eat(`\[`) {
		p.pos = mark
		return nil, false
	}
	p.eatLineEnding()
	start := p.pos
	for {
		if p.eof() {
			p.pos = mark
			return nil, false
		}
		save := p.pos
		p.eatLineEnding()
		if p.lookingAt(`\]`) {
			p.pos = save
			break
		}
		p.pos = save
		p.bump()
	}
	formula := p.src[start:p.pos]
	if formula == "" {
		p.pos = mark
		return nil, false
	}
	p.eatLineEnding()
	p.eat(`\]`)
	if !p.atLineEnd() {
		p.pos = mark
		return nil, false
	}
	p.eatLineEnding()
	return &ast.MathBlock{Formula: formula}, true
}

// parseCenter parses a centering block. The body is inline-only, parsed one
// level deeper, and coalesced; at the depth limit it degenerates to one
// literal text run.
func (p *parser) parseCenter(ctx context, prev rune) (ast.Block, bool) {
	mark := p.pos
	if !p.eatLineHead(prev, 1) || !p.eat("<center>") {
		p.pos = mark
		return nil, false
	}
	p.eatLineEnding()
	stop := func(p *parser) bool {
		save := p.pos
		p.eatLineEnding()
		ok := p.lookingAt("</center>")
		p.pos = save
		return ok
	}
	children, ok := p.inlineBody(ctx, stop)
	if !ok {
		p.pos = mark
		return nil, false
	}
	p.eatLineEnding()
	if !p.eat("</center>") || !p.atLineEnd() {
		p.pos = mark
		return nil, false
	}
	p.eatLineEnding()
	return &ast.Center{Children: ast.MergeTextInline(children)}, true
}
