package parser

import (
	"github.com/mfm-lang/mfm/ast"
)

// parseMention parses @username or @username@host. A mention may not follow
// an ASCII alphanumeric character.
//
// A valid local mention directly followed by something that looks like a
// broken remote part (as in "@abc-@aaa") must not produce a dangling
// mention; the whole loose token is swallowed as text instead.
func (p *parser) parseMention(prev rune) (ast.Inline, bool) {
	if isASCIIAlnum(prev) {
		return nil, false
	}
	mark := p.pos
	node, ok := p.mentionProper()
	if ok && node.Host != "" {
		return node, true
	}
	end := p.pos

	p.pos = mark
	if loose, lok := p.eatRegexp(reLooseAcct); lok {
		return &ast.Text{Text: loose}, true
	}
	if ok {
		p.pos = end
		return node, true
	}
	p.pos = mark
	return nil, false
}

// mentionProper matches the strict mention grammar. The username may not
// start or end with a dash; the hostname additionally may not start or end
// with a dot. Trailing rejected characters stay in the input.
func (p *parser) mentionProper() (*ast.Mention, bool) {
	mark := p.pos
	if !p.eat("@") {
		return nil, false
	}
	user, ok := p.eatRegexp(reMentionUser)
	if !ok {
		p.pos = mark
		return nil, false
	}
	save := p.pos
	if p.eat("@") {
		if host, ok := p.eatRegexp(reMentionHost); ok {
			return &ast.Mention{
				Username: user,
				Host:     host,
				Acct:     "@" + user + "@" + host,
			}, true
		}
		p.pos = save
	}
	return &ast.Mention{Username: user, Acct: "@" + user}, true
}

// hashtagBrackets are the paired brackets a hashtag body may balance.
var hashtagBrackets = [][2]string{
	{"(", ")"},
	{"[", "]"},
	{"「", "」"},
	{"（", "）"},
}

// parseHashtag parses #body. The body is a run of hashtag characters and
// balanced bracket nests, must not follow an ASCII alphanumeric character,
// and must contain at least one non-digit codepoint.
func (p *parser) parseHashtag(ctx context, prev rune) (ast.Inline, bool) {
	if isASCIIAlnum(prev) {
		return nil, false
	}
	mark := p.pos
	if !p.eat("#") {
		return nil, false
	}
	start := p.pos
	for p.hashtagItem(ctx) {
	}
	body := p.src[start:p.pos]
	if body == "" || allDigits(body) {
		p.pos = mark
		return nil, false
	}
	return &ast.Hashtag{Hashtag: body}, true
}

// hashtagItem consumes one body item: a balanced bracket nest (below the
// nest limit) or a run of hashtag characters.
func (p *parser) hashtagItem(ctx context) bool {
	if child, ok := ctx.nest(); ok {
		for _, pair := range hashtagBrackets {
			mark := p.pos
			if !p.eat(pair[0]) {
				continue
			}
			for p.hashtagItem(child) {
			}
			if p.eat(pair[1]) {
				return true
			}
			p.pos = mark
		}
	}
	return p.eatHashtagChars()
}

// eatHashtagChars consumes a non-empty run of characters allowed in a
// hashtag body outside brackets.
func (p *parser) eatHashtagChars() bool {
	start := p.pos
	for !p.eof() {
		r, size := p.peek()
		if isHashtagExcluded(r) {
			break
		}
		p.pos += size
	}
	return p.pos > start
}

func isHashtagExcluded(r rune) bool {
	switch r {
	case '.', ',', '!', '?', '\'', '"', '#', ':', '/',
		'[', ']', '【', '】', '(', ')', '「', '」', '（', '）',
		' ', '　', '\t', '\r', '\n':
		return true
	}
	return false
}

func allDigits(s string) bool {
	for _, r := range s {
		if !isASCIIDigit(r) {
			return false
		}
	}
	return true
}
