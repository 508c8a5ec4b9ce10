package parser

import (
	"github.com/mfm-lang/mfm/ast"
)

// parseUnicodeEmoji consults the pluggable emoji oracle at the current
// position.
func (p *parser) parseUnicodeEmoji(ctx context) (ast.Inline, bool) {
	size, emoji, ok := ctx.emoji(p.src[p.pos:])
	if !ok || size <= 0 || size > len(p.src)-p.pos {
		return nil, false
	}
	p.pos += size
	return &ast.UnicodeEmoji{Emoji: emoji}, true
}

// parseEmojiCode parses :name:. The characters on both sides of the
// shortcode must not be ASCII alphanumeric.
func (p *parser) parseEmojiCode(prev rune) (ast.Inline, bool) {
	if isASCIIAlnum(prev) {
		return nil, false
	}
	mark := p.pos
	if !p.eat(":") {
		return nil, false
	}
	name, ok := p.eatRegexp(reEmojiName)
	if !ok || !p.eat(":") {
		p.pos = mark
		return nil, false
	}
	if !p.eof() {
		if r, _ := p.peek(); isASCIIAlnum(r) {
			p.pos = mark
			return nil, false
		}
	}
	return &ast.EmojiCode{Name: name}, true
}

// parseBig parses ***…*** and emits it as the tada effect function.
func (p *parser) parseBig(ctx context) (ast.Inline, bool) {
	mark := p.pos
	if !p.eat("***") {
		return nil, false
	}
	children, ok := p.inlineBody(ctx, stopLit("***"))
	if !ok || !p.eat("***") {
		p.pos = mark
		return nil, false
	}
	return &ast.Fn{Name: "tada", Children: ast.MergeTextInline(children)}, true
}

// parseBold parses the three bold forms in order: **…**, <b>…</b>, and
// __…__ with an ASCII-only body.
func (p *parser) parseBold(ctx context) (ast.Inline, bool) {
	if children, ok := p.tagBody(ctx, "**", "**"); ok {
		return &ast.Bold{Children: children}, true
	}
	if children, ok := p.tagBody(ctx, "<b>", "</b>"); ok {
		return &ast.Bold{Children: children}, true
	}
	if m := reBoldUnder.FindStringSubmatch(p.src[p.pos:]); m != nil {
		p.pos += len(m[0])
		return &ast.Bold{Children: []ast.Inline{&ast.Text{Text: m[1]}}}, true
	}
	return nil, false
}

// parseSmall parses <small>…</small>.
func (p *parser) parseSmall(ctx context) (ast.Inline, bool) {
	children, ok := p.tagBody(ctx, "<small>", "</small>")
	if !ok {
		return nil, false
	}
	return &ast.Small{Children: children}, true
}

// parseItalic parses the three italic forms in order: <i>…</i>, *…*, and
// _…_. The starred and underscored forms take an ASCII-only body and must
// not follow an ASCII alphanumeric character.
func (p *parser) parseItalic(ctx context, prev rune) (ast.Inline, bool) {
	if children, ok := p.tagBody(ctx, "<i>", "</i>"); ok {
		return &ast.Italic{Children: children}, true
	}
	if isASCIIAlnum(prev) {
		return nil, false
	}
	for _, d := range []string{"*", "_"} {
		if body, ok := p.delimitedAlnumRun(d); ok {
			return &ast.Italic{Children: []ast.Inline{&ast.Text{Text: body}}}, true
		}
	}
	return nil, false
}

// delimitedAlnumRun matches d, a non-empty run of ASCII alphanumerics,
// spaces, and tabs, then d again.
func (p *parser) delimitedAlnumRun(d string) (string, bool) {
	mark := p.pos
	if !p.eat(d) {
		return "", false
	}
	start := p.pos
	for !p.eof() {
		c := p.src[p.pos]
		if c < 128 && (asciiAlnum[c] || c == ' ' || c == '\t') {
			p.pos++
			continue
		}
		break
	}
	body := p.src[start:p.pos]
	if body == "" || !p.eat(d) {
		p.pos = mark
		return "", false
	}
	return body, true
}

// parseStrike parses <s>…</s> and ~~…~~. The tilde form must not span a
// line boundary.
func (p *parser) parseStrike(ctx context) (ast.Inline, bool) {
	if children, ok := p.tagBody(ctx, "<s>", "</s>"); ok {
		return &ast.Strike{Children: children}, true
	}
	mark := p.pos
	if !p.eat("~~") {
		return nil, false
	}
	stop := func(p *parser) bool { return p.lookingAt("~~") || p.atLineEnd() && !p.eof() }
	children, ok := p.inlineBody(ctx, stop)
	if !ok || !p.eat("~~") {
		p.pos = mark
		return nil, false
	}
	return &ast.Strike{Children: ast.MergeTextInline(children)}, true
}

// tagBody parses open, a recursive inline body, then close. Shared by the
// recursive bold, small, italic, and strike forms.
func (p *parser) tagBody(ctx context, open, close string) ([]ast.Inline, bool) {
	mark := p.pos
	if !p.eat(open) {
		return nil, false
	}
	children, ok := p.inlineBody(ctx, stopLit(close))
	if !ok || !p.eat(close) {
		p.pos = mark
		return nil, false
	}
	return ast.MergeTextInline(children), true
}

// parseInlineCode parses `…`. The body may not contain a backtick, an acute
// accent, or a line terminator.
func (p *parser) parseInlineCode() (ast.Inline, bool) {
	mark := p.pos
	if !p.eat("`") {
		return nil, false
	}
	start := p.pos
	for !p.eof() {
		r, size := p.peek()
		if r == '`' || r == '´' || r == '\n' || r == '\r' {
			break
		}
		p.pos += size
	}
	code := p.src[start:p.pos]
	if code == "" || !p.eat("`") {
		p.pos = mark
		return nil, false
	}
	return &ast.InlineCode{Code: code}, true
}

// parseMathInline parses \(…\) on a single line.
func (p *parser) parseMathInline() (ast.Inline, bool) {
	mark := p.pos
	if !p.eat(`\(`) {
		return nil, false
	}
	start := p.pos
	for !p.eof() && !p.lookingAt(`\)`) {
		if p.atLineEnd() {
			break
		}
		p.bump()
	}
	formula := p.src[start:p.pos]
	if formula == "" || !p.eat(`\)`) {
		p.pos = mark
		return nil, false
	}
	return &ast.MathInline{Formula: formula}, true
}

// parsePlain parses <plain>…</plain>; the body is kept as a single opaque
// text node. A line terminator directly after the opening tag and directly
// before the closing tag is dropped.
func (p *parser) parsePlain() (ast.Inline, bool) {
	mark := p.pos
	if !p.eat("<plain>") {
		return nil, false
	}
	p.eatLineEnding()
	stop := func(p *parser) bool {
		save := p.pos
		p.eatLineEnding()
		ok := p.lookingAt("</plain>")
		p.pos = save
		return ok
	}
	text, ok := p.textUntil(stop)
	if !ok {
		p.pos = mark
		return nil, false
	}
	p.eatLineEnding()
	if !p.eat("</plain>") {
		p.pos = mark
		return nil, false
	}
	return &ast.Plain{Children: []*ast.Text{{Text: text}}}, true
}

// parseFn parses $[name.key=value,… body]. The body is recursive inline
// content terminated by the closing bracket.
func (p *parser) parseFn(ctx context) (ast.Inline, bool) {
	mark := p.pos
	if !p.eat("$[") {
		return nil, false
	}
	name, ok := p.eatRegexp(reFnName)
	if !ok {
		p.pos = mark
		return nil, false
	}
	var args []ast.FnArg
	if p.eat(".") {
		for {
			arg, ok := p.fnArg()
			if !ok {
				p.pos = mark
				return nil, false
			}
			args = append(args, arg)
			if !p.eat(",") {
				break
			}
		}
	}
	if !p.eat(" ") {
		p.pos = mark
		return nil, false
	}
	children, ok := p.inlineBody(ctx, stopLit("]"))
	if !ok || !p.eat("]") {
		p.pos = mark
		return nil, false
	}
	return &ast.Fn{Name: name, Args: args, Children: ast.MergeTextInline(children)}, true
}

func (p *parser) fnArg() (ast.FnArg, bool) {
	key, ok := p.eatRegexp(reFnName)
	if !ok {
		return ast.FnArg{}, false
	}
	save := p.pos
	if p.eat("=") {
		value, ok := p.eatRegexp(reFnValue)
		if !ok {
			p.pos = save
			return ast.FnArg{}, false
		}
		return ast.FnArg{Name: key, Value: value}, true
	}
	return ast.FnArg{Name: key}, true
}
