// Package ast defines the node tree produced by parsing MFM (Misskey
// Flavored Markdown) text.
//
// A parse yields an ordered slice of Node. Concrete node types are pointers
// to structs; consumers are expected to type switch over them. Nodes are
// never mutated after construction.
package ast

// Node is any parsed MFM construct, block or inline.
type Node interface {
	isNode()
}

// Block is a construct that occupies whole lines: quote, search, code block,
// math block, center.
type Block interface {
	Node
	isBlock()
}

// Inline is a construct that nests within a line.
type Inline interface {
	Node
	isInline()
}

// Simple is a node emitted by the simple parser: unicode emoji, emoji code,
// or text.
type Simple interface {
	isSimple()
}

// Quote is a block quote. Its body is re-parsed with the full grammar, so
// children may contain nested blocks.
type Quote struct {
	Children []Node
}

// Search is a search block: a query line terminated by a button word.
// Content is the verbatim matched span (query, separator space, button).
type Search struct {
	Query   string
	Content string
}

// CodeBlock is a fenced code block. Lang is empty when the opening fence has
// no language tag; the tag grammar never matches an empty string, so the
// empty value is unambiguous.
type CodeBlock struct {
	Code string
	Lang string
}

// MathBlock is a display-math block. The formula is preserved verbatim.
type MathBlock struct {
	Formula string
}

// Center is a centering block with an inline-only body.
type Center struct {
	Children []Inline
}

// UnicodeEmoji is an emoji grapheme recognized by the emoji oracle.
type UnicodeEmoji struct {
	Emoji string
}

// EmojiCode is a custom-emoji shortcode, the name between colons.
type EmojiCode struct {
	Name string
}

// Bold is bold text. All three source forms produce the same node.
type Bold struct {
	Children []Inline
}

// Small is de-emphasized text.
type Small struct {
	Children []Inline
}

// Italic is italic text. All three source forms produce the same node.
type Italic struct {
	Children []Inline
}

// Strike is struck-through text.
type Strike struct {
	Children []Inline
}

// InlineCode is a code span.
type InlineCode struct {
	Code string
}

// MathInline is an inline-math span.
type MathInline struct {
	Formula string
}

// Mention is a user mention. Host is empty for local mentions. Acct is the
// canonical form, "@username" or "@username@host".
type Mention struct {
	Username string
	Host     string
	Acct     string
}

// Hashtag is a hashtag; the value excludes the leading '#'.
type Hashtag struct {
	Hashtag string
}

// URL is a bare or angle-bracketed URL. Brackets reports whether the
// <...> form matched.
type URL struct {
	URL      string
	Brackets bool
}

// Link is a labeled link. Silent reports whether the leading '?' was
// present. Children never contain Mention, Hashtag, URL, or Link nodes.
type Link struct {
	URL      string
	Silent   bool
	Children []Inline
}

// Fn is an MFM effect function, $[name.args body].
type Fn struct {
	Name     string
	Args     []FnArg
	Children []Inline
}

// FnArg is one argument of an Fn node. Value is empty for bare keys; the
// value grammar never matches an empty string.
type FnArg struct {
	Name  string
	Value string
}

// Plain is an opaque run whose content is never parsed further.
type Plain struct {
	Children []*Text
}

// Text is an unstructured run of characters.
type Text struct {
	Text string
}

func (*Quote) isNode()     {}
func (*Search) isNode()    {}
func (*CodeBlock) isNode() {}
func (*MathBlock) isNode() {}
func (*Center) isNode()    {}

func (*Quote) isBlock()     {}
func (*Search) isBlock()    {}
func (*CodeBlock) isBlock() {}
func (*MathBlock) isBlock() {}
func (*Center) isBlock()    {}

func (*UnicodeEmoji) isNode() {}
func (*EmojiCode) isNode()    {}
func (*Bold) isNode()         {}
func (*Small) isNode()        {}
func (*Italic) isNode()       {}
func (*Strike) isNode()       {}
func (*InlineCode) isNode()   {}
func (*MathInline) isNode()   {}
func (*Mention) isNode()      {}
func (*Hashtag) isNode()      {}
func (*URL) isNode()          {}
func (*Link) isNode()         {}
func (*Fn) isNode()           {}
func (*Plain) isNode()        {}
func (*Text) isNode()         {}

func (*UnicodeEmoji) isInline() {}
func (*EmojiCode) isInline()    {}
func (*Bold) isInline()         {}
func (*Small) isInline()        {}
func (*Italic) isInline()       {}
func (*Strike) isInline()       {}
func (*InlineCode) isInline()   {}
func (*MathInline) isInline()   {}
func (*Mention) isInline()      {}
func (*Hashtag) isInline()      {}
func (*URL) isInline()          {}
func (*Link) isInline()         {}
func (*Fn) isInline()           {}
func (*Plain) isInline()        {}
func (*Text) isInline()         {}

func (*UnicodeEmoji) isSimple() {}
func (*EmojiCode) isSimple()    {}
func (*Text) isSimple()         {}

// SimpleNodes widens a simple-parse result to []Node; every Simple concrete
// type is also an Inline.
func SimpleNodes(nodes []Simple) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.(Node)
	}
	return out
}
