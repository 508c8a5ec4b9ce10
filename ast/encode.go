package ast

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Values converts a node sequence into plain maps and slices suitable for
// any structural encoder. Each node becomes {"type": t} plus "props" and
// "children" where present; optional strings encode as null when absent.
func Values(nodes []Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = value(n)
	}
	return out
}

func value(n Node) map[string]any {
	switch n := n.(type) {
	case *Quote:
		return node("quote", nil, Values(n.Children))
	case *Search:
		return node("search", map[string]any{"query": n.Query, "content": n.Content}, nil)
	case *CodeBlock:
		return node("blockCode", map[string]any{"code": n.Code, "lang": optional(n.Lang)}, nil)
	case *MathBlock:
		return node("mathBlock", map[string]any{"formula": n.Formula}, nil)
	case *Center:
		return node("center", nil, Values(inlineNodes(n.Children)))
	case *UnicodeEmoji:
		return node("unicodeEmoji", map[string]any{"emoji": n.Emoji}, nil)
	case *EmojiCode:
		return node("emojiCode", map[string]any{"name": n.Name}, nil)
	case *Bold:
		return node("bold", nil, Values(inlineNodes(n.Children)))
	case *Small:
		return node("small", nil, Values(inlineNodes(n.Children)))
	case *Italic:
		return node("italic", nil, Values(inlineNodes(n.Children)))
	case *Strike:
		return node("strike", nil, Values(inlineNodes(n.Children)))
	case *InlineCode:
		return node("inlineCode", map[string]any{"code": n.Code}, nil)
	case *MathInline:
		return node("mathInline", map[string]any{"formula": n.Formula}, nil)
	case *Mention:
		return node("mention", map[string]any{
			"username": n.Username,
			"host":     optional(n.Host),
			"acct":     n.Acct,
		}, nil)
	case *Hashtag:
		return node("hashtag", map[string]any{"hashtag": n.Hashtag}, nil)
	case *URL:
		return node("url", map[string]any{"url": n.URL, "brackets": n.Brackets}, nil)
	case *Link:
		return node("link", map[string]any{"url": n.URL, "silent": n.Silent},
			Values(inlineNodes(n.Children)))
	case *Fn:
		args := map[string]any{}
		for _, a := range n.Args {
			if a.Value == "" {
				args[a.Name] = true
			} else {
				args[a.Name] = a.Value
			}
		}
		return node("fn", map[string]any{"name": n.Name, "args": args},
			Values(inlineNodes(n.Children)))
	case *Plain:
		children := make([]Node, len(n.Children))
		for i, t := range n.Children {
			children[i] = t
		}
		return node("plain", nil, Values(children))
	case *Text:
		return node("text", map[string]any{"text": n.Text}, nil)
	default:
		panic(fmt.Sprintf("ast: unknown node type %T", n))
	}
}

func node(typ string, props map[string]any, children []any) map[string]any {
	m := map[string]any{"type": typ}
	if props != nil {
		m["props"] = props
	}
	if children != nil {
		m["children"] = children
	}
	return m
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// MarshalJSON renders a node sequence as indented JSON.
func MarshalJSON(nodes []Node) ([]byte, error) {
	return json.MarshalIndent(Values(nodes), "", "  ")
}

// Dump renders a node sequence in a compact single-line bracketed form for
// debugging. The format is unspecified and should not be parsed.
func Dump(nodes []Node) string {
	var sb strings.Builder
	for i, n := range nodes {
		if i > 0 {
			sb.WriteString(" ")
		}
		dump(&sb, n)
	}
	return sb.String()
}

func dump(sb *strings.Builder, n Node) {
	sb.WriteString("[")
	switch n := n.(type) {
	case *Search:
		fmt.Fprintf(sb, "search %q", n.Content)
	case *CodeBlock:
		fmt.Fprintf(sb, "blockCode %q %q", n.Lang, n.Code)
	case *MathBlock:
		fmt.Fprintf(sb, "mathBlock %q", n.Formula)
	case *UnicodeEmoji:
		fmt.Fprintf(sb, "unicodeEmoji %q", n.Emoji)
	case *EmojiCode:
		fmt.Fprintf(sb, "emojiCode %q", n.Name)
	case *InlineCode:
		fmt.Fprintf(sb, "inlineCode %q", n.Code)
	case *MathInline:
		fmt.Fprintf(sb, "mathInline %q", n.Formula)
	case *Mention:
		fmt.Fprintf(sb, "mention %q", n.Acct)
	case *Hashtag:
		fmt.Fprintf(sb, "hashtag %q", n.Hashtag)
	case *URL:
		fmt.Fprintf(sb, "url %q", n.URL)
	case *Text:
		fmt.Fprintf(sb, "text %q", n.Text)
	case *Quote:
		sb.WriteString("quote")
	case *Center:
		sb.WriteString("center")
	case *Bold:
		sb.WriteString("bold")
	case *Small:
		sb.WriteString("small")
	case *Italic:
		sb.WriteString("italic")
	case *Strike:
		sb.WriteString("strike")
	case *Link:
		fmt.Fprintf(sb, "link %q silent=%v", n.URL, n.Silent)
	case *Fn:
		fmt.Fprintf(sb, "fn %q", n.Name)
		for _, a := range n.Args {
			if a.Value == "" {
				fmt.Fprintf(sb, " %s", a.Name)
			} else {
				fmt.Fprintf(sb, " %s=%s", a.Name, a.Value)
			}
		}
	case *Plain:
		sb.WriteString("plain")
	}
	for _, c := range Children(n) {
		sb.WriteString(" ")
		dump(sb, c)
	}
	sb.WriteString("]")
}
