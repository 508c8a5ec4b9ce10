package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mfm-lang/mfm/ast"
)

// nastyInputs are strings built around lone openers, mismatched closers, and
// mixed constructs. Parsing must always succeed and consume everything.
var nastyInputs = []string{
	"",
	"*",
	"**",
	"***",
	"****",
	"__",
	"~~",
	"~~~~x",
	"`",
	"``` ",
	"\\(",
	"\\[",
	":",
	"::",
	":::",
	"@",
	"@@",
	"#",
	"##",
	"$[",
	"$[]",
	"<b>",
	"</b>",
	"<center>",
	"</center>",
	"<plain>",
	"[",
	"]",
	"[]()",
	"?[](",
	"https:",
	"https://",
	"<https://",
	">",
	"> ",
	">\n>",
	"\r\n\r\n",
	"\n \n　\t",
	"a**b*c~~d`e\\(f:g@h#i$[j<k>l",
	"**@a#b:c:https://x.io$[d [e](f)**",
	"日本語と☺と🎉の混在テキスト",
}

func TestTotality(t *testing.T) {
	for _, input := range nastyInputs {
		nodes, err := Parse(input)
		require.NoError(t, err, "parse(%q)", input)
		checkSiblingInvariants(t, input, nodes)

		simple, err := ParseSimple(input)
		require.NoError(t, err, "parseSimple(%q)", input)
		checkSiblingInvariants(t, input, ast.SimpleNodes(simple))
	}
}

// checkSiblingInvariants verifies the coalescer guarantees on every sibling
// sequence of the tree: no empty text nodes and no adjacent text siblings.
func checkSiblingInvariants(t *testing.T, input string, nodes []ast.Node) {
	t.Helper()
	checkSiblings(t, input, nodes)
	for _, n := range nodes {
		if _, ok := n.(*ast.Plain); ok {
			// A plain run holds exactly one opaque text child.
			continue
		}
		checkSiblingInvariants(t, input, ast.Children(n))
	}
}

func checkSiblings(t *testing.T, input string, siblings []ast.Node) {
	t.Helper()
	prevText := false
	for _, n := range siblings {
		txt, ok := n.(*ast.Text)
		if !ok {
			prevText = false
			continue
		}
		require.NotEmpty(t, txt.Text, "empty text node in parse(%q)", input)
		require.False(t, prevText, "adjacent text nodes in parse(%q)", input)
		prevText = true
	}
}

func TestUnstructuredRoundTrip(t *testing.T) {
	inputs := []string{
		"hello world",
		"The quick brown fox",
		"a b c d e",
	}
	for _, input := range inputs {
		assertParse(t, input, []ast.Node{text(input)})
	}
}

func TestLinkLabelClosure(t *testing.T) {
	inputs := []string{
		"?[x **@a #b https://c.io**](https://example.com)",
		"[**@a** <i>#b</i>](https://example.com)",
	}
	for _, input := range inputs {
		nodes := mustParse(t, input)
		ast.Walk(nodes, func(n ast.Node) bool {
			link, ok := n.(*ast.Link)
			if !ok {
				return true
			}
			ast.Walk(ast.Children(link), func(inner ast.Node) bool {
				switch inner.(type) {
				case *ast.Mention, *ast.Hashtag, *ast.URL, *ast.Link:
					t.Errorf("parse(%q): %T inside link label", input, inner)
				}
				return true
			})
			return false
		})
	}
}

func TestConcurrentParsing(t *testing.T) {
	// The parser is a pure function; concurrent invocations must not
	// interact.
	const workers = 8
	input := "> quote\n**bold** @user #tag https://example.com $[tada :e:]"
	want := mustParse(t, input)

	done := make(chan []ast.Node, workers)
	for i := 0; i < workers; i++ {
		go func() {
			nodes, err := Parse(input)
			if err != nil {
				done <- nil
				return
			}
			done <- nodes
		}()
	}
	for i := 0; i < workers; i++ {
		got := <-done
		require.NotNil(t, got)
		require.Equal(t, want, got)
	}
}
