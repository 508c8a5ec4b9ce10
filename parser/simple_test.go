package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/mfm-lang/mfm/ast"
)

func assertSimple(t *testing.T, input string, want []ast.Simple, opts ...Option) {
	t.Helper()
	got, err := ParseSimple(input, opts...)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseSimple(%q) mismatch (-want +got):\n%s", input, diff)
	}
}

func TestSimpleBasic(t *testing.T) {
	got, err := ParseSimple("")
	require.NoError(t, err)
	require.Empty(t, got)

	assertSimple(t, "abc", []ast.Simple{text("abc")})
	assertSimple(t, ":foo:", []ast.Simple{&ast.EmojiCode{Name: "foo"}})
	assertSimple(t, "foo :bar: baz", []ast.Simple{
		text("foo "),
		&ast.EmojiCode{Name: "bar"},
		text(" baz"),
	})
}

func TestSimpleIgnoresFullGrammar(t *testing.T) {
	// Everything except emoji codes is plain text in simple mode.
	assertSimple(t, "**bold** > quote $[tada x] @user", []ast.Simple{
		text("**bold** > quote $[tada x] @user"),
	})
}

func TestSimpleSideGuards(t *testing.T) {
	assertSimple(t, "foo:bar:baz", []ast.Simple{text("foo:bar:baz")})
	assertSimple(t, "12:34:56", []ast.Simple{text("12:34:56")})
	assertSimple(t, "a:b: :c:", []ast.Simple{
		text("a:b: "),
		&ast.EmojiCode{Name: "c"},
	})
}

func TestSimpleUnicodeEmoji(t *testing.T) {
	oracle := func(s string) (int, string, bool) {
		if strings.HasPrefix(s, "🍮") {
			return len("🍮"), "🍮", true
		}
		return 0, "", false
	}
	assertSimple(t, "a🍮:x:", []ast.Simple{
		text("a"),
		&ast.UnicodeEmoji{Emoji: "🍮"},
		&ast.EmojiCode{Name: "x"},
	}, WithEmojiOracle(oracle))
}

func TestSimpleNestLimitValidation(t *testing.T) {
	_, err := ParseSimple("abc", WithNestLimit(0))
	require.ErrorIs(t, err, ErrNestLimit)
}
