package parser

import (
	"testing"

	"github.com/mfm-lang/mfm/ast"
)

func TestMention(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ast.Node
	}{
		{
			name:  "local",
			input: "@abc",
			want:  []ast.Node{&ast.Mention{Username: "abc", Acct: "@abc"}},
		},
		{
			name:  "single character",
			input: "@a",
			want:  []ast.Node{&ast.Mention{Username: "a", Acct: "@a"}},
		},
		{
			name:  "remote",
			input: "@abc@misskey.io",
			want: []ast.Node{&ast.Mention{
				Username: "abc",
				Host:     "misskey.io",
				Acct:     "@abc@misskey.io",
			}},
		},
		{
			name:  "between text",
			input: "before @abc after",
			want: []ast.Node{
				text("before "),
				&ast.Mention{Username: "abc", Acct: "@abc"},
				text(" after"),
			},
		},
		{
			name:  "preceding alphanumeric disables",
			input: "abc@abc",
			want:  []ast.Node{text("abc@abc")},
		},
		{
			name:  "trailing dot stays outside",
			input: "@abc.",
			want:  []ast.Node{&ast.Mention{Username: "abc", Acct: "@abc"}, text(".")},
		},
		{
			name:  "trailing dash stays outside",
			input: "@abc-",
			want:  []ast.Node{&ast.Mention{Username: "abc", Acct: "@abc"}, text("-")},
		},
		{
			name:  "underscore is a word character",
			input: "@a_b",
			want:  []ast.Node{&ast.Mention{Username: "a_b", Acct: "@a_b"}},
		},
		{
			name:  "leading dash is not a username",
			input: "@-abc",
			want:  []ast.Node{text("@-abc")},
		},
		{
			name:  "host may not end with a dot",
			input: "@abc@x.y.",
			want: []ast.Node{
				&ast.Mention{Username: "abc", Host: "x.y", Acct: "@abc@x.y"},
				text("."),
			},
		},
		{
			name:  "dangling invalid remote part swallows as text",
			input: "@abc-@aaa",
			want:  []ast.Node{text("@abc-@aaa")},
		},
		{
			name:  "invalid host start swallows as text",
			input: "@abc@-x",
			want:  []ast.Node{text("@abc@-x")},
		},
		{
			name:  "bare at sign",
			input: "@",
			want:  []ast.Node{text("@")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertParse(t, tt.input, tt.want)
		})
	}
}

func TestHashtag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ast.Node
	}{
		{
			name:  "basic",
			input: "#abc",
			want:  []ast.Node{&ast.Hashtag{Hashtag: "abc"}},
		},
		{
			name:  "after space",
			input: "before #abc",
			want:  []ast.Node{text("before "), &ast.Hashtag{Hashtag: "abc"}},
		},
		{
			name:  "punctuation ends the tag",
			input: "#abc!",
			want:  []ast.Node{&ast.Hashtag{Hashtag: "abc"}, text("!")},
		},
		{
			name:  "balanced parens are kept",
			input: "#foo(bar)",
			want:  []ast.Node{&ast.Hashtag{Hashtag: "foo(bar)"}},
		},
		{
			name:  "balanced corner brackets are kept",
			input: "#foo「bar」",
			want:  []ast.Node{&ast.Hashtag{Hashtag: "foo「bar」"}},
		},
		{
			name:  "surrounding parens stay outside",
			input: "(#foo)",
			want:  []ast.Node{text("("), &ast.Hashtag{Hashtag: "foo"}, text(")")},
		},
		{
			name:  "unbalanced paren ends the tag",
			input: "#foo(bar",
			want:  []ast.Node{&ast.Hashtag{Hashtag: "foo"}, text("(bar")},
		},
		{
			name:  "digits only is rejected",
			input: "#123",
			want:  []ast.Node{text("#123")},
		},
		{
			name:  "digits with a letter is accepted",
			input: "#123a",
			want:  []ast.Node{&ast.Hashtag{Hashtag: "123a"}},
		},
		{
			name:  "non-ascii tag",
			input: "#東京",
			want:  []ast.Node{&ast.Hashtag{Hashtag: "東京"}},
		},
		{
			name:  "preceding alphanumeric disables",
			input: "abc#tag",
			want:  []ast.Node{text("abc#tag")},
		},
		{
			name:  "preceding non-ascii allows",
			input: "あ#tag",
			want:  []ast.Node{text("あ"), &ast.Hashtag{Hashtag: "tag"}},
		},
		{
			name:  "bare hash",
			input: "#",
			want:  []ast.Node{text("#")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertParse(t, tt.input, tt.want)
		})
	}
}
