package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mfm-lang/mfm"
)

func TestRender(t *testing.T) {
	nodes, err := mfm.Parse("**abc**")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, nodes, "json"))
	require.Contains(t, buf.String(), `"type": "bold"`)

	buf.Reset()
	require.NoError(t, render(&buf, nodes, "yaml"))
	require.Contains(t, buf.String(), "type: bold")

	buf.Reset()
	require.NoError(t, render(&buf, nodes, "tree"))
	require.Equal(t, "[bold [text \"abc\"]]\n", buf.String())
}

func TestRenderUnknownFormat(t *testing.T) {
	nodes, err := mfm.Parse("x")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = render(&buf, nodes, "josn")
	require.Error(t, err)
	require.Contains(t, err.Error(), `did you mean "json"?`)
}

func TestParseInputSimpleMode(t *testing.T) {
	o := &options{simple: true}
	nodes, err := parseInput("**abc** :e:", o)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
}

func TestParseInputNestLimit(t *testing.T) {
	o := &options{nestLimit: 2}
	nodes, err := parseInput(">>> abc", o)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
}

func TestLint(t *testing.T) {
	nodes, err := mfm.Parse("$[tada ok] $[sprin bad]")
	require.NoError(t, err)

	findings := lint(nodes)
	require.Len(t, findings, 1)
	require.Contains(t, findings[0], "unknown effect $[sprin]")
	require.Contains(t, findings[0], `did you mean "spin"?`)
}

func TestLintNested(t *testing.T) {
	nodes, err := mfm.Parse("**$[wobble x]**")
	require.NoError(t, err)
	findings := lint(nodes)
	require.Len(t, findings, 1)
}

func TestReplEscapes(t *testing.T) {
	require.Equal(t, "a\nb", replEscapes.Replace(`a\nb`))
	require.Equal(t, "a\rb", replEscapes.Replace(`a\rb`))
}

func TestRunREPL(t *testing.T) {
	in := strings.NewReader("**abc**\n")
	var out bytes.Buffer
	o := &options{format: "tree"}
	require.NoError(t, runREPL(in, &out, o))

	s := out.String()
	require.Contains(t, s, "interactive parser")
	require.Contains(t, s, "[bold [text \"abc\"]]")
	require.Contains(t, s, "parsing time:")
	require.Contains(t, s, "Bye.")
}
