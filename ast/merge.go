package ast

import "strings"

// mergeRuns folds a sibling sequence left to right, concatenating adjacent
// text payloads into a single buffer and flushing it as one node before each
// non-text sibling. Empty text contributes nothing, so merged sequences
// never contain an empty Text node.
func mergeRuns[T any](nodes []T, textOf func(T) (string, bool), lift func(string) T) []T {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]T, 0, len(nodes))
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, lift(buf.String()))
			buf.Reset()
		}
	}
	for _, n := range nodes {
		if s, ok := textOf(n); ok {
			buf.WriteString(s)
			continue
		}
		flush()
		out = append(out, n)
	}
	flush()
	return out
}

// MergeText merges adjacent Text siblings of a node sequence into one.
func MergeText(nodes []Node) []Node {
	return mergeRuns(nodes,
		func(n Node) (string, bool) {
			if t, ok := n.(*Text); ok {
				return t.Text, true
			}
			return "", false
		},
		func(s string) Node { return &Text{Text: s} })
}

// MergeTextInline merges adjacent Text siblings of an inline sequence.
func MergeTextInline(nodes []Inline) []Inline {
	return mergeRuns(nodes,
		func(n Inline) (string, bool) {
			if t, ok := n.(*Text); ok {
				return t.Text, true
			}
			return "", false
		},
		func(s string) Inline { return &Text{Text: s} })
}

// MergeTextSimple merges adjacent Text siblings of a simple-parse sequence.
func MergeTextSimple(nodes []Simple) []Simple {
	return mergeRuns(nodes,
		func(n Simple) (string, bool) {
			if t, ok := n.(*Text); ok {
				return t.Text, true
			}
			return "", false
		},
		func(s string) Simple { return &Text{Text: s} })
}
