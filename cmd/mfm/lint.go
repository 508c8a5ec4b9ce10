package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mfm-lang/mfm/ast"
)

// knownFnNames are the effect functions the major MFM renderers implement.
// $[…] syntax parses regardless; lint flags names outside this set since
// they render as plain text on most instances.
var knownFnNames = []string{
	"tada", "jelly", "twitch", "shake", "spin", "jump", "bounce", "flip",
	"x2", "x3", "x4", "font", "blur", "rainbow", "sparkle", "rotate",
	"position", "scale", "fg", "bg", "border", "ruby", "unixtime",
}

func newLintCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lint [text]",
		Short: "Report MFM constructs that most renderers will not honor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, ok, err := readInput(o, args)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no input: pass text, --file, or pipe stdin")
			}
			nodes, err := parseInput(input, o)
			if err != nil {
				return err
			}
			findings := lint(nodes)
			for _, f := range findings {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			if len(findings) > 0 {
				return fmt.Errorf("%d finding(s)", len(findings))
			}
			return nil
		},
	}
}

// lint walks the tree and collects renderer-compatibility findings.
func lint(nodes []ast.Node) []string {
	var findings []string
	ast.Walk(nodes, func(n ast.Node) bool {
		fn, ok := n.(*ast.Fn)
		if !ok {
			return true
		}
		if !slices.Contains(knownFnNames, fn.Name) {
			findings = append(findings, fmt.Sprintf(
				"unknown effect $[%s]%s", fn.Name, suggestion(fn.Name, knownFnNames)))
		}
		return true
	})
	return findings
}
