// Command mfm parses MFM text into a node tree.
//
// With an argument or piped input it parses once and prints the tree in the
// requested format. With a terminal on stdin and no input it drops into the
// interactive parser. Subcommands: repl, lint, watch, version.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mfm-lang/mfm"
	"github.com/mfm-lang/mfm/ast"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	file      string
	format    string
	simple    bool
	nestLimit int
	logLevel  string
	logFormat string
}

var formats = []string{"json", "yaml", "tree"}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:           "mfm [text]",
		Short:         "Parse MFM (Misskey Flavored Markdown) into a node tree",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, ok, err := readInput(o, args)
			if err != nil {
				return err
			}
			if !ok {
				return runREPL(os.Stdin, cmd.OutOrStdout(), o)
			}
			nodes, err := parseInput(input, o)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), nodes, o.format)
		},
	}
	cmd.PersistentFlags().StringVarP(&o.file, "file", "f", "", "read MFM input from a file")
	cmd.PersistentFlags().StringVar(&o.format, "format", "json", "output format: json, yaml, or tree")
	cmd.PersistentFlags().BoolVar(&o.simple, "simple", false, "use the simple grammar (emoji codes and text only)")
	cmd.PersistentFlags().IntVar(&o.nestLimit, "nest-limit", 0, "maximum container nesting depth (0 uses the default)")
	cmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&o.logFormat, "log-format", "logfmt", "log format: logfmt or json")

	cmd.AddCommand(newReplCmd(o))
	cmd.AddCommand(newLintCmd(o))
	cmd.AddCommand(newWatchCmd(o))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// readInput resolves the input text from the argument, --file, or piped
// stdin, in that order. ok is false when none is available and the caller
// should fall back to the REPL.
func readInput(o *options, args []string) (string, bool, error) {
	if len(args) == 1 {
		return args[0], true, nil
	}
	if o.file != "" {
		b, err := os.ReadFile(o.file)
		if err != nil {
			return "", false, err
		}
		return string(b), true, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", false, nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

// parseInput runs the configured parse over the input.
func parseInput(input string, o *options) ([]ast.Node, error) {
	var opts []mfm.Option
	if o.nestLimit > 0 {
		opts = append(opts, mfm.WithNestLimit(o.nestLimit))
	}
	if o.simple {
		nodes, err := mfm.ParseSimple(input, opts...)
		if err != nil {
			return nil, err
		}
		return ast.SimpleNodes(nodes), nil
	}
	return mfm.Parse(input, opts...)
}

// render writes the node tree to w in the requested format.
func render(w io.Writer, nodes []ast.Node, format string) error {
	switch format {
	case "json":
		b, err := ast.MarshalJSON(nodes)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(b))
		return nil
	case "yaml":
		b, err := yaml.Marshal(ast.Values(nodes))
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case "tree":
		fmt.Fprintln(w, ast.Dump(nodes))
		return nil
	}
	return fmt.Errorf("unknown format %q%s", format, suggestion(format, formats))
}

// suggestion renders a "did you mean" hint from the closest fuzzy match.
func suggestion(input string, candidates []string) string {
	ranks := fuzzy.RankFindFold(input, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return fmt.Sprintf(" (did you mean %q?)", ranks[0].Target)
	}
	// Fall back to edit distance for plain typos.
	best := ""
	bestDist := 3
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(input, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

