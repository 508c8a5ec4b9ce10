package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// replEscapes expands the escape sequences the interactive parser accepts
// so multi-line and exotic-whitespace inputs can be typed on one line.
var replEscapes = strings.NewReplacer(
	`\n`, "\n",
	`\r`, "\r",
	`\u00a0`, " ",
)

func newReplCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse lines of MFM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.InOrStdin(), cmd.OutOrStdout(), o)
		},
	}
}

func runREPL(in io.Reader, out io.Writer, o *options) error {
	fmt.Fprintln(out, "interactive parser")
	fmt.Fprintln(out, "Ctrl+D to exit.")
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			break
		}
		line := replEscapes.Replace(sc.Text())
		start := time.Now()
		nodes, err := parseInput(line, o)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		if err := render(out, nodes, o.format); err != nil {
			return err
		}
		fmt.Fprintf(out, "parsing time: %.3fms\n", float64(elapsed.Microseconds())/1000.0)
	}
	fmt.Fprintln(out, "Bye.")
	return sc.Err()
}
