package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	mfmlog "github.com/mfm-lang/mfm/log"
)

func newWatchCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reparse a file whenever it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.file == "" {
				return fmt.Errorf("watch requires --file")
			}
			logger, err := mfmlog.New(cmd.ErrOrStderr(), o.logLevel, o.logFormat)
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()
			if err := watcher.Add(o.file); err != nil {
				return err
			}

			reparse := func() {
				b, err := os.ReadFile(o.file)
				if err != nil {
					logger.Error("read failed", "file", o.file, "err", err)
					return
				}
				start := time.Now()
				nodes, err := parseInput(string(b), o)
				if err != nil {
					logger.Error("parse failed", "file", o.file, "err", err)
					return
				}
				if err := render(cmd.OutOrStdout(), nodes, o.format); err != nil {
					logger.Error("render failed", "err", err)
					return
				}
				logger.Info("parsed", "file", o.file,
					"bytes", len(b), "nodes", len(nodes), "duration", time.Since(start))
			}

			logger.Info("watching", "file", o.file)
			reparse()
			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
						reparse()
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					logger.Error("watch error", "err", err)
				}
			}
		},
	}
}
