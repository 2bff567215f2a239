package main

import (
	"encoding/json"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/sh0ckwavezero/folio"
	"github.com/sh0ckwavezero/folio/github"
)

func newStatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Fetch the GitHub statistics shown on the landing page",
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout carries only the JSON document.
			logger := log.New("github")
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetLevel(folio.ParseLogLevel(c.cfg.LogLevel))

			svc := github.NewService(c.cfg.StatsConfig(), c.cfg.StatsFetcher(), github.WithLogger(logger))
			st := svc.Stats(cmd.Context())

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(st)
		},
	}
}
