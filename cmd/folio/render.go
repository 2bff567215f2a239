package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sh0ckwavezero/folio/markdown"
)

func newRenderCmd(c *cli) *cobra.Command {
	var feed bool
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a markdown file to styled HTML",
		Long:  "Render reads markdown from file (or stdin when omitted or \"-\") and writes the styled HTML fragment to stdout.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			p := markdown.New(markdown.HighlightOptions{Style: c.cfg.Theme})

			var out string
			if feed {
				out, err = p.FeedHTML(string(src))
			} else {
				out, err = p.RenderHTML(cmd.Context(), string(src))
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&feed, "feed", false, "plain goldmark HTML as used in the RSS feed")
	return cmd
}

func readSource(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return b, nil
}
