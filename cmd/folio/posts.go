package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sh0ckwavezero/folio/content"
)

func newPostsCmd(c *cli) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List posts in listing order",
		RunE: func(cmd *cobra.Command, args []string) error {
			var src content.Source = content.Default()
			if dir := c.cfg.ContentDir; dir != "" {
				s, err := content.LoadDir(os.DirFS(dir))
				if err != nil {
					return err
				}
				src = s
			}
			posts := content.List(src, c.cfg.Order)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(posts)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tDATE\tTITLE")
			for _, p := range posts {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Slug, p.Date(), p.Title)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
