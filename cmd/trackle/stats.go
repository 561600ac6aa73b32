package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iamshubhamjangle/trackle/internal/domain"
	"github.com/iamshubhamjangle/trackle/internal/view"
)

var statsStorage bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion per tag and overall",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := app.tracker.Snapshot()
		if err != nil {
			return err
		}
		// Per-tag numbers cover every question, not just the filtered ones.
		in.Options.Starred = false
		in.Options.CategoryWise = true
		res := view.Derive(in)

		out := cmd.OutOrStdout()
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "Tag\tDone\tTotal\t%")
		fmt.Fprintln(w, "---\t----\t-----\t-")
		for _, g := range res.Groups {
			fmt.Fprintf(w, "%s\t%d\t%d\t%.0f\n", g.Tag.Name, g.CompletedInGroup, g.TotalInGroup, g.Percent())
		}
		fmt.Fprintf(w, "All\t%d\t%d\t%.0f\n", res.CompletedCount, res.TotalCount, res.Percent())
		w.Flush()

		byDifficulty := map[domain.Difficulty][2]int{}
		for _, q := range in.Questions {
			c := byDifficulty[q.Difficulty]
			c[1]++
			if in.Progress.Get(q.ID).Completed {
				c[0]++
			}
			byDifficulty[q.Difficulty] = c
		}
		fmt.Fprintln(out)
		for _, d := range domain.Difficulties {
			c := byDifficulty[d]
			fmt.Fprintf(out, "%-7s %d/%d\n", d, c[0], c[1])
		}

		if statsStorage {
			entries, err := app.db.Entries()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nStorage: %s\n", app.cfg.DB)
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%d bytes\t%s\n", e.Key, e.Size, e.UpdatedAt.Format("2006-01-02 15:04"))
			}
			w.Flush()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsStorage, "storage", false, "Also list the stored records")
}
