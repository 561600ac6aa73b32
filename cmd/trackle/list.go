package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iamshubhamjangle/trackle/internal/domain"
	"github.com/iamshubhamjangle/trackle/internal/view"
)

var listToggle []string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show questions grouped and filtered by the current view options",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, listToggle)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringSliceVar(&listToggle, "toggle", nil, "Fold or unfold the given tag ids for this listing")
}

func runList(cmd *cobra.Command, toggle []string) error {
	in, err := app.tracker.Snapshot()
	if err != nil {
		return err
	}
	res := view.Derive(in)

	folds := view.NewFolds(in.Options, in.Tags)
	for _, id := range toggle {
		folds.Toggle(id)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Progress: %d/%d completed (%.0f%%)\n\n", res.CompletedCount, res.TotalCount, res.Percent())

	if res.TotalCount == 0 {
		fmt.Fprintln(out, "No questions added yet. Add some with 'trackle question add' or 'trackle import'.")
		return nil
	}

	for _, g := range res.Groups {
		marker := "v"
		if !folds.Expanded(g) {
			marker = ">"
		}
		fmt.Fprintf(out, "%s %s (%d/%d)\n", marker, g.Tag.Name, g.CompletedInGroup, g.TotalInGroup)
		if folds.Expanded(g) {
			renderQuestions(out, g.Questions, in.Progress, in.Options)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func renderQuestions(out io.Writer, qs []domain.Question, p domain.Progress, opts domain.ViewOptions) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, q := range qs {
		qp := p.Get(q.ID)
		done, star := "[ ]", " "
		if qp.Completed {
			done = "[x]"
		}
		if qp.Starred {
			star = "*"
		}
		cols := []string{"  " + done + star, q.Name}
		if opts.ShowDifficulty {
			cols = append(cols, string(q.Difficulty))
		}
		cols = append(cols, q.URL, q.ID)
		fmt.Fprintln(w, strings.Join(cols, "\t"))
	}
	w.Flush()
}
