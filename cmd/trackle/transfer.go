package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iamshubhamjangle/trackle/internal/importer"
	"github.com/iamshubhamjangle/trackle/internal/workbook"
)

var importQuiet bool

var importCmd = &cobra.Command{
	Use:   "import <file|dir|git-url>",
	Short: "Merge questions and tags from a spreadsheet",
	Long: `Merge questions and tags from an .xlsx workbook or .csv file.

The source may be a file, a directory holding one, or a git repository URL
which is cloned (or pulled) into the repos directory first. Existing tags
win over imported tags with the same id; questions are appended.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		im := &importer.Importer{
			Tracker:  app.tracker,
			ReposDir: app.cfg.ReposDir,
			Log:      app.log,
		}
		if !importQuiet {
			im.Progress = os.Stderr
		}
		res, err := im.Run(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Imported %s: %d questions, %d new tags (%d already present)\n",
			res.Path, res.Stats.Questions, res.Stats.TagsAdded, res.Stats.TagsSkipped)
		if n := len(res.Skipped); n > 0 {
			fmt.Fprintf(out, "Skipped %d malformed rows:\n", n)
			for _, re := range res.Skipped {
				fmt.Fprintf(out, "  %s\n", re.Error())
			}
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write questions, tags and progress to an .xlsx workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, tags, err := app.tracker.Export()
		if err != nil {
			return err
		}
		if err := workbook.WriteFile(args[0], questions, tags); err != nil {
			return err
		}
		app.log.Info().Str("path", args[0]).Int("questions", len(questions)).Int("tags", len(tags)).Msg("exported")
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d questions and %d tags to %s\n", len(questions), len(tags), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd, exportCmd)
	importCmd.Flags().BoolVarP(&importQuiet, "quiet", "q", false, "Hide git transfer progress")
}
