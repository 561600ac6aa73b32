package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamshubhamjangle/trackle/internal/domain"
)

var optionsToggle []string

// toggles maps the names accepted by --toggle to tracker operations.
var toggles = map[string]func() (domain.ViewOptions, error){
	"difficulty": func() (domain.ViewOptions, error) { return app.tracker.ToggleShowDifficulty() },
	"starred":    func() (domain.ViewOptions, error) { return app.tracker.ToggleStarredFilter() },
	"random":     func() (domain.ViewOptions, error) { return app.tracker.ToggleRandomize() },
	"category":   func() (domain.ViewOptions, error) { return app.tracker.ToggleCategoryWise() },
	"fold":       func() (domain.ViewOptions, error) { return app.tracker.ToggleAllFolded() },
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show or toggle view options",
	Example: `  trackle options
  trackle options --toggle random,starred`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range optionsToggle {
			fn, ok := toggles[name]
			if !ok {
				return fmt.Errorf("unknown option %q (want difficulty, starred, random, category or fold)", name)
			}
			if _, err := fn(); err != nil {
				return err
			}
		}

		opts, err := app.tracker.ViewOptions()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "difficulty  %s\n", onOff(opts.ShowDifficulty))
		fmt.Fprintf(out, "starred     %s\n", onOff(opts.Starred))
		fmt.Fprintf(out, "random      %s\n", onOff(opts.Randomize))
		fmt.Fprintf(out, "category    %s\n", onOff(opts.CategoryWise))
		fmt.Fprintf(out, "fold        %s\n", onOff(opts.AllFolded))
		return nil
	},
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func init() {
	rootCmd.AddCommand(optionsCmd)
	optionsCmd.Flags().StringSliceVar(&optionsToggle, "toggle", nil, "Options to flip: difficulty, starred, random, category, fold")
}
