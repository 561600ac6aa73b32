package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetForce bool

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a question's completed state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := requireQuestion(args[0])
		if err != nil {
			return err
		}
		p, err := app.tracker.ToggleQuestionCompleted(q)
		if err != nil {
			return err
		}
		state := "not completed"
		if p.Completed {
			state = "completed"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as %s\n", q, state)
		return nil
	},
}

var starCmd = &cobra.Command{
	Use:   "star <id>",
	Short: "Toggle a question's starred state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := requireQuestion(args[0])
		if err != nil {
			return err
		}
		p, err := app.tracker.ToggleQuestionStarred(q)
		if err != nil {
			return err
		}
		state := "Unstarred"
		if p.Starred {
			state = "Starred"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", state, q)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all completed and starred marks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm(cmd, resetForce, "Reset all progress? This cannot be undone.") {
			return nil
		}
		if err := app.tracker.ResetProgress(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
		return nil
	},
}

// requireQuestion rejects ids that name no question, so progress is not
// recorded against typos.
func requireQuestion(id string) (string, error) {
	_, ok, err := app.tracker.QuestionByID(id)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("question %s not found", id)
	}
	return id, nil
}

func init() {
	rootCmd.AddCommand(doneCmd, starCmd, resetCmd)
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation")
}
