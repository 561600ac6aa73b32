package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iamshubhamjangle/trackle/internal/domain"
)

var (
	questionURL        string
	questionDifficulty string
	questionTags       []string
	questionName       string
	questionForce      bool
)

var questionCmd = &cobra.Command{
	Use:     "question",
	Aliases: []string{"q"},
	Short:   "Manage questions",
}

var questionAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a question",
	Example: `  trackle question add "Two Sum" --url https://leetcode.com/problems/two-sum/ --difficulty easy --tags arrays,hashing
  trackle question add "LRU Cache" --url https://leetcode.com/problems/lru-cache/ -d medium`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("question name cannot be empty")
		}
		if questionURL == "" {
			return fmt.Errorf("--url is required")
		}
		q, err := app.tracker.NewQuestion(name, questionURL, domain.ParseDifficulty(questionDifficulty), questionTags)
		if err != nil {
			return err
		}
		if err := app.tracker.AddQuestion(q); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %q [%s] (%s)\n", q.Name, q.Difficulty, q.ID)
		return nil
	},
}

var questionEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a question's fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch domain.QuestionPatch
		changed := false
		if cmd.Flags().Changed("name") {
			patch.Name, changed = &questionName, true
		}
		if cmd.Flags().Changed("url") {
			patch.URL, changed = &questionURL, true
		}
		if cmd.Flags().Changed("difficulty") {
			d := domain.ParseDifficulty(questionDifficulty)
			patch.Difficulty, changed = &d, true
		}
		if cmd.Flags().Changed("tags") {
			patch.Tags, changed = append([]string{}, questionTags...), true
		}
		if !changed {
			return fmt.Errorf("nothing to change: pass --name, --url, --difficulty or --tags")
		}
		if err := app.tracker.UpdateQuestion(args[0], patch); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated question %s\n", args[0])
		return nil
	},
}

var questionRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, ok, err := app.tracker.QuestionByID(args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("question %s not found", args[0])
		}
		if !confirm(cmd, questionForce, "Delete %q?", q.Name) {
			return nil
		}
		if err := app.tracker.DeleteQuestion(q.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", q.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(questionCmd)
	questionCmd.AddCommand(questionAddCmd, questionEditCmd, questionRmCmd)

	for _, c := range []*cobra.Command{questionAddCmd, questionEditCmd} {
		c.Flags().StringVar(&questionURL, "url", "", "Problem URL")
		c.Flags().StringVarP(&questionDifficulty, "difficulty", "d", string(domain.Medium), "Easy, Medium or Hard")
		c.Flags().StringSliceVarP(&questionTags, "tags", "t", nil, "Comma-separated tag ids")
	}
	questionEditCmd.Flags().StringVar(&questionName, "name", "", "New question name")
	questionRmCmd.Flags().BoolVarP(&questionForce, "force", "f", false, "Skip confirmation")
}
