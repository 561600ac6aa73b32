package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/iamshubhamjangle/trackle/internal/domain"
)

var (
	tagColor    string
	tagNewColor string
	tagName     string
	tagForce    bool
	tagMove     int
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags",
}

var tagLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List tags in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, err := app.tracker.Tags()
		if err != nil {
			return err
		}
		questions, err := app.tracker.Questions()
		if err != nil {
			return err
		}
		if len(tags) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No tags.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tName\tColor\tQuestions")
		fmt.Fprintln(w, "--\t----\t-----\t---------")
		for _, t := range tags {
			n := 0
			for _, q := range questions {
				if q.HasTag(t.ID) {
					n++
				}
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", t.ID, t.Name, t.Color, n)
		}
		return w.Flush()
	},
}

var tagAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("tag name cannot be empty")
		}
		tag := app.tracker.NewTag(name, tagColor)
		if err := app.tracker.AddTag(tag); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added tag %q (%s)\n", tag.Name, tag.ID)
		return nil
	},
}

var tagEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Rename or recolor a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch domain.TagPatch
		if cmd.Flags().Changed("name") {
			patch.Name = &tagName
		}
		if cmd.Flags().Changed("color") {
			patch.Color = &tagNewColor
		}
		if patch.Name == nil && patch.Color == nil {
			return fmt.Errorf("nothing to change: pass --name or --color")
		}
		if err := app.tracker.UpdateTag(args[0], patch); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated tag %s\n", args[0])
		return nil
	},
}

var tagRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a tag and remove it from every question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, ok, err := app.tracker.TagByID(args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("tag %s not found", args[0])
		}
		if !confirm(cmd, tagForce, "Delete tag %q? Questions keep their other tags.", tag.Name) {
			return nil
		}
		if err := app.tracker.DeleteTag(tag.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted tag %q\n", tag.Name)
		return nil
	},
}

var tagReorderCmd = &cobra.Command{
	Use:   "reorder <id>...",
	Short: "Set the tag display order",
	Long: `Set the tag display order.

With a list of ids, the list must name every tag exactly once.
With --move, the single given tag is shifted by that many places.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("move") {
			if len(args) != 1 {
				return fmt.Errorf("--move takes exactly one tag id")
			}
			return app.tracker.MoveTag(args[0], tagMove)
		}
		return app.tracker.ReorderTags(args)
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.AddCommand(tagLsCmd, tagAddCmd, tagEditCmd, tagRmCmd, tagReorderCmd)

	tagAddCmd.Flags().StringVar(&tagColor, "color", domain.Colors[0], "Tag color")
	tagEditCmd.Flags().StringVar(&tagName, "name", "", "New tag name")
	tagEditCmd.Flags().StringVar(&tagNewColor, "color", "", "New tag color")
	tagRmCmd.Flags().BoolVarP(&tagForce, "force", "f", false, "Skip confirmation")
	tagReorderCmd.Flags().IntVar(&tagMove, "move", 0, "Move the tag up (negative) or down (positive)")
}
