package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// confirm asks a y/N question on the command's streams. force skips the prompt.
func confirm(cmd *cobra.Command, force bool, format string, args ...any) bool {
	if force {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), format+" (y/N): ", args...)
	input, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	if input != "y" && input != "yes" {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return false
	}
	return true
}
