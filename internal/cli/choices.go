package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frontend-incubator/incubator/pkg/models"
)

var choicesCmd = &cobra.Command{
	Use:   "choices",
	Short: "List the optional runtime dependencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var pairs []kvPair
		for _, c := range models.DependencyChoices() {
			desc := c.Description
			if c.Default {
				desc += cliMuted.Render(" (default)")
			}
			pairs = append(pairs, kvPair{c.ID.String(), desc})
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), renderKeyValueLines(pairs))
		return err
	},
}

func init() {
	rootCmd.AddCommand(choicesCmd)
}
