package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/frontend-incubator/incubator/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write the user configuration",
	Long: `Read and write ~/.incubator/config.yaml. Every key can also be set with an
INCUBATOR_<KEY> environment variable, which takes precedence over the file.`,
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Print a configuration value",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := deps.Config.Get(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
		return err
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Write a configuration value",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := deps.Config.Set(args[0], args[1]); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s (%s)\n", symSuccess(), args[0], args[1], deps.Config.Path())
		return err
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every configuration value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := deps.UserConfig
		_, err := fmt.Fprintln(cmd.OutOrStdout(), renderKeyValueLines([]kvPair{
			{config.KeySettings, orBuiltIn(cfg.Settings)},
			{config.KeyTemplates, orBuiltIn(cfg.Templates)},
			{config.KeyNPM, cfg.NPM},
			{config.KeySkipInstall, strconv.FormatBool(cfg.SkipInstall)},
			{config.KeyLogLevel, cfg.LogLevel},
		}))
		return err
	},
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configListCmd)
	rootCmd.AddCommand(configCmd)
}

func orBuiltIn(v string) string {
	if v == "" {
		return cliMuted.Render("(built-in)")
	}
	return v
}
