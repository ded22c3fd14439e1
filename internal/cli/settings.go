package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/frontend-incubator/incubator/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect settings documents",
}

var settingsValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a settings document",
	Long: `Validate a settings document against the settings schema and check that
every path role resolves. Without a file, the configured or built-in
document is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsValidate,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print the resolved path roles and default dependencies",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsShow,
}

func init() {
	settingsCmd.AddCommand(settingsValidateCmd, settingsShowCmd)
	rootCmd.AddCommand(settingsCmd)
}

// loadSettingsArg loads the file named by args, falling back to --settings.
func loadSettingsArg(cmd *cobra.Command, args []string) (*settings.Settings, error) {
	path := getStringFlag(cmd, "settings")
	if len(args) > 0 {
		path = args[0]
	}
	return deps.LoadSettings(path)
}

func runSettingsValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	s, err := loadSettingsArg(cmd, args)
	if err != nil {
		var le *settings.ConfigLoadError
		if errors.As(err, &le) && len(le.Issues) > 0 {
			for _, issue := range le.Issues {
				_, _ = fmt.Fprintf(out, "  %s %s\n", symError(), issue)
			}
		}
		return err
	}

	if missing := s.MissingRoles(); len(missing) > 0 {
		for _, role := range missing {
			_, _ = fmt.Fprintf(out, "  %s %s: no path configured\n", symError(), role.Label())
		}
		return fmt.Errorf("settings %s: %d path role(s) unresolved", s.Source(), len(missing))
	}

	_, _ = fmt.Fprintf(out, "%s %s is valid\n", symSuccess(), s.Source())
	return nil
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	s, err := loadSettingsArg(cmd, args)
	if err != nil {
		return err
	}

	var pairs []kvPair
	for _, role := range settings.Roles() {
		p, ok := s.Path(role)
		if !ok {
			p = cliError.Render("(missing)")
		}
		pairs = append(pairs, kvPair{string(role), p})
	}
	body := []string{renderKeyValueLines(pairs)}

	doc, err := yaml.Marshal(map[string][]string{"dependencies": s.Dependencies()})
	if err != nil {
		return fmt.Errorf("encode dependencies: %w", err)
	}
	body = append(body, "", cliMuted.Render(string(doc)))

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderCard("Settings: "+s.Source(), body...))
	return nil
}
