package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/frontend-incubator/incubator/internal/config"
	"github.com/frontend-incubator/incubator/internal/install"
	"github.com/frontend-incubator/incubator/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "incubator",
	Short: "Scaffold front-end projects with a ready-made build pipeline",
	Long: `incubator generates front-end projects: a directory layout driven by a
settings document, build configuration rendered from templates, a starter
script and stylesheet, and the npm dependencies the build needs.

Answers come from an interactive wizard on a terminal, or from flags.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: setupRuntime,
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("incubator %s\n", version.GetFullVersion()))

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default: ~/.incubator/config.yaml)")
	pf.String("settings", "", "Settings document describing the project layout (default: built-in)")
	pf.String("templates", "", "Template directory (default: built-in)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.BoolP("verbose", "v", false, "Verbose output (debug logs and package manager output)")
}

// setupRuntime loads the user config, binding the persistent flags over it,
// and replaces the logger and runner to match.
func setupRuntime(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		InitDependencies()
	}

	if path := getStringFlag(cmd, "config"); path != "" {
		deps.Config = config.NewManager(path)
	}
	bindings := map[string]string{
		config.KeySettings:  "settings",
		config.KeyTemplates: "templates",
		config.KeyLogLevel:  "log-level",
	}
	for key, flag := range bindings {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			if err := deps.Config.BindFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := deps.Config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	deps.UserConfig = cfg

	verbose := getBoolFlag(cmd, "verbose")
	deps.Logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, verbose)

	if r, ok := deps.Runner.(*install.ExecRunner); ok && r.Stdout == nil && r.Stderr == nil {
		if verbose {
			r.Stdout, r.Stderr = cmd.ErrOrStderr(), cmd.ErrOrStderr()
		} else {
			r.Stdout, r.Stderr = io.Discard, io.Discard
		}
	}

	deps.Logger.Debug("config loaded", "path", deps.Config.Path(), "npm", cfg.NPM)
	return nil
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
