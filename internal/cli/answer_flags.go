package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/frontend-incubator/incubator/internal/answers"
)

// addAnswerFlags registers the flags that answer the project questions.
func addAnswerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "Project name (default: directory name)")
	f.String("version", "", "Project version (default: 1.0.0)")
	f.Bool("loose", true, "Run Babel in loose mode")
	f.StringSlice("dependency", nil, "Runtime dependency to install (repeatable; see `incubator choices`)")
	f.Bool("itcss", true, "Lay out stylesheets with ITCSS")
	f.String("ftp-host", "", "FTP host for remote deploy (any --ftp-* flag enables FTP)")
	f.String("ftp-user", "", "FTP username")
	f.String("ftp-pass", "", "FTP password")
}

// projectDir resolves the target directory from the optional positional
// argument, defaulting to the working directory.
func projectDir(args []string) (string, error) {
	if len(args) == 0 || args[0] == "." {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return cwd, nil
	}
	abs, err := filepath.Abs(args[0])
	if err != nil {
		return "", fmt.Errorf("resolve project path %q: %w", args[0], err)
	}
	return abs, nil
}

// answersFromFlags starts from the defaults for dir and applies every flag
// the user set.
func answersFromFlags(cmd *cobra.Command, dir string) answers.Raw {
	raw := answers.Defaults(dir)
	f := cmd.Flags()

	if f.Changed("name") {
		raw.ProjectName = getStringFlag(cmd, "name")
	}
	if f.Changed("version") {
		raw.ProjectVersion = getStringFlag(cmd, "version")
	}
	if f.Changed("loose") {
		raw.UseLoosePreset = getBoolFlag(cmd, "loose")
	}
	if f.Changed("dependency") {
		deps, err := f.GetStringSlice("dependency")
		if err == nil {
			raw.Dependencies = deps
		}
	}
	if f.Changed("itcss") {
		raw.UseITCSS = getBoolFlag(cmd, "itcss")
	}
	// Any FTP flag turns remote deploy on; Normalize rejects a missing host.
	if f.Changed("ftp-host") || f.Changed("ftp-user") || f.Changed("ftp-pass") {
		raw.ConfigureRemoteDeploy = true
		raw.RemoteHost = getStringFlag(cmd, "ftp-host")
		raw.RemoteUser = getStringFlag(cmd, "ftp-user")
		raw.RemotePass = getStringFlag(cmd, "ftp-pass")
	}
	return raw
}
