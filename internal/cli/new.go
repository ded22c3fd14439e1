package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frontend-incubator/incubator/internal/answers"
	"github.com/frontend-incubator/incubator/internal/cli/wizard"
	"github.com/frontend-incubator/incubator/internal/core/project"
	"github.com/frontend-incubator/incubator/internal/ui"
)

var newCmd = &cobra.Command{
	Use:   "new [directory]",
	Short: "Generate a new front-end project",
	Long: `Generate a new front-end project.

Usage patterns:
  incubator new my-site          Generate into ./my-site/
  incubator new                  Generate into the current directory

On a terminal the questions are asked interactively. Otherwise, or with
--non-interactive, answers come from flags and defaults.

Examples:
  incubator new my-site --non-interactive --dependency jquery --dependency fastdom
  incubator new my-site --ftp-host ftp.example.com --ftp-user deploy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	addAnswerFlags(newCmd)
	newCmd.Flags().Bool("non-interactive", false, "Skip the interactive wizard; use flags and defaults")
	newCmd.Flags().Bool("skip-install", false, "Do not run npm install (unsupported: the build needs its dependencies)")
	newCmd.Flags().Bool("force", false, "Generate over an existing project")
}

// runNew gathers the answers, generates the project and prints a summary.
func runNew(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	dir, err := projectDir(args)
	if err != nil {
		return err
	}

	// Settings and templates are checked before any prompting.
	s, err := deps.LoadSettings(getStringFlag(cmd, "settings"))
	if err != nil {
		return err
	}
	templates, err := deps.TemplateFS(getStringFlag(cmd, "templates"))
	if err != nil {
		return err
	}

	skipInstall := deps.UserConfig.SkipInstall
	if cmd.Flags().Changed("skip-install") {
		skipInstall = getBoolFlag(cmd, "skip-install")
	}
	if skipInstall {
		_, _ = fmt.Fprintf(out, "%s Skipping the install is not supported. Run `npm install` in %s before building.\n",
			symWarning(), dir)
	}

	raw := answersFromFlags(cmd, dir)
	if !getBoolFlag(cmd, "non-interactive") && !deps.Headless.IsHeadless() {
		result, err := wizard.Run(wizard.DefaultQuestions(raw), raw, deps.Theme)
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Project generation cancelled.")
				return nil
			}
			return fmt.Errorf("wizard failed: %w", err)
		}
		raw = *result
	}

	set, err := answers.Normalize(raw)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	progress := ui.NewProgress(deps.Theme, deps.Headless, cmd.ErrOrStderr())
	spinner := progress.Spinner("Generating " + set.ProjectName)
	var bar ui.ProgressBar
	onInstall := func(done, total int) {
		if bar == nil {
			spinner.Stop()
			bar = progress.Start("Installing dependencies", total)
		}
		if done > 0 {
			bar.Increment(1)
		}
	}

	result, err := deps.NewInitializer(templates, onInstall).Init(ctx, project.InitOptions{
		ProjectRoot: dir,
		Settings:    s,
		Answers:     set,
		SkipInstall: skipInstall,
		Force:       getBoolFlag(cmd, "force"),
	})
	if bar != nil {
		bar.Done()
	}
	spinner.Stop()
	if err != nil {
		if errors.Is(err, project.ErrProjectExists) {
			return fmt.Errorf("%w (use --force to generate anyway)", err)
		}
		return fmt.Errorf("project generation failed: %w", err)
	}

	installed := "skipped"
	if result.Installed {
		installed = "done"
	}
	details := []string{
		renderKeyValueLines([]kvPair{
			{"Location", result.Root},
			{"Directories", fmt.Sprintf("%d created", len(result.CreatedDirs))},
			{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
			{"Dependencies", fmt.Sprintf("%d dev, %d runtime", len(result.Manifest.Dev), len(result.Manifest.Runtime))},
			{"Install", installed},
		}),
	}
	if len(set.SelectedDependencies) > 0 {
		details = append(details, cliMuted.Render("Runtime: "+strings.Join(set.DependencyNames(), ", ")))
	}
	for _, w := range result.Warnings {
		details = append(details, cliWarn.Render("Warning: "+w))
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Project "+set.ProjectName+" created", details...))
	return nil
}
