package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/frontend-incubator/incubator/internal/answers"
	"github.com/frontend-incubator/incubator/internal/resolve"
	"github.com/frontend-incubator/incubator/internal/ui"
)

// Output formats accepted by `plan --format`.
var planFormats = []string{"text", "json", "yaml", "markdown"}

var planCmd = &cobra.Command{
	Use:   "plan [directory]",
	Short: "Show what `new` would generate, without writing anything",
	Long: `Resolve the artifact plan and dependency manifest for the given answers
and print them. Nothing is written and nothing is installed.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validatePlanFlags,
	RunE:    runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	addAnswerFlags(planCmd)
	planCmd.Flags().StringP("format", "f", "text", "Output format: "+strings.Join(planFormats, ", "))
}

// planOutput is the document printed by the json and yaml formats.
type planOutput struct {
	Plan     *resolve.Plan     `json:"plan" yaml:"plan"`
	Manifest *resolve.Manifest `json:"manifest" yaml:"manifest"`
}

func validatePlanFlags(cmd *cobra.Command, _ []string) error {
	format := getStringFlag(cmd, "format")
	if !slices.Contains(planFormats, format) {
		return fmt.Errorf("invalid --format value %q: must be one of: %s", format, strings.Join(planFormats, ", "))
	}
	return nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	dir, err := projectDir(args)
	if err != nil {
		return err
	}
	s, err := deps.LoadSettings(getStringFlag(cmd, "settings"))
	if err != nil {
		return err
	}
	set, err := answers.Normalize(answersFromFlags(cmd, dir))
	if err != nil {
		return err
	}

	plan, manifest, err := resolve.Resolve(s, set)
	if err != nil {
		return err
	}
	deps.Logger.Debug("plan resolved", "ops", len(plan.Ops))

	out := cmd.OutOrStdout()
	switch getStringFlag(cmd, "format") {
	case "json":
		data, err := json.MarshalIndent(planOutput{Plan: plan, Manifest: manifest}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(planOutput{Plan: plan, Manifest: manifest}); err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}
		return enc.Close()
	case "markdown":
		rendered, err := ui.RenderMarkdown(deps.Theme, planMarkdown(plan, manifest), 0)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	default:
		return writePlanText(out, plan, manifest)
	}
}

// writePlanText prints the plan as aligned columns followed by the manifest.
func writePlanText(w io.Writer, plan *resolve.Plan, m *resolve.Manifest) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SECTION\tKIND\tDESTINATION\tSOURCE")
	for _, op := range plan.Ops {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", op.Section, op.Kind, op.Destination, op.Source)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w)
	_, err := fmt.Fprintln(w, renderKeyValueLines([]kvPair{
		{"devDependencies", strings.Join(m.Dev, " ")},
		{"dependencies", strings.Join(m.Runtime, " ")},
	}))
	return err
}

// planMarkdown builds a markdown report of the plan, grouped by section.
func planMarkdown(plan *resolve.Plan, m *resolve.Manifest) string {
	var b strings.Builder
	b.WriteString("# Project plan\n")

	var sections []resolve.Section
	for _, op := range plan.Ops {
		if !slices.Contains(sections, op.Section) {
			sections = append(sections, op.Section)
		}
	}
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n## %s\n\n| Kind | Destination | Source |\n|---|---|---|\n", sec)
		for _, op := range plan.Section(sec) {
			src := op.Source
			if src == "" {
				src = "-"
			}
			fmt.Fprintf(&b, "| %s | `%s` | %s |\n", op.Kind, op.Destination, src)
		}
	}

	b.WriteString("\n## Dependencies\n\n")
	fmt.Fprintf(&b, "- **dev:** %s\n", markdownList(m.Dev))
	fmt.Fprintf(&b, "- **runtime:** %s\n", markdownList(m.Runtime))
	return b.String()
}

func markdownList(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "`" + s + "`"
	}
	return strings.Join(quoted, ", ")
}
