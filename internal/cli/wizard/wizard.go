package wizard

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/frontend-incubator/incubator/internal/answers"
	"github.com/frontend-incubator/incubator/internal/ui"
)

// Run asks each question and returns the collected answers, starting from
// defaults. Each question runs as its own huh.Form to avoid the huh v0.8.x
// YOffset scroll bug that occurs when multiple groups share one viewport.
func Run(questions []Question, defaults answers.Raw, theme *ui.Theme) (*answers.Raw, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := defaults
	result.Dependencies = append([]string(nil), defaults.Dependencies...)
	huhTheme := newWizardTheme(theme)

	for i := range questions {
		q := &questions[i]

		if q.Condition != nil && !q.Condition(&result) {
			continue
		}

		g, commit := buildQuestionGroup(q, &result)
		form := huh.NewForm(g).
			WithTheme(huhTheme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
		commit()
	}

	return &result, nil
}

// RunWithDefaults runs the default questions for a project in dir.
func RunWithDefaults(dir string, theme *ui.Theme) (*answers.Raw, error) {
	def := answers.Defaults(dir)
	return Run(DefaultQuestions(def), def, theme)
}

// buildQuestionGroup creates a huh.Group for a single question. The returned
// commit func stores the field value into result once the form completes.
func buildQuestionGroup(q *Question, result *answers.Raw) (*huh.Group, func()) {
	var (
		field  huh.Field
		commit func()
	)

	switch q.Type {
	case QuestionTypeConfirm:
		field, commit = buildConfirmField(q, result)
	case QuestionTypeMultiSelect:
		field, commit = buildMultiSelectField(q, result)
	default:
		field, commit = buildInputField(q, result)
	}

	g := huh.NewGroup(field)

	if q.Condition != nil {
		cond := q.Condition
		g = g.WithHideFunc(func() bool {
			return !cond(result)
		})
	}

	return g, commit
}

// buildInputField creates a huh.Input for input and password questions.
func buildInputField(q *Question, result *answers.Raw) (*huh.Input, func()) {
	value := q.Default

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if q.Type == QuestionTypePassword {
		inp = inp.EchoMode(huh.EchoModePassword)
	} else if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	check := q.Validate
	defVal := q.Default
	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" {
			v = defVal
		}
		if check != nil {
			return check(v)
		}
		return nil
	})

	id := q.ID
	return inp, func() {
		v := strings.TrimSpace(value)
		if v == "" {
			v = defVal
		}
		saveAnswer(id, v, result)
	}
}

// buildConfirmField creates a huh.Confirm for a yes/no question.
func buildConfirmField(q *Question, result *answers.Raw) (*huh.Confirm, func()) {
	value := q.Confirm

	c := huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	id := q.ID
	return c, func() { saveAnswer(id, value, result) }
}

// buildMultiSelectField creates a huh.MultiSelect over the question options.
// The stored answer lists values in the order they were picked, not in
// option order.
func buildMultiSelectField(q *Question, result *answers.Raw) (*huh.MultiSelect[string], func()) {
	var values []string
	order := &selectionOrder{}

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		label := opt.Label
		if opt.Desc != "" {
			label = fmt.Sprintf("%s - %s", opt.Label, opt.Desc)
		}
		opts[i] = huh.NewOption(label, opt.Value).Selected(opt.Selected)
		if opt.Selected {
			order.picked = append(order.picked, opt.Value)
		}
	}

	ms := huh.NewMultiSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&values).
		Validate(func(v []string) error {
			order.observe(v)
			return nil
		})

	id := q.ID
	return ms, func() { saveAnswer(id, order.final(values), result) }
}

// selectionOrder tracks the order values were picked in a multi-select.
// huh reports the current selection in option order, so each observed
// selection is diffed against the last one.
type selectionOrder struct {
	picked []string
}

func (o *selectionOrder) observe(current []string) {
	o.picked = slices.DeleteFunc(o.picked, func(v string) bool {
		return !slices.Contains(current, v)
	})
	for _, v := range current {
		if !slices.Contains(o.picked, v) {
			o.picked = append(o.picked, v)
		}
	}
}

// final returns the submitted values in pick order.
func (o *selectionOrder) final(submitted []string) []string {
	o.observe(submitted)
	return slices.Clone(o.picked)
}

// saveAnswer stores an answer in the result. Values of the wrong type for
// the field are ignored.
func saveAnswer(id string, value any, result *answers.Raw) {
	switch v := value.(type) {
	case string:
		switch id {
		case IDProjectName:
			result.ProjectName = v
		case IDProjectVersion:
			result.ProjectVersion = v
		case IDRemoteHost:
			result.RemoteHost = v
		case IDRemoteUser:
			result.RemoteUser = v
		case IDRemotePass:
			result.RemotePass = v
		}
	case bool:
		switch id {
		case IDLoosePreset:
			result.UseLoosePreset = v
		case IDITCSS:
			result.UseITCSS = v
		case IDConfigureRemote:
			result.ConfigureRemoteDeploy = v
		}
	case []string:
		if id == IDDependencies {
			result.Dependencies = append([]string(nil), v...)
		}
	}
}

// newWizardTheme creates a huh.Theme from the CLI palette.
func newWizardTheme(theme *ui.Theme) *huh.Theme {
	t := huh.ThemeBase()
	if theme == nil {
		theme = ui.NewTheme()
	}
	if theme.NoColor {
		return t
	}

	c := theme.Colors
	primary := lipgloss.AdaptiveColor{Light: "#A3336B", Dark: c.Primary}
	secondary := lipgloss.AdaptiveColor{Light: "#8E3B62", Dark: c.Secondary}
	green := lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: c.Success}
	red := lipgloss.AdaptiveColor{Light: "#C62828", Dark: c.Error}
	muted := lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: c.Muted}

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	return t
}
