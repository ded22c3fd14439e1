package wizard

import (
	"slices"

	"github.com/frontend-incubator/incubator/internal/answers"
	"github.com/frontend-incubator/incubator/pkg/models"
)

// Question IDs, matching the answers field names.
const (
	IDProjectName     = "project_name"
	IDProjectVersion  = "project_version"
	IDLoosePreset     = "use_loose_preset"
	IDDependencies    = "dependencies"
	IDITCSS           = "use_itcss"
	IDConfigureRemote = "configure_remote_deploy"
	IDRemoteHost      = "remote_host"
	IDRemoteUser      = "remote_user"
	IDRemotePass      = "remote_pass"
)

func remoteEnabled(r *answers.Raw) bool {
	return r.ConfigureRemoteDeploy
}

// DefaultQuestions returns the project questions in prompt order, with
// defaults taken from def.
func DefaultQuestions(def answers.Raw) []Question {
	choices := models.DependencyChoices()
	opts := make([]Option, len(choices))
	for i, c := range choices {
		opts[i] = Option{
			Label:    c.Label,
			Value:    c.ID.String(),
			Desc:     c.Description,
			Selected: slices.Contains(def.Dependencies, c.ID.String()),
		}
	}

	return []Question{
		{
			ID:       IDProjectName,
			Type:     QuestionTypeInput,
			Title:    "What is the name of your project?",
			Default:  def.ProjectName,
			Validate: func(s string) error { return answers.ValidateField(IDProjectName, s) },
		},
		{
			ID:       IDProjectVersion,
			Type:     QuestionTypeInput,
			Title:    "What is the version of your project?",
			Default:  def.ProjectVersion,
			Validate: func(s string) error { return answers.ValidateField(IDProjectVersion, s) },
		},
		{
			ID:      IDLoosePreset,
			Type:    QuestionTypeConfirm,
			Title:   "Does Babel need to run in 'loose' mode?",
			Confirm: def.UseLoosePreset,
		},
		{
			ID:      IDDependencies,
			Type:    QuestionTypeMultiSelect,
			Title:   "Select the dependencies you want to install:",
			Options: opts,
		},
		{
			ID:      IDITCSS,
			Type:    QuestionTypeConfirm,
			Title:   "Do you want to use ITCSS?",
			Confirm: def.UseITCSS,
		},
		{
			ID:          IDConfigureRemote,
			Type:        QuestionTypeConfirm,
			Title:       "Would you like to configure FTP?",
			Description: "You can always do this later in config.json.",
			Confirm:     def.ConfigureRemoteDeploy,
		},
		{
			ID:        IDRemoteHost,
			Type:      QuestionTypeInput,
			Title:     "FTP host",
			Default:   def.RemoteHost,
			Condition: remoteEnabled,
			Validate:  func(s string) error { return answers.ValidateField(IDRemoteHost, s) },
		},
		{
			ID:        IDRemoteUser,
			Type:      QuestionTypeInput,
			Title:     "FTP username",
			Default:   def.RemoteUser,
			Condition: remoteEnabled,
		},
		{
			ID:        IDRemotePass,
			Type:      QuestionTypePassword,
			Title:     "FTP password",
			Condition: remoteEnabled,
		},
	}
}
