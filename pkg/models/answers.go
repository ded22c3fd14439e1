package models

// RemoteDeploy holds the FTP credentials written into the generated project
// configuration. All fields are empty unless remote deployment was configured.
type RemoteDeploy struct {
	Host string `yaml:"host" json:"host"`
	User string `yaml:"user" json:"user"`
	Pass string `yaml:"pass" json:"pass"`
}

// AnswerSet is the finalized set of user-provided scaffolding choices.
type AnswerSet struct {
	ProjectName    string `yaml:"project_name" json:"project_name"`
	ProjectVersion string `yaml:"project_version" json:"project_version"`

	// UseLoosePreset selects the loose-mode transpiler preset.
	UseLoosePreset bool `yaml:"use_loose_preset" json:"use_loose_preset"`

	// SelectedDependencies is ordered by selection and holds no duplicates.
	SelectedDependencies []DependencyID `yaml:"selected_dependencies" json:"selected_dependencies"`

	// UseITCSS enables the seven-layer stylesheet architecture.
	UseITCSS bool `yaml:"use_itcss" json:"use_itcss"`

	ConfigureRemoteDeploy bool         `yaml:"configure_remote_deploy" json:"configure_remote_deploy"`
	Remote                RemoteDeploy `yaml:"remote" json:"remote"`
}

// DependencyNames returns the selected dependencies as npm package names,
// in selection order.
func (a AnswerSet) DependencyNames() []string {
	names := make([]string, len(a.SelectedDependencies))
	for i, d := range a.SelectedDependencies {
		names[i] = d.String()
	}
	return names
}

// RemoteCredentials returns the FTP triple to persist: the configured values
// when remote deployment is enabled, empty strings otherwise.
func (a AnswerSet) RemoteCredentials() RemoteDeploy {
	if !a.ConfigureRemoteDeploy {
		return RemoteDeploy{}
	}
	return a.Remote
}
