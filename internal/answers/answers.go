package answers

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/unicode/norm"

	"github.com/frontend-incubator/incubator/pkg/models"
)

// DefaultVersion is offered when the user does not supply a project version.
const DefaultVersion = "1.0.0"

// Raw mirrors the prompt fields before validation.
type Raw struct {
	ProjectName           string
	ProjectVersion        string
	UseLoosePreset        bool
	Dependencies          []string
	UseITCSS              bool
	ConfigureRemoteDeploy bool
	RemoteHost            string
	RemoteUser            string
	RemotePass            string
}

// npm package names: lowercase, URL-safe, optionally scoped.
var packageNamePattern = regexp.MustCompile(`^(@[a-z0-9][a-z0-9._~-]*/)?[a-z0-9][a-z0-9._~-]*$`)

const maxPackageNameLength = 214

// Defaults returns the answers offered when scaffolding into dir.
func Defaults(dir string) Raw {
	name := filepath.Base(filepath.Clean(dir))
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "my-project"
	}

	deps := models.DefaultDependencies()
	names := make([]string, len(deps))
	for i, d := range deps {
		names[i] = d.String()
	}

	return Raw{
		ProjectName:    name,
		ProjectVersion: DefaultVersion,
		UseLoosePreset: true,
		Dependencies:   names,
		UseITCSS:       true,
	}
}

// Normalize validates raw answers and returns the finalized AnswerSet.
// Remote-deploy credentials are cleared when remote deploy is not configured,
// and the dependency selection keeps its first-seen order without duplicates.
// All problems are reported together as *ValidationErrors.
func Normalize(raw Raw) (models.AnswerSet, error) {
	var errs []FieldError

	name := norm.NFC.String(strings.TrimSpace(raw.ProjectName))
	errs = append(errs, validateName(name)...)

	version := strings.TrimSpace(raw.ProjectVersion)
	if version == "" {
		version = DefaultVersion
	}
	if v, err := semver.StrictNewVersion(version); err != nil {
		errs = append(errs, FieldError{
			Field:   "project_version",
			Message: "must be a semantic version such as 1.0.0",
			Value:   version,
		})
	} else {
		version = v.String()
	}

	selected, depErrs := parseDependencies(raw.Dependencies)
	errs = append(errs, depErrs...)

	set := models.AnswerSet{
		ProjectName:           name,
		ProjectVersion:        version,
		UseLoosePreset:        raw.UseLoosePreset,
		SelectedDependencies:  selected,
		UseITCSS:              raw.UseITCSS,
		ConfigureRemoteDeploy: raw.ConfigureRemoteDeploy,
	}
	if raw.ConfigureRemoteDeploy {
		set.Remote = models.RemoteDeploy{
			Host: strings.TrimSpace(raw.RemoteHost),
			User: strings.TrimSpace(raw.RemoteUser),
			Pass: raw.RemotePass,
		}
		if set.Remote.Host == "" {
			errs = append(errs, FieldError{
				Field:   "remote_host",
				Message: "required when remote deploy is configured",
			})
		}
	}

	if len(errs) > 0 {
		return models.AnswerSet{}, &ValidationErrors{Errors: errs}
	}
	return set, nil
}

func validateName(name string) []FieldError {
	switch {
	case name == "":
		return []FieldError{{Field: "project_name", Message: "required"}}
	case len(name) > maxPackageNameLength:
		return []FieldError{{Field: "project_name", Message: "must be at most 214 characters", Value: len(name)}}
	case !packageNamePattern.MatchString(name):
		return []FieldError{{
			Field:   "project_name",
			Message: "must be a valid npm package name (lowercase letters, digits, '-', '.', '_', '~')",
			Value:   name,
		}}
	}
	return nil
}

func parseDependencies(raw []string) ([]models.DependencyID, []FieldError) {
	var (
		ids  []models.DependencyID
		errs []FieldError
	)
	seen := make(map[models.DependencyID]bool, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		id, err := models.ParseDependencyID(r)
		if err != nil {
			errs = append(errs, FieldError{Field: "dependencies", Message: "unknown dependency", Value: r})
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, errs
}

// ValidateField checks a single free-text answer the way Normalize would,
// so prompts can reject input before moving on. Fields without free-text
// rules always pass.
func ValidateField(field, value string) error {
	var errs []FieldError
	switch field {
	case "project_name":
		errs = validateName(norm.NFC.String(strings.TrimSpace(value)))
	case "project_version":
		v := strings.TrimSpace(value)
		if v == "" {
			return nil
		}
		if _, err := semver.StrictNewVersion(v); err != nil {
			errs = []FieldError{{Field: field, Message: "must be a semantic version such as 1.0.0", Value: v}}
		}
	case "remote_host":
		if strings.TrimSpace(value) == "" {
			errs = []FieldError{{Field: field, Message: "required when remote deploy is configured"}}
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
