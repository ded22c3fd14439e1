package resolve

import "slices"

// Transpiler presets appended to the dev dependencies.
const (
	LoosePreset = "babel-preset-es2015-loose"
	BasePreset  = "babel-preset-es2015"
)

// Scope selects how an install request saves its packages.
type Scope string

const (
	ScopeDev     Scope = "dev"
	ScopeRuntime Scope = "runtime"
)

// Manifest is the set of dependencies to install. Each list is
// deduplicated, keeping the first occurrence of every identifier.
type Manifest struct {
	Dev     []string `json:"devDependencies" yaml:"devDependencies"`
	Runtime []string `json:"runtimeDependencies" yaml:"runtimeDependencies"`
}

// InstallRequest is one invocation of the package installer.
type InstallRequest struct {
	Scope    Scope
	Packages []string
}

// Requests returns the installer invocations for the manifest: dev
// dependencies first, then runtime dependencies. Empty lists produce no
// request.
func (m *Manifest) Requests() []InstallRequest {
	var reqs []InstallRequest
	if len(m.Dev) > 0 {
		reqs = append(reqs, InstallRequest{Scope: ScopeDev, Packages: slices.Clone(m.Dev)})
	}
	if len(m.Runtime) > 0 {
		reqs = append(reqs, InstallRequest{Scope: ScopeRuntime, Packages: slices.Clone(m.Runtime)})
	}
	return reqs
}

// buildManifest assembles dev dependencies from the defaults plus the
// transpiler presets, and runtime dependencies from the user's selection.
func buildManifest(defaults []string, loose bool, selected []string) *Manifest {
	dev := slices.Clone(defaults)
	if loose {
		dev = append(dev, LoosePreset)
	}
	dev = append(dev, BasePreset)

	return &Manifest{
		Dev:     dedupe(dev),
		Runtime: dedupe(selected),
	}
}

// dedupe drops repeated and empty identifiers, keeping first-seen order.
// It never returns nil so that encoded manifests show empty lists.
func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
