package settings

import "strings"

// Role is a named semantic location in the scaffolded project. Its value is
// the dotted key of the role inside the settings path tree.
type Role string

const (
	RoleScript            Role = "src.asset.javascript"
	RoleImage             Role = "src.asset.image"
	RoleFont              Role = "src.asset.font"
	RoleStylesheet        Role = "src.asset.scss"
	RolePrototypeTemplate Role = "src.prototype.template"
	RolePrototypeData     Role = "src.prototype.data"
	RolePrototypeWebroot  Role = "src.prototype.webroot"
	RolePatternLibrary    Role = "src.patternLibrary.root"
)

var roleLabels = map[Role]string{
	RoleScript:            "script-asset directory",
	RoleImage:             "image-asset directory",
	RoleFont:              "font-asset directory",
	RoleStylesheet:        "stylesheet directory",
	RolePrototypeTemplate: "prototype-template directory",
	RolePrototypeData:     "prototype-data directory",
	RolePrototypeWebroot:  "prototype-webroot directory",
	RolePatternLibrary:    "pattern-library root",
}

// Roles returns every directory role a project layout needs, in the order
// they are laid out.
func Roles() []Role {
	return []Role{
		RoleScript,
		RoleImage,
		RoleFont,
		RoleStylesheet,
		RolePrototypeTemplate,
		RolePrototypeData,
		RolePrototypeWebroot,
		RolePatternLibrary,
	}
}

// Label returns a human-readable name for the role.
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}

// keys splits the role into its path-tree segments.
func (r Role) keys() []string {
	return strings.Split(string(r), ".")
}
