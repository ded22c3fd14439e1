package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/frontend-incubator/incubator/internal/settings"
)

// ErrUnresolvedPathRole indicates the settings lack a path role the
// resolution algorithm requires.
var ErrUnresolvedPathRole = errors.New("resolve: unresolved path role")

// UnresolvedPathRoleError lists every role that could not be resolved.
type UnresolvedPathRoleError struct {
	Roles []settings.Role
}

// Error implements the error interface.
func (e *UnresolvedPathRoleError) Error() string {
	names := make([]string, len(e.Roles))
	for i, r := range e.Roles {
		names[i] = fmt.Sprintf("%s (%s)", r.Label(), string(r))
	}
	return fmt.Sprintf("resolve: settings do not define %s", strings.Join(names, ", "))
}

// Is makes UnresolvedPathRoleError match ErrUnresolvedPathRole.
func (e *UnresolvedPathRoleError) Is(target error) bool {
	return target == ErrUnresolvedPathRole
}
