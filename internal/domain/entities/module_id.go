package entities

import (
	"fmt"
	"path"
	"strings"
)

// DefaultBranch is the branch installed when the user does not name one.
const DefaultBranch = "master"

// ModuleID identifies a dependency as "owner/name". The same identifier is
// used as the cache-path suffix and as the submodule-path suffix, so it must
// stay stable for the lifetime of an installation.
type ModuleID struct {
	Owner string
	Name  string
}

// ParseModuleID validates and splits an "owner/name" identifier.
func ParseModuleID(raw string) (ModuleID, error) {
	trimmed := strings.Trim(strings.TrimSpace(raw), "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ModuleID{}, fmt.Errorf("%w: %q (expected owner/name)", ErrInvalidModuleID, raw)
	}
	return ModuleID{Owner: parts[0], Name: parts[1]}, nil
}

// String returns the canonical "owner/name" form.
func (id ModuleID) String() string {
	return id.Owner + "/" + id.Name
}

// CloneURL builds the remote URL the cache clones from.
func (id ModuleID) CloneURL(protocol, host string) string {
	return fmt.Sprintf("%s://%s/%s.git", protocol, host, id.String())
}

// CachePath returns the cache directory for this module under the given root.
func (id ModuleID) CachePath(cacheRoot string) string {
	return path.Join(cacheRoot, id.Owner, id.Name)
}

// LocalPath returns the submodule path relative to the project root.
func (id ModuleID) LocalPath(modulesLocal string) string {
	return path.Join(modulesLocal, id.Owner, id.Name)
}
