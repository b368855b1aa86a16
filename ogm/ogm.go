// Package ogm holds the owner/group/mode change specifications that the
// rest of chogm consumes. Specs are parsed from the owner:group:mode
// command-line form and fully resolved (including "-" inheritance) before
// any worker ever sees them.
package ogm

import (
	"strings"

	"github.com/pkg/errors"
)

// Spec names the owner, group, and mode to apply to one class of
// file-system entry. An empty field leaves that attribute unchanged.
type Spec struct {
	Owner string
	Group string
	Mode  string
}

// Empty reports whether the spec requests no changes at all, i.e. it was
// given as "::".
func (s Spec) Empty() bool {
	return s == Spec{}
}

// ParseSpec parses an owner:group:mode triple. All three elements must be
// present; any of them may be empty.
func ParseSpec(raw string) (Spec, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return Spec{}, errors.Errorf("invalid specification %q: expected owner:group:mode", raw)
	}

	return Spec{Owner: parts[0], Group: parts[1], Mode: parts[2]}, nil
}

// ResolveInheritance returns the directory spec with any literal "-" owner
// or group replaced by the corresponding value from the file spec. Mode
// never inherits.
func ResolveInheritance(files, dirs Spec) Spec {
	if dirs.Owner == "-" {
		dirs.Owner = files.Owner
	}

	if dirs.Group == "-" {
		dirs.Group = files.Group
	}

	return dirs
}
