package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

const (
	activatePrefix = "source "
	activateSuffix = "/bin/activate"
)

// Activation tells a shell how to enter an environment: either by conda
// environment name, or by sourcing the activate script of a relocated pack.
// Callers persist and pass around its String form without inspecting it.
type Activation struct {
	name string
	path string
}

// ByName returns a directive activating a named environment.
func ByName(name string) Activation {
	return Activation{name: name}
}

// ByPath returns a directive activating the environment rooted at dir.
func ByPath(dir string) Activation {
	return Activation{path: strings.TrimSuffix(dir, "/")}
}

// ParseActivation reads a persisted directive.
func ParseActivation(s string) (Activation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Activation{}, zerr.Wrap(ErrInvalidActivation, "'"+s+"'")
	}
	if strings.HasPrefix(s, activatePrefix) {
		dir := strings.TrimPrefix(s, activatePrefix)
		if !strings.HasSuffix(dir, activateSuffix) {
			return Activation{}, zerr.Wrap(ErrInvalidActivation, "'"+s+"'")
		}
		dir = strings.TrimSuffix(dir, activateSuffix)
		if dir == "" {
			return Activation{}, zerr.Wrap(ErrInvalidActivation, "'"+s+"'")
		}
		return ByPath(dir), nil
	}
	if strings.ContainsAny(s, " \t") {
		return Activation{}, zerr.Wrap(ErrInvalidActivation, "'"+s+"'")
	}
	return ByName(s), nil
}

// String renders the directive as persisted and as run by a shell when it
// activates by path.
func (a Activation) String() string {
	if a.path != "" {
		return activatePrefix + a.path + activateSuffix
	}
	return a.name
}

// IsZero reports whether the directive is empty.
func (a Activation) IsZero() bool {
	return a.name == "" && a.path == ""
}

// IsPath reports whether the environment is activated by path.
func (a Activation) IsPath() bool {
	return a.path != ""
}

// Name returns the environment name, empty for path activations.
func (a Activation) Name() string {
	return a.name
}

// Path returns the environment root, empty for named environments.
func (a Activation) Path() string {
	return a.path
}

// TargetFlag returns the conda flag selecting this environment.
func (a Activation) TargetFlag() string {
	if a.path != "" {
		return "--prefix " + a.path
	}
	return "--name " + a.name
}
