package settings

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrDependency is matched by every DependencyError.
var ErrDependency = errors.New("option dependency not satisfied")

// DependencyError reports an option used without the option it requires.
type DependencyError struct {
	Option   string
	Requires string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("Option %s is only supported when %s is set as well", e.Option, e.Requires)
}

// Is makes errors.Is(err, ErrDependency) succeed.
func (e *DependencyError) Is(target error) bool {
	return target == ErrDependency
}

// Validate checks cross-option constraints. It returns the first violation found.
func (s Settings) Validate() error {
	if s.TextureKTX2 {
		return nil
	}
	switch {
	case s.TextureScale < 1:
		return &DependencyError{Option: "-ts", Requires: "-tc"}
	case s.TexturePow2:
		return &DependencyError{Option: "-tp", Requires: "-tc"}
	case s.TextureFlipY:
		return &DependencyError{Option: "-tfy", Requires: "-tc"}
	}
	return nil
}

// YAML renders the settings for diagnostics.
func (s Settings) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
