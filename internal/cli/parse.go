// Package cli parses gltfpack command lines into a validated Invocation.
package cli

import (
	"errors"
	"strings"

	"github.com/Faultbox/gltfpack/internal/settings"
)

// Invocation is the result of parsing one command line.
type Invocation struct {
	Input  string
	Output string
	Report string

	Help       bool
	Test       bool
	TestInputs []string

	Settings settings.Settings

	// Warnings are non-fatal diagnostics such as deprecated flags.
	Warnings []string

	// ArgCount is the number of arguments parsed, excluding the program name.
	ArgCount int
}

// Action is what the caller should do with a parsed Invocation.
type Action int

const (
	ActionPack    Action = iota // run the pipeline once
	ActionVersion               // print the version only
	ActionBatch                 // run the pipeline for every test input
	ActionHelp                  // print the full usage text
	ActionUsage                 // print the short usage text and fail
)

// Parse processes args (without the program name) in a single left-to-right pass.
// Any returned error is a *UsageError.
func Parse(args []string) (*Invocation, error) {
	inv := &Invocation{
		Settings: settings.Default(),
		ArgCount: len(args),
	}

	for i := 0; i < len(args); {
		if n := inv.matchRule(args, i); n > 0 {
			i += n
			continue
		}

		arg := args[i]
		switch {
		case strings.HasPrefix(arg, "-"):
			if knownFlag(arg) {
				return nil, &UsageError{Kind: MissingOperand, Arg: arg}
			}
			return nil, &UsageError{Kind: UnrecognizedFlag, Arg: arg}
		case inv.Test:
			inv.TestInputs = append(inv.TestInputs, arg)
			i++
		default:
			return nil, &UsageError{Kind: PositionalInWrongContext, Arg: arg}
		}
	}

	if err := inv.Settings.Validate(); err != nil {
		var dep *settings.DependencyError
		var option string
		if errors.As(err, &dep) {
			option = dep.Option
		}
		return nil, &UsageError{Kind: DependencyViolation, Arg: option, Err: err}
	}

	return inv, nil
}

func (inv *Invocation) matchRule(args []string, i int) int {
	for _, r := range rules {
		if n := r.match(inv, args, i); n > 0 {
			return n
		}
	}
	return 0
}

// Action picks the post-parse action.
func (inv *Invocation) Action() Action {
	switch {
	case inv.Settings.Verbose > 0 && inv.ArgCount == 1:
		return ActionVersion
	case inv.Test:
		return ActionBatch
	case inv.Help:
		return ActionHelp
	case inv.CheckPaths() != nil:
		return ActionUsage
	}
	return ActionPack
}

// CheckPaths reports a missing input or output path.
func (inv *Invocation) CheckPaths() error {
	if inv.Input == "" {
		return &UsageError{Kind: MissingRequiredPath, Arg: "-i"}
	}
	if inv.Output == "" {
		return &UsageError{Kind: MissingRequiredPath, Arg: "-o"}
	}
	return nil
}
