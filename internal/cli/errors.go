package cli

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a UsageError.
type ErrorKind int

const (
	UnrecognizedFlag ErrorKind = iota + 1
	MissingOperand
	PositionalInWrongContext
	MissingRequiredPath
	DependencyViolation
)

var kindNames = map[ErrorKind]string{
	UnrecognizedFlag:         "unrecognized flag",
	MissingOperand:           "missing operand",
	PositionalInWrongContext: "positional in wrong context",
	MissingRequiredPath:      "missing required path",
	DependencyViolation:      "dependency violation",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels matched through errors.Is on a *UsageError.
var (
	ErrUnrecognizedFlag         = errors.New("unrecognized option")
	ErrMissingOperand           = errors.New("missing operand")
	ErrPositionalInWrongContext = errors.New("positional argument outside -test")
	ErrMissingRequiredPath      = errors.New("missing required path")
	ErrDependencyViolation      = errors.New("dependency violation")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnrecognizedFlag:
		return ErrUnrecognizedFlag
	case MissingOperand:
		return ErrMissingOperand
	case PositionalInWrongContext:
		return ErrPositionalInWrongContext
	case MissingRequiredPath:
		return ErrMissingRequiredPath
	case DependencyViolation:
		return ErrDependencyViolation
	}
	return nil
}

// UsageError is a terminal command-line failure. The process exits with status 1.
type UsageError struct {
	Kind ErrorKind
	Arg  string // offending token or option
	Err  error  // underlying cause, if any
}

func (e *UsageError) Error() string {
	switch e.Kind {
	case UnrecognizedFlag, MissingOperand:
		return fmt.Sprintf("Unrecognized option %s", e.Arg)
	case PositionalInWrongContext:
		return fmt.Sprintf("Expected option, got %s instead", e.Arg)
	case MissingRequiredPath:
		return fmt.Sprintf("Missing required option %s", e.Arg)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

// Unwrap exposes the kind sentinel and the cause. A MissingOperand error also
// matches ErrUnrecognizedFlag, since the flag did not match any rule.
func (e *UsageError) Unwrap() []error {
	errs := []error{e.Kind.sentinel()}
	if e.Kind == MissingOperand {
		errs = append(errs, ErrUnrecognizedFlag)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
