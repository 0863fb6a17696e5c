// Package pipeline runs packing jobs with a finalized Settings value.
package pipeline

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/gltfpack/internal/logger"
	"github.com/Faultbox/gltfpack/internal/settings"
)

// Packer processes one input. Output and report may be empty; an empty output
// means the input is only loaded and checked.
type Packer interface {
	Pack(input, output, report string, s settings.Settings) error
}

// PackerFunc adapts a function to the Packer interface.
type PackerFunc func(input, output, report string, s settings.Settings) error

// Pack calls f.
func (f PackerFunc) Pack(input, output, report string, s settings.Settings) error {
	return f(input, output, report, s)
}

// RunBatch packs every input in order without writing output, printing each path
// to out first. Failures are logged and do not stop the batch. It returns the
// number of failed inputs.
func RunBatch(p Packer, inputs []string, s settings.Settings, out io.Writer) int {
	failed := 0
	for _, path := range inputs {
		fmt.Fprintln(out, path)

		if err := p.Pack(path, "", "", s); err != nil {
			failed++
			logger.Warn("test input failed", zap.String("input", path), zap.Error(err))
		}
	}
	return failed
}

// ExitCode maps a Packer error to a process status. Errors carrying their own
// code through an ExitCode() method keep it.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		if code := coder.ExitCode(); code != 0 {
			return code
		}
	}
	return 1
}
