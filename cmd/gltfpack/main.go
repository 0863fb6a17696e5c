// gltfpack optimizes glTF scenes; this binary validates options and dispatches
// to the packing pipeline.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/gltfpack/internal/cli"
	"github.com/Faultbox/gltfpack/internal/logger"
	"github.com/Faultbox/gltfpack/internal/pipeline"
	"github.com/Faultbox/gltfpack/internal/settings"
)

// dumpSettings renders settings for the -vv debug dump.
var dumpSettings = settings.Settings.YAML

func main() {
	packer := pipeline.NewGLTFPacker("gltfpack " + cli.Version)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, packer))
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout, stderr io.Writer, packer pipeline.Packer) int {
	inv, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := logger.Init(logger.LevelForVerbosity(inv.Settings.Verbose), stderr); err != nil {
		fmt.Fprintf(stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	for _, w := range inv.Warnings {
		logger.Warn(w)
	}

	switch inv.Action() {
	case cli.ActionVersion:
		cli.PrintVersion(stdout)
		return 0

	case cli.ActionBatch:
		failed := pipeline.RunBatch(packer, inv.TestInputs, inv.Settings, stdout)
		logger.Info("test run finished", zap.Int("inputs", len(inv.TestInputs)), zap.Int("failed", failed))
		return 0

	case cli.ActionHelp:
		cli.PrintUsage(stderr, true)
		return 0

	case cli.ActionUsage:
		cli.PrintUsage(stderr, false)
		return 1
	}

	if inv.Settings.Verbose > 1 {
		if dump, err := dumpSettings(inv.Settings); err != nil {
			logger.Warn("cannot dump settings", zap.Error(err))
		} else {
			logger.Sugar.Debugf("settings:\n%s", dump)
		}
	}

	if err := packer.Pack(inv.Input, inv.Output, inv.Report, inv.Settings); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return pipeline.ExitCode(err)
	}
	return 0
}
