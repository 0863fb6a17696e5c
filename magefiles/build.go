//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

const (
	binary   = "bin/gltfpack"
	mainPkg  = "./cmd/gltfpack"
	debugTag = "gltfpack_debug"
)

type Build mg.Namespace

// Builds the release binary.
func (Build) Release() error {
	_, err := executeCmd("go", withArgs("build", "-ldflags", versionLDFlags(), "-o", binary, mainPkg), withStream())
	return err
}

// Builds the debug binary with the -sd and -md options enabled.
func (Build) Debug() error {
	_, err := executeCmd("go", withArgs("build", "-tags", debugTag, "-o", binary+"-debug", mainPkg), withStream())
	return err
}

type Test mg.Namespace

// Runs the unit tests for both the release and the debug option tables.
func (Test) All() error {
	mg.SerialDeps(Test.Release, Test.Debug)
	return nil
}

// Runs the unit tests against the release option table.
func (Test) Release() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs the unit tests against the debug option table.
func (Test) Debug() error {
	_, err := executeCmd("go", withArgs("test", "-tags", debugTag, "./..."), withStream())
	return err
}
