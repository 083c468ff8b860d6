//go:build mage

// Package main provides build targets for the loom project using Mage.
//
// Usage:
//
//	mage build          Compile loomctl binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run unit tests only
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install loomctl to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "loomctl"
	binaryDir  = "bin"
	cmdDir     = "./cmd/loomctl"
)

// Build compiles the loomctl binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
