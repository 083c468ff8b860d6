//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test groups test targets.
type Test mg.Namespace

// All runs the full test suite.
func (Test) All() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Unit runs the unit tests without the race detector.
func (Test) Unit() error {
	return sh.RunV(binGo, "test", "./pkg/...", "./internal/...")
}

// Race runs the full test suite under the race detector.
func (Test) Race() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}
