//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the full test suite with the race detector.
func (Run) Tests() error {
	if _, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Renders a demo frame with the orbitcam tool.
func (Run) Demo() error {
	fmt.Println("Rendering demo frame...")
	if _, err := executeCmd("go", withArgs("run", "./cmd/orbitcam", "-v"), withStream()); err != nil {
		return err
	}
	return nil
}
