//go:build mage

package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Scan builds the CLI and runs a scan on the given image.
func Scan(image string) error {
	mg.Deps(Build)
	return runCLI("scan", image)
}

// History builds the CLI and lists the scan history.
func History() error {
	mg.Deps(Build)
	return runCLI("history", "list")
}

// runCLI invokes the built cardscan binary with the given arguments.
func runCLI(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
