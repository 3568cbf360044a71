//go:build mage

package main

import "github.com/magefile/mage/mg"

// Import builds the CLI and imports contacts from a CSV file.
func Import(file string) error {
	mg.Deps(Build)
	return runCLI("contacts", "import", file)
}

// Export builds the CLI and exports all history contacts as CSV.
func Export() error {
	mg.Deps(Build)
	return runCLI("contacts", "export")
}
