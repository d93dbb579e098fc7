package main

import "fmt"

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

// VersionCommand prints the program version.
type VersionCommand struct{}

// Execute prints the version.
func (c *VersionCommand) Execute(args []string) error {
	_, err := fmt.Fprintf(stdout, "keypadchain %s\n", version)
	return err
}
