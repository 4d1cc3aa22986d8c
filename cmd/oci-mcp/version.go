package main

import (
	"fmt"
	"os"

	// Packages
	version "github.com/mutablelogic/go-oci-mcp/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCmd struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *VersionCmd) Run(_ *Globals) error {
	_, err := fmt.Fprintln(os.Stdout, string(version.JSON(execName())))
	return err
}
