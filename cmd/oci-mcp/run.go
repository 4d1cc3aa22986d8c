package main

import (
	"fmt"
	"os"

	// Packages
	mcp "github.com/mutablelogic/go-oci-mcp/pkg/mcp"
	version "github.com/mutablelogic/go-oci-mcp/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type RunCmd struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *RunCmd) Run(globals *Globals) error {
	toolkit, err := newToolkit(globals)
	if err != nil {
		return err
	}

	server, err := mcp.New(execName(), version.Version(), mcp.WithToolkit(toolkit))
	if err != nil {
		return err
	}

	// Serve requests on stdin/stdout until EOF or interrupt
	if globals.Debug {
		fmt.Fprintln(os.Stderr, "Serving", len(toolkit.Tools()), "tools on stdin/stdout")
	}
	return server.RunStdio(globals.ctx, os.Stdin, os.Stdout)
}
