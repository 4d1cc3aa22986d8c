package main

import (
	"fmt"
	"os"
	"text/tabwriter"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolsCmd struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ToolsCmd) Run(globals *Globals) error {
	toolkit, err := newToolkit(globals)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	for _, tool := range toolkit.Tools() {
		fmt.Fprintf(w, "%s\t%s\n", tool.Name(), tool.Description())
	}
	return w.Flush()
}
