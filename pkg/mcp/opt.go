package mcp

import (
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*Server) error

/////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func (server *Server) apply(opts ...Opt) error {
	for _, opt := range opts {
		if err := opt(server); err != nil {
			return err
		}
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithToolkit sets the toolkit which serves tools/list and tools/call
func WithToolkit(v *tool.Toolkit) Opt {
	return func(server *Server) error {
		server.toolkit = v
		return nil
	}
}
