/*
Package network exposes OCI virtual networking operations (VCNs and subnets)
as tools.
*/
package network

import (
	"context"

	// Packages
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
	core "github.com/oracle/oci-go-sdk/v65/core"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// API is the subset of the virtual network service used by the tools
type API interface {
	ListVcns(ctx context.Context, request core.ListVcnsRequest) (core.ListVcnsResponse, error)
	ListSubnets(ctx context.Context, request core.ListSubnetsRequest) (core.ListSubnetsResponse, error)
	CreateVcn(ctx context.Context, request core.CreateVcnRequest) (core.CreateVcnResponse, error)
}

var _ API = (*core.VirtualNetworkClient)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultLimit = 50
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the virtual networking tools, bound to the given API
// and configuration. The api may be nil, in which case the tools report
// the service as unavailable when called.
func NewTools(api API, cfg oci.Config) []tool.Tool {
	return []tool.Tool{
		&listVcns{api, cfg},
		&listSubnets{api, cfg},
		&createVcn{api, cfg},
	}
}
