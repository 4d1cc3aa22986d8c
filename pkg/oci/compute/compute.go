/*
compute exposes the compute service family as tools: listing and fetching
instances, performing instance power actions, and listing shapes.
*/
package compute

import (
	"context"

	// Packages
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
	core "github.com/oracle/oci-go-sdk/v65/core"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// API is the subset of the vendor compute client used by the tools.
// The real client satisfies it; tests substitute a mock.
type API interface {
	ListInstances(ctx context.Context, request core.ListInstancesRequest) (core.ListInstancesResponse, error)
	GetInstance(ctx context.Context, request core.GetInstanceRequest) (core.GetInstanceResponse, error)
	InstanceAction(ctx context.Context, request core.InstanceActionRequest) (core.InstanceActionResponse, error)
	ListShapes(ctx context.Context, request core.ListShapesRequest) (core.ListShapesResponse, error)
}

var _ API = (*core.ComputeClient)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const defaultLimit = 50

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the compute tools. The api may be nil when the client
// failed to initialize, in which case every tool reports an unavailable
// error at call time.
func NewTools(api API, cfg oci.Config) []tool.Tool {
	return []tool.Tool{
		&listInstances{api: api, cfg: cfg},
		&getInstance{api: api},
		&instanceAction{api: api},
		&listShapes{api: api, cfg: cfg},
	}
}
