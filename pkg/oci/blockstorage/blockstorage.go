/*
blockstorage exposes the block storage service family as tools: listing
block volumes and boot volumes.
*/
package blockstorage

import (
	"context"

	// Packages
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
	core "github.com/oracle/oci-go-sdk/v65/core"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// API is the subset of the vendor block storage client used by the tools
type API interface {
	ListVolumes(ctx context.Context, request core.ListVolumesRequest) (core.ListVolumesResponse, error)
	ListBootVolumes(ctx context.Context, request core.ListBootVolumesRequest) (core.ListBootVolumesResponse, error)
}

var _ API = (*core.BlockstorageClient)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const defaultLimit = 50

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the block storage tools
func NewTools(api API, cfg oci.Config) []tool.Tool {
	return []tool.Tool{
		&listVolumes{api: api, cfg: cfg},
		&listBootVolumes{api: api, cfg: cfg},
	}
}
