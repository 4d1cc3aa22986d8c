/*
Package adb exposes OCI Autonomous Database operations as tools.
*/
package adb

import (
	"context"

	// Packages
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
	database "github.com/oracle/oci-go-sdk/v65/database"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// API is the subset of the database service used by the tools
type API interface {
	ListAutonomousDatabases(ctx context.Context, request database.ListAutonomousDatabasesRequest) (database.ListAutonomousDatabasesResponse, error)
	GetAutonomousDatabase(ctx context.Context, request database.GetAutonomousDatabaseRequest) (database.GetAutonomousDatabaseResponse, error)
	StartAutonomousDatabase(ctx context.Context, request database.StartAutonomousDatabaseRequest) (database.StartAutonomousDatabaseResponse, error)
	StopAutonomousDatabase(ctx context.Context, request database.StopAutonomousDatabaseRequest) (database.StopAutonomousDatabaseResponse, error)
}

var _ API = (*database.DatabaseClient)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultLimit = 50
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the Autonomous Database tools, bound to the given API
// and configuration. The api may be nil, in which case the tools report
// the service as unavailable when called.
func NewTools(api API, cfg oci.Config) []tool.Tool {
	return []tool.Tool{
		&listDatabases{api, cfg},
		&getDatabase{api},
		&startDatabase{api},
		&stopDatabase{api},
	}
}
