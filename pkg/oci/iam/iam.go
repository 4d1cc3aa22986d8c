/*
Package iam exposes OCI identity operations (compartments, users, groups,
policies and availability domains) as tools.
*/
package iam

import (
	"context"

	// Packages
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
	identity "github.com/oracle/oci-go-sdk/v65/identity"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// API is the subset of the identity service used by the tools
type API interface {
	ListCompartments(ctx context.Context, request identity.ListCompartmentsRequest) (identity.ListCompartmentsResponse, error)
	ListUsers(ctx context.Context, request identity.ListUsersRequest) (identity.ListUsersResponse, error)
	ListGroups(ctx context.Context, request identity.ListGroupsRequest) (identity.ListGroupsResponse, error)
	ListPolicies(ctx context.Context, request identity.ListPoliciesRequest) (identity.ListPoliciesResponse, error)
	ListAvailabilityDomains(ctx context.Context, request identity.ListAvailabilityDomainsRequest) (identity.ListAvailabilityDomainsResponse, error)
}

var _ API = (*identity.IdentityClient)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultLimit = 50
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the identity tools, bound to the given API and
// configuration. The api may be nil, in which case the tools report the
// service as unavailable when called.
func NewTools(api API, cfg oci.Config) []tool.Tool {
	return []tool.Tool{
		&listCompartments{api, cfg},
		&listUsers{api, cfg},
		&listGroups{api, cfg},
		&listPolicies{api, cfg},
		&listAvailabilityDomains{api, cfg},
	}
}
