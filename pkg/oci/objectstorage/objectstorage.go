/*
objectstorage exposes the object storage service family as tools: listing
buckets and objects, and creating or deleting buckets. Every operation
first resolves the tenancy-wide namespace.
*/
package objectstorage

import (
	"context"

	// Packages
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
	objectstorage "github.com/oracle/oci-go-sdk/v65/objectstorage"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// API is the subset of the vendor object storage client used by the tools
type API interface {
	GetNamespace(ctx context.Context, request objectstorage.GetNamespaceRequest) (objectstorage.GetNamespaceResponse, error)
	ListBuckets(ctx context.Context, request objectstorage.ListBucketsRequest) (objectstorage.ListBucketsResponse, error)
	ListObjects(ctx context.Context, request objectstorage.ListObjectsRequest) (objectstorage.ListObjectsResponse, error)
	CreateBucket(ctx context.Context, request objectstorage.CreateBucketRequest) (objectstorage.CreateBucketResponse, error)
	DeleteBucket(ctx context.Context, request objectstorage.DeleteBucketRequest) (objectstorage.DeleteBucketResponse, error)
}

var _ API = (*objectstorage.ObjectStorageClient)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const defaultLimit = 100

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the object storage tools
func NewTools(api API, cfg oci.Config) []tool.Tool {
	return []tool.Tool{
		&listBuckets{api: api, cfg: cfg},
		&listObjects{api: api},
		&createBucket{api: api, cfg: cfg},
		&deleteBucket{api: api},
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// namespace resolves the tenancy-wide object storage namespace
func namespace(ctx context.Context, api API) (*string, error) {
	response, err := api.GetNamespace(ctx, objectstorage.GetNamespaceRequest{})
	if err != nil {
		return nil, err
	}
	return response.Value, nil
}
