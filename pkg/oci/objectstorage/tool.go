package objectstorage

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	ocimcp "github.com/mutablelogic/go-oci-mcp"
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
	objectstorage "github.com/oracle/oci-go-sdk/v65/objectstorage"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type listBuckets struct {
	api API
	cfg oci.Config
}

type listObjects struct {
	api API
}

type createBucket struct {
	api API
	cfg oci.Config
}

type deleteBucket struct {
	api API
}

var _ tool.Tool = (*listBuckets)(nil)
var _ tool.Tool = (*listObjects)(nil)
var _ tool.Tool = (*createBucket)(nil)
var _ tool.Tool = (*deleteBucket)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIST BUCKETS

func (*listBuckets) Name() string {
	return "oci_os_list_buckets"
}

func (*listBuckets) Description() string {
	return "List object storage buckets in a compartment."
}

func (*listBuckets) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ListBucketsRequest](nil)
	if err != nil {
		return nil, err
	}
	if f, ok := schema.Properties["limit"]; ok && f != nil {
		f.Default = json.RawMessage("100")
	}
	return schema, nil
}

func (t *listBuckets) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("object storage client not initialized")
	}

	var req ListBucketsRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	ns, err := namespace(ctx, t.api)
	if err != nil {
		return nil, err
	}
	response, err := t.api.ListBuckets(ctx, objectstorage.ListBucketsRequest{
		NamespaceName: ns,
		CompartmentId: t.cfg.CompartmentId(req.CompartmentId),
		Limit:         oci.Limit(req.Limit, defaultLimit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]Bucket, 0, len(response.Items))
	for _, item := range response.Items {
		result = append(result, NewBucket(item))
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// LIST OBJECTS

func (*listObjects) Name() string {
	return "oci_os_list_objects"
}

func (*listObjects) Description() string {
	return "List objects in a bucket, optionally filtered by name prefix."
}

func (*listObjects) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ListObjectsRequest](nil)
	if err != nil {
		return nil, err
	}
	if f, ok := schema.Properties["limit"]; ok && f != nil {
		f.Default = json.RawMessage("100")
	}
	return schema, nil
}

func (t *listObjects) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("object storage client not initialized")
	}

	var req ListObjectsRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.BucketName == "" {
		return nil, ocimcp.ErrBadParameter.With("bucket_name is required")
	}

	ns, err := namespace(ctx, t.api)
	if err != nil {
		return nil, err
	}
	response, err := t.api.ListObjects(ctx, objectstorage.ListObjectsRequest{
		NamespaceName: ns,
		BucketName:    oci.OptString(req.BucketName),
		Prefix:        oci.OptString(req.Prefix),
		Limit:         oci.Limit(req.Limit, defaultLimit),
		Fields:        oci.OptString("name,size,md5,timeCreated,timeModified"),
	})
	if err != nil {
		return nil, err
	}

	result := make([]Object, 0, len(response.Objects))
	for _, item := range response.Objects {
		result = append(result, NewObject(item))
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// CREATE BUCKET

func (*createBucket) Name() string {
	return "oci_os_create_bucket"
}

func (*createBucket) Description() string {
	return "Create a private standard-tier object storage bucket."
}

func (*createBucket) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CreateBucketRequest](nil)
}

func (t *createBucket) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("object storage client not initialized")
	}

	var req CreateBucketRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.BucketName == "" {
		return nil, ocimcp.ErrBadParameter.With("bucket_name is required")
	}

	ns, err := namespace(ctx, t.api)
	if err != nil {
		return nil, err
	}
	response, err := t.api.CreateBucket(ctx, objectstorage.CreateBucketRequest{
		NamespaceName: ns,
		CreateBucketDetails: objectstorage.CreateBucketDetails{
			Name:             oci.OptString(req.BucketName),
			CompartmentId:    t.cfg.CompartmentId(req.CompartmentId),
			PublicAccessType: objectstorage.CreateBucketDetailsPublicAccessTypeNopublicaccess,
			StorageTier:      objectstorage.CreateBucketDetailsStorageTierStandard,
		},
	})
	if err != nil {
		return nil, err
	}

	return Bucket{
		Name:          oci.String(response.Bucket.Name),
		Namespace:     oci.String(response.Bucket.Namespace),
		CompartmentId: oci.String(response.Bucket.CompartmentId),
		TimeCreated:   oci.Time(response.Bucket.TimeCreated),
		Action:        "CREATE",
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// DELETE BUCKET

func (*deleteBucket) Name() string {
	return "oci_os_delete_bucket"
}

func (*deleteBucket) Description() string {
	return "Delete an empty object storage bucket."
}

func (*deleteBucket) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[DeleteBucketRequest](nil)
}

func (t *deleteBucket) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("object storage client not initialized")
	}

	var req DeleteBucketRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.BucketName == "" {
		return nil, ocimcp.ErrBadParameter.With("bucket_name is required")
	}

	ns, err := namespace(ctx, t.api)
	if err != nil {
		return nil, err
	}
	if _, err := t.api.DeleteBucket(ctx, objectstorage.DeleteBucketRequest{
		NamespaceName: ns,
		BucketName:    oci.OptString(req.BucketName),
	}); err != nil {
		return nil, err
	}

	return Bucket{
		Name:      req.BucketName,
		Namespace: oci.String(ns),
		Action:    "DELETE",
	}, nil
}
