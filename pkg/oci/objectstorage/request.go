package objectstorage

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// ListBucketsRequest defines the input for listing buckets
type ListBucketsRequest struct {
	CompartmentId string `json:"compartment_id,omitempty" jsonschema:"Compartment OCID (defaults to the tenancy)"`
	Limit         int    `json:"limit,omitempty" jsonschema:"Maximum number of buckets to return"`
}

// ListObjectsRequest defines the input for listing objects in a bucket
type ListObjectsRequest struct {
	BucketName string `json:"bucket_name" jsonschema:"Name of the bucket"`
	Prefix     string `json:"prefix,omitempty" jsonschema:"Only return objects whose name starts with this prefix"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Maximum number of objects to return"`
}

// CreateBucketRequest defines the input for creating a bucket
type CreateBucketRequest struct {
	BucketName    string `json:"bucket_name" jsonschema:"Name of the bucket to create"`
	CompartmentId string `json:"compartment_id,omitempty" jsonschema:"Compartment OCID (defaults to the tenancy)"`
}

// DeleteBucketRequest defines the input for deleting a bucket
type DeleteBucketRequest struct {
	BucketName string `json:"bucket_name" jsonschema:"Name of the bucket to delete"`
}
