package objectstorage

import (
	// Packages
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	objectstorage "github.com/oracle/oci-go-sdk/v65/objectstorage"
)

///////////////////////////////////////////////////////////////////////////////
// PROJECTIONS

// Bucket is the reduced wire representation of a bucket
type Bucket struct {
	Name          string `json:"name"`
	Namespace     string `json:"namespace,omitempty"`
	CompartmentId string `json:"compartmentId,omitempty"`
	CreatedBy     string `json:"createdBy,omitempty"`
	TimeCreated   string `json:"timeCreated,omitempty"`
	Etag          string `json:"etag,omitempty"`
	Action        string `json:"action,omitempty"`
}

// Object is the reduced wire representation of an object
type Object struct {
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	Md5          string `json:"md5,omitempty"`
	TimeCreated  string `json:"timeCreated,omitempty"`
	TimeModified string `json:"timeModified,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewBucket projects a vendor bucket summary
func NewBucket(v objectstorage.BucketSummary) Bucket {
	return Bucket{
		Name:          oci.String(v.Name),
		Namespace:     oci.String(v.Namespace),
		CompartmentId: oci.String(v.CompartmentId),
		CreatedBy:     oci.String(v.CreatedBy),
		TimeCreated:   oci.Time(v.TimeCreated),
		Etag:          oci.String(v.Etag),
	}
}

// NewObject projects a vendor object summary
func NewObject(v objectstorage.ObjectSummary) Object {
	return Object{
		Name:         oci.String(v.Name),
		Size:         oci.Int64(v.Size),
		Md5:          oci.String(v.Md5),
		TimeCreated:  oci.Time(v.TimeCreated),
		TimeModified: oci.Time(v.TimeModified),
	}
}
