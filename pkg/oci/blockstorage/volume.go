package blockstorage

import (
	// Packages
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	core "github.com/oracle/oci-go-sdk/v65/core"
)

///////////////////////////////////////////////////////////////////////////////
// PROJECTIONS

// Volume is the reduced wire representation of a block volume
type Volume struct {
	Id                 string `json:"id"`
	DisplayName        string `json:"displayName,omitempty"`
	SizeInGBs          int64  `json:"sizeInGBs,omitempty"`
	LifecycleState     string `json:"lifecycleState,omitempty"`
	AvailabilityDomain string `json:"availabilityDomain,omitempty"`
	VpusPerGB          int64  `json:"vpusPerGB,omitempty"`
	TimeCreated        string `json:"timeCreated,omitempty"`
}

// BootVolume is the reduced wire representation of a boot volume
type BootVolume struct {
	Id                 string `json:"id"`
	DisplayName        string `json:"displayName,omitempty"`
	SizeInGBs          int64  `json:"sizeInGBs,omitempty"`
	LifecycleState     string `json:"lifecycleState,omitempty"`
	AvailabilityDomain string `json:"availabilityDomain,omitempty"`
	ImageId            string `json:"imageId,omitempty"`
	TimeCreated        string `json:"timeCreated,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewVolume projects a vendor block volume
func NewVolume(v core.Volume) Volume {
	return Volume{
		Id:                 oci.String(v.Id),
		DisplayName:        oci.String(v.DisplayName),
		SizeInGBs:          oci.Int64(v.SizeInGBs),
		LifecycleState:     string(v.LifecycleState),
		AvailabilityDomain: oci.String(v.AvailabilityDomain),
		VpusPerGB:          oci.Int64(v.VpusPerGB),
		TimeCreated:        oci.Time(v.TimeCreated),
	}
}

// NewBootVolume projects a vendor boot volume
func NewBootVolume(v core.BootVolume) BootVolume {
	return BootVolume{
		Id:                 oci.String(v.Id),
		DisplayName:        oci.String(v.DisplayName),
		SizeInGBs:          oci.Int64(v.SizeInGBs),
		LifecycleState:     string(v.LifecycleState),
		AvailabilityDomain: oci.String(v.AvailabilityDomain),
		ImageId:            oci.String(v.ImageId),
		TimeCreated:        oci.Time(v.TimeCreated),
	}
}
