package blockstorage

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// ListVolumesRequest defines the input for listing block volumes
type ListVolumesRequest struct {
	CompartmentId      string `json:"compartment_id,omitempty" jsonschema:"Compartment OCID (defaults to the tenancy)"`
	AvailabilityDomain string `json:"availability_domain,omitempty" jsonschema:"Filter by availability domain"`
	Limit              int    `json:"limit,omitempty" jsonschema:"Maximum number of volumes to return"`
}

// ListBootVolumesRequest defines the input for listing boot volumes
type ListBootVolumesRequest struct {
	CompartmentId      string `json:"compartment_id,omitempty" jsonschema:"Compartment OCID (defaults to the tenancy)"`
	AvailabilityDomain string `json:"availability_domain,omitempty" jsonschema:"Filter by availability domain"`
	Limit              int    `json:"limit,omitempty" jsonschema:"Maximum number of boot volumes to return"`
}
