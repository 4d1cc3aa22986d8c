package iam

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ListRequest is the input shared by the compartment, user, group and
// policy listings
type ListRequest struct {
	CompartmentId string `json:"compartment_id,omitempty" jsonschema:"OCID of the compartment to list in. Defaults to the tenancy."`
	Limit         int    `json:"limit,omitempty" jsonschema:"Maximum number of items to return."`
}

// ListAvailabilityDomainsRequest is the input for listing availability
// domains
type ListAvailabilityDomainsRequest struct {
	CompartmentId string `json:"compartment_id,omitempty" jsonschema:"OCID of the compartment. Defaults to the tenancy."`
}
