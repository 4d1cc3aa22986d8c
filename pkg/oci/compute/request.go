package compute

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// ListInstancesRequest defines the input for listing instances
type ListInstancesRequest struct {
	CompartmentId      string `json:"compartment_id,omitempty" jsonschema:"Compartment OCID (defaults to the tenancy)"`
	AvailabilityDomain string `json:"availability_domain,omitempty" jsonschema:"Filter by availability domain"`
	Limit              int    `json:"limit,omitempty" jsonschema:"Maximum number of instances to return"`
}

// GetInstanceRequest defines the input for fetching a single instance
type GetInstanceRequest struct {
	InstanceId string `json:"instance_id" jsonschema:"Instance OCID"`
}

// InstanceActionRequest defines the input for an instance power action
type InstanceActionRequest struct {
	InstanceId string `json:"instance_id" jsonschema:"Instance OCID"`
	Action     string `json:"action" jsonschema:"Power action to perform"`
}

// ListShapesRequest defines the input for listing shapes
type ListShapesRequest struct {
	CompartmentId      string `json:"compartment_id,omitempty" jsonschema:"Compartment OCID (defaults to the tenancy)"`
	AvailabilityDomain string `json:"availability_domain,omitempty" jsonschema:"Filter by availability domain"`
	Limit              int    `json:"limit,omitempty" jsonschema:"Maximum number of shapes to return"`
}
