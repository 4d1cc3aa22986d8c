package adb

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ListDatabasesRequest is the input for listing Autonomous Databases in a
// compartment
type ListDatabasesRequest struct {
	CompartmentId string `json:"compartment_id,omitempty" jsonschema:"OCID of the compartment to list databases in. Defaults to the tenancy."`
	Limit         int    `json:"limit,omitempty" jsonschema:"Maximum number of databases to return."`
}

// GetDatabaseRequest is the input for fetching one Autonomous Database
type GetDatabaseRequest struct {
	DatabaseId string `json:"database_id" jsonschema:"OCID of the Autonomous Database."`
}

// DatabaseActionRequest is the input for starting or stopping an
// Autonomous Database
type DatabaseActionRequest struct {
	DatabaseId string `json:"database_id" jsonschema:"OCID of the Autonomous Database."`
}
