package network

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ListVcnsRequest is the input for listing VCNs in a compartment
type ListVcnsRequest struct {
	CompartmentId string `json:"compartment_id,omitempty" jsonschema:"OCID of the compartment to list VCNs in. Defaults to the tenancy."`
	Limit         int    `json:"limit,omitempty" jsonschema:"Maximum number of VCNs to return."`
}

// ListSubnetsRequest is the input for listing subnets, optionally scoped
// to one VCN
type ListSubnetsRequest struct {
	CompartmentId string `json:"compartment_id,omitempty" jsonschema:"OCID of the compartment to list subnets in. Defaults to the tenancy."`
	VcnId         string `json:"vcn_id,omitempty" jsonschema:"OCID of the VCN to restrict the listing to."`
	Limit         int    `json:"limit,omitempty" jsonschema:"Maximum number of subnets to return."`
}

// CreateVcnRequest is the input for creating a VCN
type CreateVcnRequest struct {
	CidrBlock     string `json:"cidr_block" jsonschema:"CIDR block for the new VCN, for example 10.0.0.0/16."`
	DisplayName   string `json:"display_name,omitempty" jsonschema:"Display name for the new VCN."`
	DnsLabel      string `json:"dns_label,omitempty" jsonschema:"DNS label for the new VCN."`
	CompartmentId string `json:"compartment_id,omitempty" jsonschema:"OCID of the compartment to create the VCN in. Defaults to the tenancy."`
}
