package network

import (
	// Packages
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	core "github.com/oracle/oci-go-sdk/v65/core"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Vcn is a projection of a virtual cloud network
type Vcn struct {
	Id                    string   `json:"id"`
	DisplayName           string   `json:"displayName"`
	CidrBlock             string   `json:"cidrBlock"`
	CidrBlocks            []string `json:"cidrBlocks,omitempty"`
	LifecycleState        string   `json:"lifecycleState"`
	DnsLabel              string   `json:"dnsLabel,omitempty"`
	DefaultRouteTableId   string   `json:"defaultRouteTableId,omitempty"`
	DefaultSecurityListId string   `json:"defaultSecurityListId,omitempty"`
	TimeCreated           string   `json:"timeCreated,omitempty"`
	Action                string   `json:"action,omitempty"`
}

// Subnet is a projection of a subnet
type Subnet struct {
	Id                 string   `json:"id"`
	DisplayName        string   `json:"displayName"`
	CidrBlock          string   `json:"cidrBlock"`
	AvailabilityDomain string   `json:"availabilityDomain,omitempty"`
	LifecycleState     string   `json:"lifecycleState"`
	VirtualRouterIp    string   `json:"virtualRouterIp,omitempty"`
	SecurityListIds    []string `json:"securityListIds,omitempty"`
	TimeCreated        string   `json:"timeCreated,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewVcn projects a vendor VCN
func NewVcn(v core.Vcn) Vcn {
	return Vcn{
		Id:                    oci.String(v.Id),
		DisplayName:           oci.String(v.DisplayName),
		CidrBlock:             oci.String(v.CidrBlock),
		CidrBlocks:            v.CidrBlocks,
		LifecycleState:        string(v.LifecycleState),
		DnsLabel:              oci.String(v.DnsLabel),
		DefaultRouteTableId:   oci.String(v.DefaultRouteTableId),
		DefaultSecurityListId: oci.String(v.DefaultSecurityListId),
		TimeCreated:           oci.Time(v.TimeCreated),
	}
}

// NewSubnet projects a vendor subnet
func NewSubnet(v core.Subnet) Subnet {
	return Subnet{
		Id:                 oci.String(v.Id),
		DisplayName:        oci.String(v.DisplayName),
		CidrBlock:          oci.String(v.CidrBlock),
		AvailabilityDomain: oci.String(v.AvailabilityDomain),
		LifecycleState:     string(v.LifecycleState),
		VirtualRouterIp:    oci.String(v.VirtualRouterIp),
		SecurityListIds:    v.SecurityListIds,
		TimeCreated:        oci.Time(v.TimeCreated),
	}
}
