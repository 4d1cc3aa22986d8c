package network

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	ocimcp "github.com/mutablelogic/go-oci-mcp"
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
	core "github.com/oracle/oci-go-sdk/v65/core"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type listVcns struct {
	api API
	cfg oci.Config
}

type listSubnets struct {
	api API
	cfg oci.Config
}

type createVcn struct {
	api API
	cfg oci.Config
}

var _ tool.Tool = (*listVcns)(nil)
var _ tool.Tool = (*listSubnets)(nil)
var _ tool.Tool = (*createVcn)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIST VCNS

func (*listVcns) Name() string {
	return "oci_net_list_vcns"
}

func (*listVcns) Description() string {
	return "List virtual cloud networks in a compartment, with their CIDR blocks and DNS configuration."
}

func (*listVcns) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ListVcnsRequest](nil)
	if err != nil {
		return nil, err
	}
	if f, ok := schema.Properties["limit"]; ok && f != nil {
		f.Default = json.RawMessage("50")
	}
	return schema, nil
}

func (t *listVcns) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("network client not initialized")
	}

	var req ListVcnsRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	response, err := t.api.ListVcns(ctx, core.ListVcnsRequest{
		CompartmentId: t.cfg.CompartmentId(req.CompartmentId),
		Limit:         oci.Limit(req.Limit, defaultLimit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]Vcn, 0, len(response.Items))
	for _, item := range response.Items {
		result = append(result, NewVcn(item))
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// LIST SUBNETS

func (*listSubnets) Name() string {
	return "oci_net_list_subnets"
}

func (*listSubnets) Description() string {
	return "List subnets in a compartment, optionally restricted to one VCN."
}

func (*listSubnets) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ListSubnetsRequest](nil)
	if err != nil {
		return nil, err
	}
	if f, ok := schema.Properties["limit"]; ok && f != nil {
		f.Default = json.RawMessage("50")
	}
	return schema, nil
}

func (t *listSubnets) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("network client not initialized")
	}

	var req ListSubnetsRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	response, err := t.api.ListSubnets(ctx, core.ListSubnetsRequest{
		CompartmentId: t.cfg.CompartmentId(req.CompartmentId),
		VcnId:         oci.OptString(req.VcnId),
		Limit:         oci.Limit(req.Limit, defaultLimit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]Subnet, 0, len(response.Items))
	for _, item := range response.Items {
		result = append(result, NewSubnet(item))
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// CREATE VCN

func (*createVcn) Name() string {
	return "oci_net_create_vcn"
}

func (*createVcn) Description() string {
	return "Create a virtual cloud network with the given CIDR block."
}

func (*createVcn) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[CreateVcnRequest](nil)
}

func (t *createVcn) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("network client not initialized")
	}

	var req CreateVcnRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.CidrBlock == "" {
		return nil, ocimcp.ErrBadParameter.With("cidr_block is required")
	}

	response, err := t.api.CreateVcn(ctx, core.CreateVcnRequest{
		CreateVcnDetails: core.CreateVcnDetails{
			CidrBlock:     oci.OptString(req.CidrBlock),
			DisplayName:   oci.OptString(req.DisplayName),
			DnsLabel:      oci.OptString(req.DnsLabel),
			CompartmentId: t.cfg.CompartmentId(req.CompartmentId),
		},
	})
	if err != nil {
		return nil, err
	}

	// The create response omits the DNS and default-resource fields, which
	// may not be populated yet
	return Vcn{
		Id:             oci.String(response.Vcn.Id),
		DisplayName:    oci.String(response.Vcn.DisplayName),
		CidrBlock:      oci.String(response.Vcn.CidrBlock),
		CidrBlocks:     response.Vcn.CidrBlocks,
		LifecycleState: string(response.Vcn.LifecycleState),
		TimeCreated:    oci.Time(response.Vcn.TimeCreated),
		Action:         "CREATE",
	}, nil
}
