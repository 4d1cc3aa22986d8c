package iam

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	ocimcp "github.com/mutablelogic/go-oci-mcp"
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
	identity "github.com/oracle/oci-go-sdk/v65/identity"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type listCompartments struct {
	api API
	cfg oci.Config
}

type listUsers struct {
	api API
	cfg oci.Config
}

type listGroups struct {
	api API
	cfg oci.Config
}

type listPolicies struct {
	api API
	cfg oci.Config
}

type listAvailabilityDomains struct {
	api API
	cfg oci.Config
}

var _ tool.Tool = (*listCompartments)(nil)
var _ tool.Tool = (*listUsers)(nil)
var _ tool.Tool = (*listGroups)(nil)
var _ tool.Tool = (*listPolicies)(nil)
var _ tool.Tool = (*listAvailabilityDomains)(nil)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func listSchema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ListRequest](nil)
	if err != nil {
		return nil, err
	}
	if f, ok := schema.Properties["limit"]; ok && f != nil {
		f.Default = json.RawMessage("50")
	}
	return schema, nil
}

func decode[T any](input json.RawMessage) (T, error) {
	var req T
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return req, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	return req, nil
}

///////////////////////////////////////////////////////////////////////////////
// LIST COMPARTMENTS

func (*listCompartments) Name() string {
	return "oci_iam_list_compartments"
}

func (*listCompartments) Description() string {
	return "List compartments under a parent compartment or the tenancy."
}

func (*listCompartments) Schema() (*jsonschema.Schema, error) {
	return listSchema()
}

func (t *listCompartments) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("identity client not initialized")
	}
	req, err := decode[ListRequest](input)
	if err != nil {
		return nil, err
	}

	response, err := t.api.ListCompartments(ctx, identity.ListCompartmentsRequest{
		CompartmentId: t.cfg.CompartmentId(req.CompartmentId),
		Limit:         oci.Limit(req.Limit, defaultLimit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]Compartment, 0, len(response.Items))
	for _, item := range response.Items {
		result = append(result, NewCompartment(item))
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// LIST USERS

func (*listUsers) Name() string {
	return "oci_iam_list_users"
}

func (*listUsers) Description() string {
	return "List users in a compartment, with email and MFA status."
}

func (*listUsers) Schema() (*jsonschema.Schema, error) {
	return listSchema()
}

func (t *listUsers) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("identity client not initialized")
	}
	req, err := decode[ListRequest](input)
	if err != nil {
		return nil, err
	}

	response, err := t.api.ListUsers(ctx, identity.ListUsersRequest{
		CompartmentId: t.cfg.CompartmentId(req.CompartmentId),
		Limit:         oci.Limit(req.Limit, defaultLimit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]User, 0, len(response.Items))
	for _, item := range response.Items {
		result = append(result, NewUser(item))
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// LIST GROUPS

func (*listGroups) Name() string {
	return "oci_iam_list_groups"
}

func (*listGroups) Description() string {
	return "List groups in a compartment."
}

func (*listGroups) Schema() (*jsonschema.Schema, error) {
	return listSchema()
}

func (t *listGroups) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("identity client not initialized")
	}
	req, err := decode[ListRequest](input)
	if err != nil {
		return nil, err
	}

	response, err := t.api.ListGroups(ctx, identity.ListGroupsRequest{
		CompartmentId: t.cfg.CompartmentId(req.CompartmentId),
		Limit:         oci.Limit(req.Limit, defaultLimit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]Group, 0, len(response.Items))
	for _, item := range response.Items {
		result = append(result, NewGroup(item))
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// LIST POLICIES

func (*listPolicies) Name() string {
	return "oci_iam_list_policies"
}

func (*listPolicies) Description() string {
	return "List policies in a compartment, including their statements."
}

func (*listPolicies) Schema() (*jsonschema.Schema, error) {
	return listSchema()
}

func (t *listPolicies) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("identity client not initialized")
	}
	req, err := decode[ListRequest](input)
	if err != nil {
		return nil, err
	}

	response, err := t.api.ListPolicies(ctx, identity.ListPoliciesRequest{
		CompartmentId: t.cfg.CompartmentId(req.CompartmentId),
		Limit:         oci.Limit(req.Limit, defaultLimit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]Policy, 0, len(response.Items))
	for _, item := range response.Items {
		result = append(result, NewPolicy(item))
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// LIST AVAILABILITY DOMAINS

func (*listAvailabilityDomains) Name() string {
	return "oci_iam_list_availability_domains"
}

func (*listAvailabilityDomains) Description() string {
	return "List availability domains visible to a compartment or the tenancy."
}

func (*listAvailabilityDomains) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[ListAvailabilityDomainsRequest](nil)
}

func (t *listAvailabilityDomains) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("identity client not initialized")
	}
	req, err := decode[ListAvailabilityDomainsRequest](input)
	if err != nil {
		return nil, err
	}

	response, err := t.api.ListAvailabilityDomains(ctx, identity.ListAvailabilityDomainsRequest{
		CompartmentId: t.cfg.CompartmentId(req.CompartmentId),
	})
	if err != nil {
		return nil, err
	}

	result := make([]AvailabilityDomain, 0, len(response.Items))
	for _, item := range response.Items {
		result = append(result, NewAvailabilityDomain(item))
	}
	return result, nil
}
