package iam_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	// Packages
	ocimcp "github.com/mutablelogic/go-oci-mcp"
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	iam "github.com/mutablelogic/go-oci-mcp/pkg/oci/iam"
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
	common "github.com/oracle/oci-go-sdk/v65/common"
	identity "github.com/oracle/oci-go-sdk/v65/identity"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

type mockIdentity struct {
	compartments identity.ListCompartmentsRequest
	domains      identity.ListAvailabilityDomainsRequest
	err          error
}

func (m *mockIdentity) ListCompartments(_ context.Context, request identity.ListCompartmentsRequest) (identity.ListCompartmentsResponse, error) {
	m.compartments = request
	return identity.ListCompartmentsResponse{Items: []identity.Compartment{{
		Id:             common.String("cmp-1"),
		Name:           common.String("dev"),
		Description:    common.String("Development"),
		LifecycleState: identity.CompartmentLifecycleStateActive,
		TimeCreated:    sdkTime("2024-01-01T00:00:00Z"),
	}}}, m.err
}

func (m *mockIdentity) ListUsers(_ context.Context, _ identity.ListUsersRequest) (identity.ListUsersResponse, error) {
	return identity.ListUsersResponse{Items: []identity.User{{
		Id:             common.String("user-1"),
		Name:           common.String("alice"),
		Email:          common.String("alice@example.com"),
		IsMfaActivated: common.Bool(true),
		LifecycleState: identity.UserLifecycleStateActive,
		TimeCreated:    sdkTime("2024-01-01T00:00:00Z"),
	}}}, m.err
}

func (m *mockIdentity) ListGroups(_ context.Context, _ identity.ListGroupsRequest) (identity.ListGroupsResponse, error) {
	return identity.ListGroupsResponse{Items: []identity.Group{{
		Id:             common.String("grp-1"),
		Name:           common.String("Administrators"),
		Description:    common.String("Admin group"),
		LifecycleState: identity.GroupLifecycleStateActive,
		TimeCreated:    sdkTime("2024-01-01T00:00:00Z"),
	}}}, m.err
}

func (m *mockIdentity) ListPolicies(_ context.Context, _ identity.ListPoliciesRequest) (identity.ListPoliciesResponse, error) {
	return identity.ListPoliciesResponse{Items: []identity.Policy{{
		Id:             common.String("pol-1"),
		Name:           common.String("admin-policy"),
		Statements:     []string{"Allow group Administrators to manage all-resources in tenancy"},
		LifecycleState: identity.PolicyLifecycleStateActive,
		TimeCreated:    sdkTime("2024-01-01T00:00:00Z"),
	}}}, m.err
}

func (m *mockIdentity) ListAvailabilityDomains(_ context.Context, request identity.ListAvailabilityDomainsRequest) (identity.ListAvailabilityDomainsResponse, error) {
	m.domains = request
	return identity.ListAvailabilityDomainsResponse{Items: []identity.AvailabilityDomain{{
		Id:   common.String("ad-1"),
		Name: common.String("AD-1"),
	}}}, m.err
}

func sdkTime(value string) *common.SDKTime {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &common.SDKTime{Time: t}
}

func runTool(t *testing.T, tools []tool.Tool, name string, input string) (any, error) {
	t.Helper()
	tk, err := tool.NewToolkit(tools...)
	if err != nil {
		t.Fatal(err)
	}
	var raw json.RawMessage
	if input != "" {
		raw = json.RawMessage(input)
	}
	return tk.Run(context.TODO(), name, raw)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_iam_001(t *testing.T) {
	assert := assert.New(t)

	api := &mockIdentity{}
	tools := iam.NewTools(api, oci.Config{Tenancy: "ocid1.tenancy.oc1..aaaa"})

	result, err := runTool(t, tools, "oci_iam_list_compartments", "")
	assert.NoError(err)

	data, err := json.Marshal(result)
	assert.NoError(err)
	assert.JSONEq(`[{
		"id": "cmp-1",
		"name": "dev",
		"description": "Development",
		"lifecycleState": "ACTIVE",
		"timeCreated": "2024-01-01T00:00:00Z"
	}]`, string(data))

	if assert.NotNil(api.compartments.CompartmentId) {
		assert.Equal("ocid1.tenancy.oc1..aaaa", *api.compartments.CompartmentId)
	}
	if assert.NotNil(api.compartments.Limit) {
		assert.Equal(50, *api.compartments.Limit)
	}
}

func Test_iam_002(t *testing.T) {
	assert := assert.New(t)

	tools := iam.NewTools(&mockIdentity{}, oci.Config{})

	result, err := runTool(t, tools, "oci_iam_list_users", "")
	assert.NoError(err)

	data, err := json.Marshal(result)
	assert.NoError(err)
	assert.JSONEq(`[{
		"id": "user-1",
		"name": "alice",
		"email": "alice@example.com",
		"isMfaActivated": true,
		"lifecycleState": "ACTIVE",
		"timeCreated": "2024-01-01T00:00:00Z"
	}]`, string(data))
}

func Test_iam_003(t *testing.T) {
	assert := assert.New(t)

	tools := iam.NewTools(&mockIdentity{}, oci.Config{})

	result, err := runTool(t, tools, "oci_iam_list_groups", "")
	assert.NoError(err)
	data, err := json.Marshal(result)
	assert.NoError(err)
	assert.JSONEq(`[{
		"id": "grp-1",
		"name": "Administrators",
		"description": "Admin group",
		"lifecycleState": "ACTIVE",
		"timeCreated": "2024-01-01T00:00:00Z"
	}]`, string(data))

	result, err = runTool(t, tools, "oci_iam_list_policies", "")
	assert.NoError(err)
	data, err = json.Marshal(result)
	assert.NoError(err)
	assert.JSONEq(`[{
		"id": "pol-1",
		"name": "admin-policy",
		"statements": ["Allow group Administrators to manage all-resources in tenancy"],
		"lifecycleState": "ACTIVE",
		"timeCreated": "2024-01-01T00:00:00Z"
	}]`, string(data))
}

func Test_iam_004(t *testing.T) {
	assert := assert.New(t)

	api := &mockIdentity{}
	tools := iam.NewTools(api, oci.Config{Tenancy: "ocid1.tenancy.oc1..aaaa"})

	result, err := runTool(t, tools, "oci_iam_list_availability_domains", "")
	assert.NoError(err)

	data, err := json.Marshal(result)
	assert.NoError(err)
	assert.JSONEq(`[{"id": "ad-1", "name": "AD-1"}]`, string(data))

	if assert.NotNil(api.domains.CompartmentId) {
		assert.Equal("ocid1.tenancy.oc1..aaaa", *api.domains.CompartmentId)
	}
}

func Test_iam_005(t *testing.T) {
	assert := assert.New(t)

	api := &mockIdentity{err: errors.New("NotAuthenticated")}
	_, err := runTool(t, iam.NewTools(api, oci.Config{}), "oci_iam_list_users", "")
	assert.Error(err)
	assert.Contains(err.Error(), "NotAuthenticated")

	_, err = runTool(t, iam.NewTools(nil, oci.Config{}), "oci_iam_list_compartments", "")
	assert.True(errors.Is(err, ocimcp.ErrUnavailable))
}
