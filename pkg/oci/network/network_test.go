package network_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	// Packages
	ocimcp "github.com/mutablelogic/go-oci-mcp"
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	network "github.com/mutablelogic/go-oci-mcp/pkg/oci/network"
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
	common "github.com/oracle/oci-go-sdk/v65/common"
	core "github.com/oracle/oci-go-sdk/v65/core"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

type mockNetwork struct {
	listVcns    core.ListVcnsRequest
	listSubnets core.ListSubnetsRequest
	createVcn   core.CreateVcnRequest
	vcns        []core.Vcn
	subnets     []core.Subnet
	err         error
}

func (m *mockNetwork) ListVcns(_ context.Context, request core.ListVcnsRequest) (core.ListVcnsResponse, error) {
	m.listVcns = request
	return core.ListVcnsResponse{Items: m.vcns}, m.err
}

func (m *mockNetwork) ListSubnets(_ context.Context, request core.ListSubnetsRequest) (core.ListSubnetsResponse, error) {
	m.listSubnets = request
	return core.ListSubnetsResponse{Items: m.subnets}, m.err
}

func (m *mockNetwork) CreateVcn(_ context.Context, request core.CreateVcnRequest) (core.CreateVcnResponse, error) {
	m.createVcn = request
	if m.err != nil {
		return core.CreateVcnResponse{}, m.err
	}
	return core.CreateVcnResponse{Vcn: core.Vcn{
		Id:             common.String("vcn-1"),
		DisplayName:    request.CreateVcnDetails.DisplayName,
		CidrBlock:      request.CreateVcnDetails.CidrBlock,
		LifecycleState: core.VcnLifecycleStateProvisioning,
		TimeCreated:    sdkTime("2024-01-01T00:00:00Z"),
	}}, nil
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

func Test_network_001(t *testing.T) {
	assert := assert.New(t)

	api := &mockNetwork{vcns: []core.Vcn{{
		Id:                    common.String("vcn-1"),
		DisplayName:           common.String("prod-vcn"),
		CidrBlock:             common.String("10.0.0.0/16"),
		CidrBlocks:            []string{"10.0.0.0/16"},
		LifecycleState:        core.VcnLifecycleStateAvailable,
		DnsLabel:              common.String("prodvcn"),
		DefaultRouteTableId:   common.String("rt-1"),
		DefaultSecurityListId: common.String("sl-1"),
		TimeCreated:           sdkTime("2024-01-01T00:00:00Z"),
	}}}
	tools := network.NewTools(api, oci.Config{Tenancy: "ocid1.tenancy.oc1..aaaa"})

	result, err := runTool(t, tools, "oci_net_list_vcns", "")
	assert.NoError(err)

	data, err := json.Marshal(result)
	assert.NoError(err)
	assert.JSONEq(`[{
		"id": "vcn-1",
		"displayName": "prod-vcn",
		"cidrBlock": "10.0.0.0/16",
		"cidrBlocks": ["10.0.0.0/16"],
		"lifecycleState": "AVAILABLE",
		"dnsLabel": "prodvcn",
		"defaultRouteTableId": "rt-1",
		"defaultSecurityListId": "sl-1",
		"timeCreated": "2024-01-01T00:00:00Z"
	}]`, string(data))

	// Tenancy fallback and default limit
	if assert.NotNil(api.listVcns.CompartmentId) {
		assert.Equal("ocid1.tenancy.oc1..aaaa", *api.listVcns.CompartmentId)
	}
	if assert.NotNil(api.listVcns.Limit) {
		assert.Equal(50, *api.listVcns.Limit)
	}
}

func Test_network_002(t *testing.T) {
	assert := assert.New(t)

	api := &mockNetwork{subnets: []core.Subnet{{
		Id:                 common.String("subnet-1"),
		DisplayName:        common.String("prod-subnet"),
		CidrBlock:          common.String("10.0.1.0/24"),
		AvailabilityDomain: common.String("AD-1"),
		LifecycleState:     core.SubnetLifecycleStateAvailable,
		VirtualRouterIp:    common.String("10.0.1.1"),
		SecurityListIds:    []string{"sl-1"},
		TimeCreated:        sdkTime("2024-01-01T00:00:00Z"),
	}}}
	tools := network.NewTools(api, oci.Config{})

	result, err := runTool(t, tools, "oci_net_list_subnets", `{"vcn_id": "vcn-1"}`)
	assert.NoError(err)

	data, err := json.Marshal(result)
	assert.NoError(err)
	assert.JSONEq(`[{
		"id": "subnet-1",
		"displayName": "prod-subnet",
		"cidrBlock": "10.0.1.0/24",
		"availabilityDomain": "AD-1",
		"lifecycleState": "AVAILABLE",
		"virtualRouterIp": "10.0.1.1",
		"securityListIds": ["sl-1"],
		"timeCreated": "2024-01-01T00:00:00Z"
	}]`, string(data))

	if assert.NotNil(api.listSubnets.VcnId) {
		assert.Equal("vcn-1", *api.listSubnets.VcnId)
	}
}

func Test_network_003(t *testing.T) {
	assert := assert.New(t)

	api := &mockNetwork{}
	tools := network.NewTools(api, oci.Config{Tenancy: "ocid1.tenancy.oc1..aaaa"})

	result, err := runTool(t, tools, "oci_net_create_vcn", `{"cidr_block": "10.0.0.0/16", "display_name": "prod-vcn", "dns_label": "prodvcn"}`)
	assert.NoError(err)

	// Vendor call carries the details and the tenancy fallback compartment
	if assert.NotNil(api.createVcn.CreateVcnDetails.CidrBlock) {
		assert.Equal("10.0.0.0/16", *api.createVcn.CreateVcnDetails.CidrBlock)
	}
	if assert.NotNil(api.createVcn.CreateVcnDetails.DnsLabel) {
		assert.Equal("prodvcn", *api.createVcn.CreateVcnDetails.DnsLabel)
	}
	if assert.NotNil(api.createVcn.CreateVcnDetails.CompartmentId) {
		assert.Equal("ocid1.tenancy.oc1..aaaa", *api.createVcn.CreateVcnDetails.CompartmentId)
	}

	data, err := json.Marshal(result)
	assert.NoError(err)
	assert.JSONEq(`{
		"id": "vcn-1",
		"displayName": "prod-vcn",
		"cidrBlock": "10.0.0.0/16",
		"lifecycleState": "PROVISIONING",
		"timeCreated": "2024-01-01T00:00:00Z",
		"action": "CREATE"
	}`, string(data))
}

func Test_network_004(t *testing.T) {
	assert := assert.New(t)

	tools := network.NewTools(&mockNetwork{}, oci.Config{})
	_, err := runTool(t, tools, "oci_net_create_vcn", `{}`)
	assert.Error(err)
	assert.True(errors.Is(err, ocimcp.ErrBadParameter))

	_, err = runTool(t, network.NewTools(nil, oci.Config{}), "oci_net_list_vcns", "")
	assert.True(errors.Is(err, ocimcp.ErrUnavailable))
}
