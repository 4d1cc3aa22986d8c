package adb_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	// Packages
	ocimcp "github.com/mutablelogic/go-oci-mcp"
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	adb "github.com/mutablelogic/go-oci-mcp/pkg/oci/adb"
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
	common "github.com/oracle/oci-go-sdk/v65/common"
	database "github.com/oracle/oci-go-sdk/v65/database"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

type mockDatabase struct {
	list      database.ListAutonomousDatabasesRequest
	databases []database.AutonomousDatabaseSummary
	detail    database.AutonomousDatabase
	err       error
}

func (m *mockDatabase) ListAutonomousDatabases(_ context.Context, request database.ListAutonomousDatabasesRequest) (database.ListAutonomousDatabasesResponse, error) {
	m.list = request
	return database.ListAutonomousDatabasesResponse{Items: m.databases}, m.err
}

func (m *mockDatabase) GetAutonomousDatabase(_ context.Context, _ database.GetAutonomousDatabaseRequest) (database.GetAutonomousDatabaseResponse, error) {
	return database.GetAutonomousDatabaseResponse{AutonomousDatabase: m.detail}, m.err
}

func (m *mockDatabase) StartAutonomousDatabase(_ context.Context, request database.StartAutonomousDatabaseRequest) (database.StartAutonomousDatabaseResponse, error) {
	if m.err != nil {
		return database.StartAutonomousDatabaseResponse{}, m.err
	}
	return database.StartAutonomousDatabaseResponse{AutonomousDatabase: database.AutonomousDatabase{
		Id:             request.AutonomousDatabaseId,
		DisplayName:    common.String("adb-1"),
		LifecycleState: database.AutonomousDatabaseLifecycleStateStarting,
	}}, nil
}

func (m *mockDatabase) StopAutonomousDatabase(_ context.Context, request database.StopAutonomousDatabaseRequest) (database.StopAutonomousDatabaseResponse, error) {
	if m.err != nil {
		return database.StopAutonomousDatabaseResponse{}, m.err
	}
	return database.StopAutonomousDatabaseResponse{AutonomousDatabase: database.AutonomousDatabase{
		Id:             request.AutonomousDatabaseId,
		DisplayName:    common.String("adb-1"),
		LifecycleState: database.AutonomousDatabaseLifecycleStateStopping,
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

func Test_adb_001(t *testing.T) {
	assert := assert.New(t)

	api := &mockDatabase{databases: []database.AutonomousDatabaseSummary{{
		Id:                   common.String("adb-1"),
		DisplayName:          common.String("finance"),
		DbName:               common.String("FINANCE"),
		DbWorkload:           database.AutonomousDatabaseSummaryDbWorkloadOltp,
		LifecycleState:       database.AutonomousDatabaseSummaryLifecycleStateAvailable,
		CpuCoreCount:         common.Int(2),
		DataStorageSizeInTBs: common.Int(1),
		IsFreeTier:           common.Bool(false),
		ConnectionStrings: &database.AutonomousDatabaseConnectionStrings{
			High: common.String("finance_high"),
			Profiles: []database.DatabaseConnectionStringProfile{
				{DisplayName: common.String("finance_high"), Value: common.String("tcps://...")},
				{DisplayName: common.String("finance_low"), Value: common.String("tcps://...")},
			},
		},
		TimeCreated: sdkTime("2024-01-01T00:00:00Z"),
	}}}
	tools := adb.NewTools(api, oci.Config{Tenancy: "ocid1.tenancy.oc1..aaaa"})

	result, err := runTool(t, tools, "oci_adb_list_databases", "")
	assert.NoError(err)

	// Listing reduces connection strings to the profile display names
	data, err := json.Marshal(result)
	assert.NoError(err)
	assert.JSONEq(`[{
		"id": "adb-1",
		"displayName": "finance",
		"dbName": "FINANCE",
		"dbWorkload": "OLTP",
		"lifecycleState": "AVAILABLE",
		"cpuCoreCount": 2,
		"dataStorageSizeInTBs": 1,
		"isFreeTier": false,
		"connectionStrings": ["finance_high", "finance_low"],
		"timeCreated": "2024-01-01T00:00:00Z"
	}]`, string(data))

	if assert.NotNil(api.list.CompartmentId) {
		assert.Equal("ocid1.tenancy.oc1..aaaa", *api.list.CompartmentId)
	}
	if assert.NotNil(api.list.Limit) {
		assert.Equal(50, *api.list.Limit)
	}
}

func Test_adb_002(t *testing.T) {
	assert := assert.New(t)

	api := &mockDatabase{detail: database.AutonomousDatabase{
		Id:             common.String("adb-1"),
		DisplayName:    common.String("finance"),
		DbName:         common.String("FINANCE"),
		DbWorkload:     database.AutonomousDatabaseDbWorkloadOltp,
		LifecycleState: database.AutonomousDatabaseLifecycleStateAvailable,
		CpuCoreCount:   common.Int(2),
		IsFreeTier:     common.Bool(true),
		ConnectionStrings: &database.AutonomousDatabaseConnectionStrings{
			High: common.String("finance_high"),
			Low:  common.String("finance_low"),
			Profiles: []database.DatabaseConnectionStringProfile{{
				DisplayName: common.String("finance_high"),
				Value:       common.String("tcps://adb.example.com:1522/finance_high"),
				Protocol:    database.DatabaseConnectionStringProfileProtocolTcps,
			}},
		},
		ServiceConsoleUrl: common.String("https://adb.example.com/console"),
		TimeCreated:       sdkTime("2024-01-01T00:00:00Z"),
	}}
	tools := adb.NewTools(api, oci.Config{})

	result, err := runTool(t, tools, "oci_adb_get_database", `{"database_id": "adb-1"}`)
	assert.NoError(err)

	// The detail payload carries the full structure under the same
	// connectionStrings key the listing uses for profile names
	data, err := json.Marshal(result)
	assert.NoError(err)
	assert.JSONEq(`{
		"id": "adb-1",
		"displayName": "finance",
		"dbName": "FINANCE",
		"dbWorkload": "OLTP",
		"lifecycleState": "AVAILABLE",
		"cpuCoreCount": 2,
		"isFreeTier": true,
		"connectionStrings": {
			"high": "finance_high",
			"low": "finance_low",
			"profiles": [{
				"displayName": "finance_high",
				"value": "tcps://adb.example.com:1522/finance_high",
				"protocol": "TCPS"
			}]
		},
		"serviceConsoleUrl": "https://adb.example.com/console",
		"timeCreated": "2024-01-01T00:00:00Z"
	}`, string(data))

	var payload map[string]any
	assert.NoError(json.Unmarshal(data, &payload))
	assert.Contains(payload, "connectionStrings")
}

func Test_adb_003(t *testing.T) {
	assert := assert.New(t)

	tools := adb.NewTools(&mockDatabase{}, oci.Config{})

	result, err := runTool(t, tools, "oci_adb_stop_database", `{"database_id": "adb-1"}`)
	assert.NoError(err)

	data, err := json.Marshal(result)
	assert.NoError(err)
	assert.JSONEq(`{
		"id": "adb-1",
		"displayName": "adb-1",
		"lifecycleState": "STOPPING",
		"action": "STOP"
	}`, string(data))

	result, err = runTool(t, tools, "oci_adb_start_database", `{"database_id": "adb-1"}`)
	assert.NoError(err)

	data, err = json.Marshal(result)
	assert.NoError(err)
	assert.JSONEq(`{
		"id": "adb-1",
		"displayName": "adb-1",
		"lifecycleState": "STARTING",
		"action": "START"
	}`, string(data))
}

func Test_adb_004(t *testing.T) {
	assert := assert.New(t)

	tools := adb.NewTools(&mockDatabase{}, oci.Config{})
	_, err := runTool(t, tools, "oci_adb_get_database", `{}`)
	assert.Error(err)

	api := &mockDatabase{err: errors.New("NotAuthorizedOrNotFound")}
	_, err = runTool(t, adb.NewTools(api, oci.Config{}), "oci_adb_list_databases", "")
	assert.Error(err)
	assert.Contains(err.Error(), "NotAuthorizedOrNotFound")

	_, err = runTool(t, adb.NewTools(nil, oci.Config{}), "oci_adb_list_databases", "")
	assert.True(errors.Is(err, ocimcp.ErrUnavailable))
}
