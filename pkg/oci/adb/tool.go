package adb

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	ocimcp "github.com/mutablelogic/go-oci-mcp"
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
	database "github.com/oracle/oci-go-sdk/v65/database"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type listDatabases struct {
	api API
	cfg oci.Config
}

type getDatabase struct {
	api API
}

type startDatabase struct {
	api API
}

type stopDatabase struct {
	api API
}

var _ tool.Tool = (*listDatabases)(nil)
var _ tool.Tool = (*getDatabase)(nil)
var _ tool.Tool = (*startDatabase)(nil)
var _ tool.Tool = (*stopDatabase)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIST DATABASES

func (*listDatabases) Name() string {
	return "oci_adb_list_databases"
}

func (*listDatabases) Description() string {
	return "List Autonomous Databases in a compartment, with workload type, lifecycle state and sizing."
}

func (*listDatabases) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ListDatabasesRequest](nil)
	if err != nil {
		return nil, err
	}
	if f, ok := schema.Properties["limit"]; ok && f != nil {
		f.Default = json.RawMessage("50")
	}
	return schema, nil
}

func (t *listDatabases) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("database client not initialized")
	}

	var req ListDatabasesRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	response, err := t.api.ListAutonomousDatabases(ctx, database.ListAutonomousDatabasesRequest{
		CompartmentId: t.cfg.CompartmentId(req.CompartmentId),
		Limit:         oci.Limit(req.Limit, defaultLimit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]Database, 0, len(response.Items))
	for _, item := range response.Items {
		result = append(result, NewDatabase(item))
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// GET DATABASE

func (*getDatabase) Name() string {
	return "oci_adb_get_database"
}

func (*getDatabase) Description() string {
	return "Get a single Autonomous Database by OCID, including the full connection string structure."
}

func (*getDatabase) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[GetDatabaseRequest](nil)
}

func (t *getDatabase) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("database client not initialized")
	}

	var req GetDatabaseRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.DatabaseId == "" {
		return nil, ocimcp.ErrBadParameter.With("database_id is required")
	}

	response, err := t.api.GetAutonomousDatabase(ctx, database.GetAutonomousDatabaseRequest{
		AutonomousDatabaseId: oci.OptString(req.DatabaseId),
	})
	if err != nil {
		return nil, err
	}
	return NewDatabaseDetail(response.AutonomousDatabase), nil
}

///////////////////////////////////////////////////////////////////////////////
// START DATABASE

func (*startDatabase) Name() string {
	return "oci_adb_start_database"
}

func (*startDatabase) Description() string {
	return "Start a stopped Autonomous Database."
}

func (*startDatabase) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[DatabaseActionRequest](nil)
}

func (t *startDatabase) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("database client not initialized")
	}

	var req DatabaseActionRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.DatabaseId == "" {
		return nil, ocimcp.ErrBadParameter.With("database_id is required")
	}

	response, err := t.api.StartAutonomousDatabase(ctx, database.StartAutonomousDatabaseRequest{
		AutonomousDatabaseId: oci.OptString(req.DatabaseId),
	})
	if err != nil {
		return nil, err
	}
	return DatabaseAction{
		Id:             oci.String(response.AutonomousDatabase.Id),
		DisplayName:    oci.String(response.AutonomousDatabase.DisplayName),
		LifecycleState: string(response.AutonomousDatabase.LifecycleState),
		Action:         "START",
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// STOP DATABASE

func (*stopDatabase) Name() string {
	return "oci_adb_stop_database"
}

func (*stopDatabase) Description() string {
	return "Stop a running Autonomous Database."
}

func (*stopDatabase) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[DatabaseActionRequest](nil)
}

func (t *stopDatabase) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("database client not initialized")
	}

	var req DatabaseActionRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.DatabaseId == "" {
		return nil, ocimcp.ErrBadParameter.With("database_id is required")
	}

	response, err := t.api.StopAutonomousDatabase(ctx, database.StopAutonomousDatabaseRequest{
		AutonomousDatabaseId: oci.OptString(req.DatabaseId),
	})
	if err != nil {
		return nil, err
	}
	return DatabaseAction{
		Id:             oci.String(response.AutonomousDatabase.Id),
		DisplayName:    oci.String(response.AutonomousDatabase.DisplayName),
		LifecycleState: string(response.AutonomousDatabase.LifecycleState),
		Action:         "STOP",
	}, nil
}
