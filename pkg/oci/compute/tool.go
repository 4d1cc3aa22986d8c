package compute

import (
	"context"
	"encoding/json"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	ocimcp "github.com/mutablelogic/go-oci-mcp"
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
	core "github.com/oracle/oci-go-sdk/v65/core"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type listInstances struct {
	api API
	cfg oci.Config
}

type getInstance struct {
	api API
}

type instanceAction struct {
	api API
}

type listShapes struct {
	api API
	cfg oci.Config
}

var _ tool.Tool = (*listInstances)(nil)
var _ tool.Tool = (*getInstance)(nil)
var _ tool.Tool = (*instanceAction)(nil)
var _ tool.Tool = (*listShapes)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Power actions accepted by the instance action tool
var instanceActions = []string{"START", "STOP", "RESET", "SOFTSTOP", "SOFTRESET"}

///////////////////////////////////////////////////////////////////////////////
// LIST INSTANCES

func (*listInstances) Name() string {
	return "oci_compute_list_instances"
}

func (*listInstances) Description() string {
	return "List compute instances in a compartment, with their shape, lifecycle state and placement."
}

func (*listInstances) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ListInstancesRequest](nil)
	if err != nil {
		return nil, err
	}
	if f, ok := schema.Properties["limit"]; ok && f != nil {
		f.Default = json.RawMessage("50")
	}
	return schema, nil
}

func (t *listInstances) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("compute client not initialized")
	}

	var req ListInstancesRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	response, err := t.api.ListInstances(ctx, core.ListInstancesRequest{
		CompartmentId:      t.cfg.CompartmentId(req.CompartmentId),
		AvailabilityDomain: oci.OptString(req.AvailabilityDomain),
		Limit:              oci.Limit(req.Limit, defaultLimit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]Instance, 0, len(response.Items))
	for _, item := range response.Items {
		result = append(result, NewInstance(item))
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// GET INSTANCE

func (*getInstance) Name() string {
	return "oci_compute_get_instance"
}

func (*getInstance) Description() string {
	return "Get a single compute instance by OCID, including fault domain, image and shape configuration."
}

func (*getInstance) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[GetInstanceRequest](nil)
}

func (t *getInstance) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("compute client not initialized")
	}

	var req GetInstanceRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.InstanceId == "" {
		return nil, ocimcp.ErrBadParameter.With("instance_id is required")
	}

	response, err := t.api.GetInstance(ctx, core.GetInstanceRequest{
		InstanceId: oci.OptString(req.InstanceId),
	})
	if err != nil {
		return nil, err
	}
	return NewInstanceDetail(response.Instance), nil
}

///////////////////////////////////////////////////////////////////////////////
// INSTANCE ACTION

func (*instanceAction) Name() string {
	return "oci_compute_instance_action"
}

func (*instanceAction) Description() string {
	return "Perform a power action (START, STOP, RESET, SOFTSTOP, SOFTRESET) on a compute instance."
}

func (*instanceAction) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[InstanceActionRequest](nil)
	if err != nil {
		return nil, err
	}
	if f, ok := schema.Properties["action"]; ok && f != nil {
		for _, action := range instanceActions {
			f.Enum = append(f.Enum, action)
		}
	}
	return schema, nil
}

func (t *instanceAction) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("compute client not initialized")
	}

	var req InstanceActionRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.InstanceId == "" {
		return nil, ocimcp.ErrBadParameter.With("instance_id is required")
	}
	action := strings.ToUpper(req.Action)
	if !isInstanceAction(action) {
		return nil, ocimcp.ErrBadParameter.Withf("invalid action: %q", req.Action)
	}

	response, err := t.api.InstanceAction(ctx, core.InstanceActionRequest{
		InstanceId: oci.OptString(req.InstanceId),
		Action:     core.InstanceActionActionEnum(action),
	})
	if err != nil {
		return nil, err
	}
	return InstanceAction{
		Id:             oci.String(response.Instance.Id),
		DisplayName:    oci.String(response.Instance.DisplayName),
		LifecycleState: string(response.Instance.LifecycleState),
		Action:         action,
	}, nil
}

func isInstanceAction(action string) bool {
	for _, v := range instanceActions {
		if action == v {
			return true
		}
	}
	return false
}

///////////////////////////////////////////////////////////////////////////////
// LIST SHAPES

func (*listShapes) Name() string {
	return "oci_compute_list_shapes"
}

func (*listShapes) Description() string {
	return "List compute shapes available in a compartment, with processor, memory and networking characteristics."
}

func (*listShapes) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ListShapesRequest](nil)
	if err != nil {
		return nil, err
	}
	if f, ok := schema.Properties["limit"]; ok && f != nil {
		f.Default = json.RawMessage("50")
	}
	return schema, nil
}

func (t *listShapes) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("compute client not initialized")
	}

	var req ListShapesRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	response, err := t.api.ListShapes(ctx, core.ListShapesRequest{
		CompartmentId:      t.cfg.CompartmentId(req.CompartmentId),
		AvailabilityDomain: oci.OptString(req.AvailabilityDomain),
		Limit:              oci.Limit(req.Limit, defaultLimit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]Shape, 0, len(response.Items))
	for _, item := range response.Items {
		result = append(result, NewShape(item))
	}
	return result, nil
}
