package blockstorage

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

type listVolumes struct {
	api API
	cfg oci.Config
}

type listBootVolumes struct {
	api API
	cfg oci.Config
}

var _ tool.Tool = (*listVolumes)(nil)
var _ tool.Tool = (*listBootVolumes)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIST VOLUMES

func (*listVolumes) Name() string {
	return "oci_bv_list_volumes"
}

func (*listVolumes) Description() string {
	return "List block volumes in a compartment, with size, performance and lifecycle state."
}

func (*listVolumes) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ListVolumesRequest](nil)
	if err != nil {
		return nil, err
	}
	if f, ok := schema.Properties["limit"]; ok && f != nil {
		f.Default = json.RawMessage("50")
	}
	return schema, nil
}

func (t *listVolumes) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("block storage client not initialized")
	}

	var req ListVolumesRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	response, err := t.api.ListVolumes(ctx, core.ListVolumesRequest{
		CompartmentId:      t.cfg.CompartmentId(req.CompartmentId),
		AvailabilityDomain: oci.OptString(req.AvailabilityDomain),
		Limit:              oci.Limit(req.Limit, defaultLimit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]Volume, 0, len(response.Items))
	for _, item := range response.Items {
		result = append(result, NewVolume(item))
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// LIST BOOT VOLUMES

func (*listBootVolumes) Name() string {
	return "oci_bv_list_boot_volumes"
}

func (*listBootVolumes) Description() string {
	return "List boot volumes in a compartment, with size, source image and lifecycle state."
}

func (*listBootVolumes) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ListBootVolumesRequest](nil)
	if err != nil {
		return nil, err
	}
	if f, ok := schema.Properties["limit"]; ok && f != nil {
		f.Default = json.RawMessage("50")
	}
	return schema, nil
}

func (t *listBootVolumes) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.api == nil {
		return nil, ocimcp.ErrUnavailable.With("block storage client not initialized")
	}

	var req ListBootVolumesRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	response, err := t.api.ListBootVolumes(ctx, core.ListBootVolumesRequest{
		CompartmentId:      t.cfg.CompartmentId(req.CompartmentId),
		AvailabilityDomain: oci.OptString(req.AvailabilityDomain),
		Limit:              oci.Limit(req.Limit, defaultLimit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]BootVolume, 0, len(response.Items))
	for _, item := range response.Items {
		result = append(result, NewBootVolume(item))
	}
	return result, nil
}
