package compute

import (
	// Packages
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	core "github.com/oracle/oci-go-sdk/v65/core"
)

///////////////////////////////////////////////////////////////////////////////
// PROJECTIONS

// Instance is the reduced wire representation of a compute instance
type Instance struct {
	Id                 string            `json:"id"`
	DisplayName        string            `json:"displayName,omitempty"`
	Shape              string            `json:"shape,omitempty"`
	LifecycleState     string            `json:"lifecycleState,omitempty"`
	AvailabilityDomain string            `json:"availabilityDomain,omitempty"`
	Region             string            `json:"region,omitempty"`
	TimeCreated        string            `json:"timeCreated,omitempty"`
	FaultDomain        string            `json:"faultDomain,omitempty"`
	ImageId            string            `json:"imageId,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
	ShapeConfig        *ShapeConfig      `json:"shapeConfig,omitempty"`
}

// ShapeConfig is the shape configuration of a flexible instance
type ShapeConfig struct {
	Ocpus       float32 `json:"ocpus,omitempty"`
	MemoryInGBs float32 `json:"memoryInGBs,omitempty"`
}

// InstanceAction echoes a requested power action and the resulting state
type InstanceAction struct {
	Id             string `json:"id"`
	DisplayName    string `json:"displayName,omitempty"`
	LifecycleState string `json:"lifecycleState,omitempty"`
	Action         string `json:"action"`
}

// Shape is the reduced wire representation of a compute shape
type Shape struct {
	Shape                     string  `json:"shape"`
	ProcessorDescription      string  `json:"processorDescription,omitempty"`
	Ocpus                     float32 `json:"ocpus,omitempty"`
	MemoryInGBs               float32 `json:"memoryInGBs,omitempty"`
	NetworkingBandwidthInGbps float32 `json:"networkingBandwidthInGbps,omitempty"`
	MaxVnicAttachments        int     `json:"maxVnicAttachments,omitempty"`
	Gpus                      int     `json:"gpus,omitempty"`
	IsFlexible                bool    `json:"isFlexible"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewInstance projects a vendor instance into the list field set
func NewInstance(v core.Instance) Instance {
	return Instance{
		Id:                 oci.String(v.Id),
		DisplayName:        oci.String(v.DisplayName),
		Shape:              oci.String(v.Shape),
		LifecycleState:     string(v.LifecycleState),
		AvailabilityDomain: oci.String(v.AvailabilityDomain),
		Region:             oci.String(v.Region),
		TimeCreated:        oci.Time(v.TimeCreated),
	}
}

// NewInstanceDetail projects a vendor instance into the single-item field
// set, which extends the list field set
func NewInstanceDetail(v core.Instance) Instance {
	instance := NewInstance(v)
	instance.FaultDomain = oci.String(v.FaultDomain)
	instance.ImageId = oci.String(v.ImageId)
	instance.Metadata = v.Metadata
	if v.ShapeConfig != nil {
		instance.ShapeConfig = &ShapeConfig{
			Ocpus:       oci.Float32(v.ShapeConfig.Ocpus),
			MemoryInGBs: oci.Float32(v.ShapeConfig.MemoryInGBs),
		}
	}
	return instance
}

// NewShape projects a vendor shape
func NewShape(v core.Shape) Shape {
	return Shape{
		Shape:                     oci.String(v.Shape),
		ProcessorDescription:      oci.String(v.ProcessorDescription),
		Ocpus:                     oci.Float32(v.Ocpus),
		MemoryInGBs:               oci.Float32(v.MemoryInGBs),
		NetworkingBandwidthInGbps: oci.Float32(v.NetworkingBandwidthInGbps),
		MaxVnicAttachments:        oci.Int(v.MaxVnicAttachments),
		Gpus:                      oci.Int(v.Gpus),
		IsFlexible:                oci.Bool(v.IsFlexible),
	}
}
