package iam

import (
	// Packages
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	identity "github.com/oracle/oci-go-sdk/v65/identity"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Compartment is a projection of a compartment
type Compartment struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	LifecycleState string `json:"lifecycleState"`
	TimeCreated    string `json:"timeCreated,omitempty"`
}

// User is a projection of a user
type User struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Email          string `json:"email,omitempty"`
	IsMfaActivated bool   `json:"isMfaActivated"`
	LifecycleState string `json:"lifecycleState"`
	TimeCreated    string `json:"timeCreated,omitempty"`
}

// Group is a projection of a group
type Group struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	LifecycleState string `json:"lifecycleState"`
	TimeCreated    string `json:"timeCreated,omitempty"`
}

// Policy is a projection of a policy, including its statements
type Policy struct {
	Id             string   `json:"id"`
	Name           string   `json:"name"`
	Statements     []string `json:"statements,omitempty"`
	Description    string   `json:"description,omitempty"`
	LifecycleState string   `json:"lifecycleState"`
	TimeCreated    string   `json:"timeCreated,omitempty"`
}

// AvailabilityDomain is a projection of an availability domain
type AvailabilityDomain struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewCompartment projects a vendor compartment
func NewCompartment(v identity.Compartment) Compartment {
	return Compartment{
		Id:             oci.String(v.Id),
		Name:           oci.String(v.Name),
		Description:    oci.String(v.Description),
		LifecycleState: string(v.LifecycleState),
		TimeCreated:    oci.Time(v.TimeCreated),
	}
}

// NewUser projects a vendor user
func NewUser(v identity.User) User {
	return User{
		Id:             oci.String(v.Id),
		Name:           oci.String(v.Name),
		Description:    oci.String(v.Description),
		Email:          oci.String(v.Email),
		IsMfaActivated: oci.Bool(v.IsMfaActivated),
		LifecycleState: string(v.LifecycleState),
		TimeCreated:    oci.Time(v.TimeCreated),
	}
}

// NewGroup projects a vendor group
func NewGroup(v identity.Group) Group {
	return Group{
		Id:             oci.String(v.Id),
		Name:           oci.String(v.Name),
		Description:    oci.String(v.Description),
		LifecycleState: string(v.LifecycleState),
		TimeCreated:    oci.Time(v.TimeCreated),
	}
}

// NewPolicy projects a vendor policy
func NewPolicy(v identity.Policy) Policy {
	return Policy{
		Id:             oci.String(v.Id),
		Name:           oci.String(v.Name),
		Statements:     v.Statements,
		Description:    oci.String(v.Description),
		LifecycleState: string(v.LifecycleState),
		TimeCreated:    oci.Time(v.TimeCreated),
	}
}

// NewAvailabilityDomain projects a vendor availability domain
func NewAvailabilityDomain(v identity.AvailabilityDomain) AvailabilityDomain {
	return AvailabilityDomain{
		Id:   oci.String(v.Id),
		Name: oci.String(v.Name),
	}
}
