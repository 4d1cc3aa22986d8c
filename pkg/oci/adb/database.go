package adb

import (
	// Packages
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	database "github.com/oracle/oci-go-sdk/v65/database"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Database is the listing projection of an Autonomous Database. The
// connectionStrings field carries the profile display names only.
type Database struct {
	Id                   string   `json:"id"`
	DisplayName          string   `json:"displayName"`
	DbName               string   `json:"dbName"`
	DbWorkload           string   `json:"dbWorkload,omitempty"`
	LifecycleState       string   `json:"lifecycleState"`
	CpuCoreCount         int      `json:"cpuCoreCount,omitempty"`
	DataStorageSizeInTBs int      `json:"dataStorageSizeInTBs,omitempty"`
	IsFreeTier           bool     `json:"isFreeTier"`
	ConnectionStrings    []string `json:"connectionStrings,omitempty"`
	TimeCreated          string   `json:"timeCreated,omitempty"`
}

// DatabaseDetail is the single-database projection. The connectionStrings
// field carries the full structure, and the service console URL is added.
type DatabaseDetail struct {
	Id                   string             `json:"id"`
	DisplayName          string             `json:"displayName"`
	DbName               string             `json:"dbName"`
	DbWorkload           string             `json:"dbWorkload,omitempty"`
	LifecycleState       string             `json:"lifecycleState"`
	CpuCoreCount         int                `json:"cpuCoreCount,omitempty"`
	DataStorageSizeInTBs int                `json:"dataStorageSizeInTBs,omitempty"`
	IsFreeTier           bool               `json:"isFreeTier"`
	ConnectionStrings    *ConnectionStrings `json:"connectionStrings,omitempty"`
	ServiceConsoleUrl    string             `json:"serviceConsoleUrl,omitempty"`
	TimeCreated          string             `json:"timeCreated,omitempty"`
}

// ConnectionStrings is the full connection string structure of an
// Autonomous Database
type ConnectionStrings struct {
	High     string              `json:"high,omitempty"`
	Medium   string              `json:"medium,omitempty"`
	Low      string              `json:"low,omitempty"`
	Profiles []ConnectionProfile `json:"profiles,omitempty"`
}

// ConnectionProfile is one named connection profile
type ConnectionProfile struct {
	DisplayName       string `json:"displayName"`
	Value             string `json:"value"`
	Protocol          string `json:"protocol,omitempty"`
	ConsumerGroup     string `json:"consumerGroup,omitempty"`
	TlsAuthentication string `json:"tlsAuthentication,omitempty"`
}

// DatabaseAction is the result of a start or stop request
type DatabaseAction struct {
	Id             string `json:"id"`
	DisplayName    string `json:"displayName"`
	LifecycleState string `json:"lifecycleState"`
	Action         string `json:"action"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewDatabase projects a vendor database summary for listings
func NewDatabase(v database.AutonomousDatabaseSummary) Database {
	return Database{
		Id:                   oci.String(v.Id),
		DisplayName:          oci.String(v.DisplayName),
		DbName:               oci.String(v.DbName),
		DbWorkload:           string(v.DbWorkload),
		LifecycleState:       string(v.LifecycleState),
		CpuCoreCount:         oci.Int(v.CpuCoreCount),
		DataStorageSizeInTBs: oci.Int(v.DataStorageSizeInTBs),
		IsFreeTier:           oci.Bool(v.IsFreeTier),
		ConnectionStrings:    profileNames(v.ConnectionStrings),
		TimeCreated:          oci.Time(v.TimeCreated),
	}
}

// NewDatabaseDetail projects a vendor database with the full connection
// string structure
func NewDatabaseDetail(v database.AutonomousDatabase) DatabaseDetail {
	return DatabaseDetail{
		Id:                   oci.String(v.Id),
		DisplayName:          oci.String(v.DisplayName),
		DbName:               oci.String(v.DbName),
		DbWorkload:           string(v.DbWorkload),
		LifecycleState:       string(v.LifecycleState),
		CpuCoreCount:         oci.Int(v.CpuCoreCount),
		DataStorageSizeInTBs: oci.Int(v.DataStorageSizeInTBs),
		IsFreeTier:           oci.Bool(v.IsFreeTier),
		ConnectionStrings:    newConnectionStrings(v.ConnectionStrings),
		ServiceConsoleUrl:    oci.String(v.ServiceConsoleUrl),
		TimeCreated:          oci.Time(v.TimeCreated),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func profileNames(v *database.AutonomousDatabaseConnectionStrings) []string {
	if v == nil {
		return nil
	}
	result := make([]string, 0, len(v.Profiles))
	for _, profile := range v.Profiles {
		if name := oci.String(profile.DisplayName); name != "" {
			result = append(result, name)
		}
	}
	return result
}

func newConnectionStrings(v *database.AutonomousDatabaseConnectionStrings) *ConnectionStrings {
	if v == nil {
		return nil
	}
	result := &ConnectionStrings{
		High:   oci.String(v.High),
		Medium: oci.String(v.Medium),
		Low:    oci.String(v.Low),
	}
	for _, profile := range v.Profiles {
		result.Profiles = append(result.Profiles, ConnectionProfile{
			DisplayName:       oci.String(profile.DisplayName),
			Value:             oci.String(profile.Value),
			Protocol:          string(profile.Protocol),
			ConsumerGroup:     string(profile.ConsumerGroup),
			TlsAuthentication: string(profile.TlsAuthentication),
		})
	}
	return result
}
