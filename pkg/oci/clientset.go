package oci

import (
	"errors"

	// Packages
	core "github.com/oracle/oci-go-sdk/v65/core"
	database "github.com/oracle/oci-go-sdk/v65/database"
	identity "github.com/oracle/oci-go-sdk/v65/identity"
	objectstorage "github.com/oracle/oci-go-sdk/v65/objectstorage"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ClientSet holds one long-lived client per service family. Clients are
// created once at process start and are read-only afterwards; a client
// whose construction failed is left nil and the tools depending on it
// report an unavailable error at call time.
type ClientSet struct {
	Compute        *core.ComputeClient
	VirtualNetwork *core.VirtualNetworkClient
	BlockStorage   *core.BlockstorageClient
	ObjectStorage  *objectstorage.ObjectStorageClient
	Database       *database.DatabaseClient
	Identity       *identity.IdentityClient
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewClientSet creates the service clients from the credential profile.
// Construction degrades gracefully: the client set is always returned, and
// any per-client failures are joined into the returned error so the caller
// can log them and keep running.
func NewClientSet(cfg Config) (*ClientSet, error) {
	clients := new(ClientSet)

	provider, err := cfg.Provider()
	if err != nil {
		return clients, err
	}
	region := cfg.RegionName()

	var result error
	if client, err := core.NewComputeClientWithConfigurationProvider(provider); err != nil {
		result = errors.Join(result, err)
	} else {
		client.SetRegion(region)
		clients.Compute = &client
	}
	if client, err := core.NewVirtualNetworkClientWithConfigurationProvider(provider); err != nil {
		result = errors.Join(result, err)
	} else {
		client.SetRegion(region)
		clients.VirtualNetwork = &client
	}
	if client, err := core.NewBlockstorageClientWithConfigurationProvider(provider); err != nil {
		result = errors.Join(result, err)
	} else {
		client.SetRegion(region)
		clients.BlockStorage = &client
	}
	if client, err := objectstorage.NewObjectStorageClientWithConfigurationProvider(provider); err != nil {
		result = errors.Join(result, err)
	} else {
		client.SetRegion(region)
		clients.ObjectStorage = &client
	}
	if client, err := database.NewDatabaseClientWithConfigurationProvider(provider); err != nil {
		result = errors.Join(result, err)
	} else {
		client.SetRegion(region)
		clients.Database = &client
	}
	if client, err := identity.NewIdentityClientWithConfigurationProvider(provider); err != nil {
		result = errors.Join(result, err)
	} else {
		client.SetRegion(region)
		clients.Identity = &client
	}

	return clients, result
}
