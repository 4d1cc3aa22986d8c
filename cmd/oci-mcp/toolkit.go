package main

import (
	"fmt"
	"os"

	// Packages
	oci "github.com/mutablelogic/go-oci-mcp/pkg/oci"
	adb "github.com/mutablelogic/go-oci-mcp/pkg/oci/adb"
	blockstorage "github.com/mutablelogic/go-oci-mcp/pkg/oci/blockstorage"
	compute "github.com/mutablelogic/go-oci-mcp/pkg/oci/compute"
	iam "github.com/mutablelogic/go-oci-mcp/pkg/oci/iam"
	network "github.com/mutablelogic/go-oci-mcp/pkg/oci/network"
	objectstorage "github.com/mutablelogic/go-oci-mcp/pkg/oci/objectstorage"
	tool "github.com/mutablelogic/go-oci-mcp/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (g *Globals) config() oci.Config {
	return oci.Config{
		ConfigFile: g.ConfigFile,
		Profile:    g.Profile,
		Tenancy:    g.Tenancy,
		Region:     g.Region,
	}
}

// newToolkit creates the OCI clients and registers all tools, grouped by
// service family. Client construction failures are logged to stderr and
// the affected tools are still advertised, reporting the service as
// unavailable when called.
func newToolkit(g *Globals) (*tool.Toolkit, error) {
	cfg := g.config()
	clients, err := oci.NewClientSet(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}

	// A nil client stays a nil interface so the tools can test for it
	var computeAPI compute.API
	if clients.Compute != nil {
		computeAPI = clients.Compute
	}
	var blockStorageAPI blockstorage.API
	if clients.BlockStorage != nil {
		blockStorageAPI = clients.BlockStorage
	}
	var objectStorageAPI objectstorage.API
	if clients.ObjectStorage != nil {
		objectStorageAPI = clients.ObjectStorage
	}
	var networkAPI network.API
	if clients.VirtualNetwork != nil {
		networkAPI = clients.VirtualNetwork
	}
	var databaseAPI adb.API
	if clients.Database != nil {
		databaseAPI = clients.Database
	}
	var identityAPI iam.API
	if clients.Identity != nil {
		identityAPI = clients.Identity
	}

	toolkit, err := tool.NewToolkit()
	if err != nil {
		return nil, err
	}
	if err := toolkit.Register(compute.NewTools(computeAPI, cfg)...); err != nil {
		return nil, err
	}
	if err := toolkit.Register(blockstorage.NewTools(blockStorageAPI, cfg)...); err != nil {
		return nil, err
	}
	if err := toolkit.Register(objectstorage.NewTools(objectStorageAPI, cfg)...); err != nil {
		return nil, err
	}
	if err := toolkit.Register(network.NewTools(networkAPI, cfg)...); err != nil {
		return nil, err
	}
	if err := toolkit.Register(adb.NewTools(databaseAPI, cfg)...); err != nil {
		return nil, err
	}
	if err := toolkit.Register(iam.NewTools(identityAPI, cfg)...); err != nil {
		return nil, err
	}
	return toolkit, nil
}
