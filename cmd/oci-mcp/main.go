package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug bool `name:"debug" help:"Enable debug output"`

	// OCI configuration
	ConfigFile string `name:"config" env:"OCI_CLI_CONFIG_FILE" help:"Path to the OCI configuration file"`
	Profile    string `name:"profile" env:"OCI_CLI_PROFILE" help:"Profile to use from the OCI configuration file"`
	Tenancy    string `name:"tenancy" env:"OCI_TENANCY" help:"Tenancy OCID, used as the default compartment"`
	Region     string `name:"region" env:"OCI_REGION" help:"Region to send requests to"`

	// Context
	ctx context.Context
}

type CLI struct {
	Globals

	// Commands
	Run     RunCmd     `cmd:"" default:"1" help:"Run the server on stdin/stdout"`
	Tools   ToolsCmd   `cmd:"" help:"Return a list of tools"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("MCP server for Oracle Cloud Infrastructure"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context which cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Run the command
	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	}
	return filepath.Base(name)
}
