/*
oci resolves the credential profile, region and tenancy scope for the
Oracle Cloud Infrastructure SDK, and holds the long-lived service clients
shared by all tools.
*/
package oci

import (
	"os"
	"path/filepath"
	"strings"

	// Packages
	common "github.com/oracle/oci-go-sdk/v65/common"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Config is the environment-sourced configuration, resolved once at startup
type Config struct {
	// Path to the credential profile file. Defaults to ~/.oci/config
	ConfigFile string

	// Named section within the credential file. Defaults to "DEFAULT"
	Profile string

	// Tenancy OCID, used as the compartment scope when a call does not
	// supply one explicitly
	Tenancy string

	// Target region. Defaults to "us-chicago-1"
	Region string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultProfile = "DEFAULT"
	DefaultRegion  = "us-chicago-1"
)

// Presence of this key in the credential file selects session-token
// authentication
const sessionTokenKey = "security_token_file"

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ConfigFilePath returns the path to the credential profile file
func (c Config) ConfigFilePath() string {
	if c.ConfigFile != "" {
		return c.ConfigFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".oci", "config")
}

// ProfileName returns the named section within the credential file
func (c Config) ProfileName() string {
	if c.Profile != "" {
		return c.Profile
	}
	return DefaultProfile
}

// RegionName returns the target region
func (c Config) RegionName() string {
	if c.Region != "" {
		return c.Region
	}
	return DefaultRegion
}

// CompartmentId returns the compartment scope for a call: the explicit
// value when supplied, the tenancy fallback otherwise, or nil when neither
// is set (in which case the vendor call will reject the request)
func (c Config) CompartmentId(explicit string) *string {
	if explicit != "" {
		return common.String(explicit)
	}
	if c.Tenancy != "" {
		return common.String(c.Tenancy)
	}
	return nil
}

// Provider returns the configuration provider for the credential file,
// selecting session-token authentication when the file references a
// security token, and API-key authentication otherwise
func (c Config) Provider() (common.ConfigurationProvider, error) {
	path := c.ConfigFilePath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if usesSessionToken(data) {
		return common.CustomProfileSessionTokenConfigProvider(path, c.ProfileName()), nil
	}
	return common.CustomProfileConfigProvider(path, c.ProfileName()), nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// usesSessionToken is a substring check on the raw file content,
// not a structured parse
func usesSessionToken(data []byte) bool {
	return strings.Contains(string(data), sessionTokenKey)
}
