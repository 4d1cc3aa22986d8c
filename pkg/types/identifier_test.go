package types_test

import (
	"testing"

	// Packages
	types "github.com/mutablelogic/go-oci-mcp/pkg/types"
	assert "github.com/stretchr/testify/assert"
)

func Test_identifier_001(t *testing.T) {
	assert := assert.New(t)
	assert.True(types.IsIdentifier("oci_compute_list_instances"))
	assert.True(types.IsIdentifier("a"))
	assert.True(types.IsIdentifier("a1_b2"))
	assert.False(types.IsIdentifier(""))
	assert.False(types.IsIdentifier("1tool"))
	assert.False(types.IsIdentifier("_tool"))
	assert.False(types.IsIdentifier("oci-compute"))
	assert.False(types.IsIdentifier("oci compute"))
}
