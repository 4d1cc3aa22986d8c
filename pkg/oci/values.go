package oci

import (
	"time"

	// Packages
	common "github.com/oracle/oci-go-sdk/v65/common"
)

// Deref helpers for the pointer-heavy vendor response types. The zero value
// is used for unset fields; projections mark those fields omitempty.

func String(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func Bool(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}

func Int(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func Int64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func Float32(v *float32) float32 {
	if v == nil {
		return 0
	}
	return *v
}

// Time formats a vendor timestamp as RFC3339 in UTC, or returns the empty
// string when unset
func Time(v *common.SDKTime) string {
	if v == nil {
		return ""
	}
	return v.Time.UTC().Format(time.RFC3339)
}

// OptString returns a pointer to v for a vendor request, or nil when v is
// empty so the parameter is not forwarded
func OptString(v string) *string {
	if v == "" {
		return nil
	}
	return common.String(v)
}

// Limit returns v when positive, otherwise the per-tool default
func Limit(v, def int) *int {
	if v > 0 {
		return common.Int(v)
	}
	return common.Int(def)
}
