package tool

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	ocimcp "github.com/mutablelogic/go-oci-mcp"
	types "github.com/mutablelogic/go-oci-mcp/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Tool is one externally invocable operation, with a stable name, a
// human-readable description and a JSON schema for its input
type Tool interface {
	// Return the name of the tool
	Name() string

	// Return the description of the tool
	Description() string

	// Return the JSON schema for the tool input
	Schema() (*jsonschema.Schema, error)

	// Run the tool with the given input as JSON (may be nil)
	Run(ctx context.Context, input json.RawMessage) (any, error)
}

// Toolkit is a collection of tools with unique names. Tools() returns tools
// in registration order, which is the order they are advertised in.
type Toolkit struct {
	tools map[string]Tool
	order []string
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolkit creates a new toolkit with the given tools.
// Returns an error if any tool has an invalid or duplicate name.
func NewToolkit(tools ...Tool) (*Toolkit, error) {
	tk := &Toolkit{
		tools: make(map[string]Tool),
	}
	if err := tk.Register(tools...); err != nil {
		return nil, err
	}
	return tk, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns all tools in the toolkit, in registration order
func (tk *Toolkit) Tools() []Tool {
	result := make([]Tool, 0, len(tk.order))
	for _, name := range tk.order {
		result = append(result, tk.tools[name])
	}
	return result
}

// Register adds one or more tools to the toolkit.
// Returns an error if any tool has an invalid or duplicate name.
func (tk *Toolkit) Register(tools ...Tool) error {
	for _, t := range tools {
		name := t.Name()
		if !types.IsIdentifier(name) {
			return ocimcp.ErrBadParameter.Withf("invalid tool name: %q", name)
		}
		if _, exists := tk.tools[name]; exists {
			return ocimcp.ErrConflict.Withf("duplicate tool name: %q", name)
		}
		tk.tools[name] = t
		tk.order = append(tk.order, name)
	}
	return nil
}

// Lookup returns a tool by name, or nil if not found
func (tk *Toolkit) Lookup(name string) Tool {
	return tk.tools[name]
}

// Run executes a tool by name with the given input, which should be
// json.RawMessage or nil. The input is validated against the tool schema
// before the tool is invoked. Returns an error if the tool is not found,
// the input does not match the schema, or the tool execution fails.
func (tk *Toolkit) Run(ctx context.Context, name string, input any) (any, error) {
	// Lookup the tool
	tool := tk.Lookup(name)
	if tool == nil {
		return nil, ocimcp.ErrNotFound.Withf("Unknown tool: %s", name)
	}

	// Convert input to json.RawMessage
	var rawInput json.RawMessage
	if input != nil {
		switch v := input.(type) {
		case json.RawMessage:
			rawInput = v
		case []byte:
			rawInput = json.RawMessage(v)
		default:
			data, err := json.Marshal(input)
			if err != nil {
				return nil, ocimcp.ErrBadParameter.Withf("failed to marshal input: %v", err)
			}
			rawInput = json.RawMessage(data)
		}
	}

	// Validate input against schema if provided
	if len(rawInput) > 0 {
		schema, err := tool.Schema()
		if err != nil {
			return nil, ocimcp.ErrBadParameter.Withf("schema generation failed: %v", err)
		}
		if schema != nil {
			var mapInput map[string]any
			if err := json.Unmarshal(rawInput, &mapInput); err != nil {
				return nil, ocimcp.ErrBadParameter.Withf("failed to unmarshal JSON input: %v", err)
			}
			resolved, err := schema.Resolve(nil)
			if err != nil {
				return nil, ocimcp.ErrBadParameter.Withf("schema resolution failed: %v", err)
			}
			if err := resolved.Validate(mapInput); err != nil {
				return nil, ocimcp.ErrBadParameter.Withf("input validation failed: %v", err)
			}
		}
	}

	// Run the tool with raw JSON
	return tool.Run(ctx, rawInput)
}
