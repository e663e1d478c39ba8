package mcp

import (
	"context"
	"fmt"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools adds every catalog tool to the MCP server, routed through
// the dispatcher. Returns the number of tools registered.
func RegisterTools(s *mcpserver.MCPServer, d *Dispatcher) int {
	tools := d.registry.Tools()
	for _, t := range tools {
		s.AddTool(buildMCPTool(t), toolHandler(d, t.Name))
	}
	return len(tools)
}

// buildMCPTool converts a catalog entry into an mcp.Tool so clients see the
// parameter shape: required fields, optional fields with defaults, and
// primitive types.
func buildMCPTool(t *Tool) mcpgo.Tool {
	opts := []mcpgo.ToolOption{mcpgo.WithDescription(t.Description)}
	for _, p := range t.Params {
		opts = append(opts, paramOption(p))
	}
	return mcpgo.NewTool(t.Name, opts...)
}

// paramOption maps a catalog param to the appropriate mcp-go tool option.
func paramOption(p Param) mcpgo.ToolOption {
	var opts []mcpgo.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcpgo.Description(p.Description))
	}
	if p.Required {
		opts = append(opts, mcpgo.Required())
	}

	switch p.Type {
	case TypeInt:
		if d, ok := p.Default.(int); ok {
			opts = append(opts, mcpgo.DefaultNumber(float64(d)))
		}
		return mcpgo.WithNumber(p.Name, opts...)
	case TypeBool:
		if d, ok := p.Default.(bool); ok {
			opts = append(opts, mcpgo.DefaultBool(d))
		}
		return mcpgo.WithBoolean(p.Name, opts...)
	default:
		if d, ok := p.Default.(string); ok {
			opts = append(opts, mcpgo.DefaultString(d))
		}
		return mcpgo.WithString(p.Name, opts...)
	}
}

// toolHandler routes one tool call through the dispatcher. Failures become
// IsError tool results rather than protocol errors, so one bad call never
// affects the session or other in-flight calls.
func toolHandler(d *Dispatcher, name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		body, err := d.Dispatch(ctx, name, request.GetArguments())
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}
		return textResult(string(body)), nil
	}
}

func textResult(text string) *mcpgo.CallToolResult {
	return &mcpgo.CallToolResult{
		Content: []mcpgo.Content{
			mcpgo.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcpgo.CallToolResult {
	return &mcpgo.CallToolResult{
		Content: []mcpgo.Content{
			mcpgo.NewTextContent(message),
		},
		IsError: true,
	}
}
