package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// AddDefinition describes the add tool for discovery by MCP clients.
func AddDefinition() mcp.Tool {
	return mcp.NewTool(AddName,
		mcp.WithDescription("Add two numbers together."),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First number"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second number"),
		),
	)
}

// Add returns the sum of the two validated arguments as a single text block.
func (r *Registry) Add(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := req.RequireFloat("a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := req.RequireFloat("b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatNumber(a + b)), nil
}
