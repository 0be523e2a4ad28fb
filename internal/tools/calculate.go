package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// CalculateDefinition describes the calculator tool for discovery by MCP clients.
func CalculateDefinition() mcp.Tool {
	return mcp.NewTool(CalculateName,
		mcp.WithDescription("Perform a basic arithmetic operation on two numbers."),
		mcp.WithString("operation",
			mcp.Required(),
			mcp.Description("The operation to perform"),
			mcp.Enum("add", "subtract", "multiply", "divide"),
		),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First operand"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second operand"),
		),
	)
}

// Calculate dispatches on the validated operation name. Division by zero is a
// handled condition and produces an error-flavored text result, not a fault.
func (r *Registry) Calculate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operation, err := req.RequireString("operation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	a, err := req.RequireFloat("a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := req.RequireFloat("b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var result float64
	switch operation {
	case "add":
		result = a + b
	case "subtract":
		result = a - b
	case "multiply":
		result = a * b
	case "divide":
		if b == 0 {
			return mcp.NewToolResultError("cannot divide by zero"), nil
		}
		result = a / b
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown operation: %s", operation)), nil
	}

	return mcp.NewToolResultText(formatNumber(result)), nil
}
