package server

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/xeipuuv/gojsonschema"

	"blogsmith-mcp/internal/logging"
	"blogsmith-mcp/internal/tools"
)

// validateArguments returns a tool-handler middleware that checks every
// call's arguments against the tool's declared input schema, rejecting
// malformed input before the handler body runs.
func validateArguments(entries []tools.Entry) mcpserver.ToolHandlerMiddleware {
	schemas := make(map[string]gojsonschema.JSONLoader, len(entries))
	for _, e := range entries {
		data, err := json.Marshal(e.Tool.InputSchema)
		if err != nil {
			continue
		}
		schemas[e.Tool.Name] = gojsonschema.NewBytesLoader(data)
	}

	return func(next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			loader, ok := schemas[req.Params.Name]
			if !ok {
				return next(ctx, req)
			}
			args := req.GetArguments()
			if args == nil {
				args = map[string]any{}
			}
			result, err := gojsonschema.Validate(loader, gojsonschema.NewGoLoader(args))
			if err != nil {
				return mcp.NewToolResultError("argument validation error: " + err.Error()), nil
			}
			if !result.Valid() {
				var msgs []string
				for _, desc := range result.Errors() {
					msgs = append(msgs, desc.String())
				}
				return mcp.NewToolResultError("invalid arguments: " + strings.Join(msgs, ", ")), nil
			}
			return next(ctx, req)
		}
	}
}

// logToolCalls returns a tool-handler middleware recording both sides of
// every invocation.
func logToolCalls() mcpserver.ToolHandlerMiddleware {
	return func(next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			logging.LogToolCall("in", req.Params.Name, req.GetArguments())
			res, err := next(ctx, req)
			switch {
			case err != nil:
				logging.LogToolCall("out", req.Params.Name, err.Error())
			case res != nil && res.IsError:
				logging.LogToolCall("out", req.Params.Name, "error result")
			default:
				logging.LogToolCall("out", req.Params.Name, "ok")
			}
			return res, err
		}
	}
}
