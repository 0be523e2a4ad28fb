package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"blogsmith-mcp/internal/appconfig"
)

// callReq builds a CallToolRequest the way the SDK delivers one.
func callReq(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

// resultText extracts the first text block from a tool result.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatalf("expected content in tool result")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func TestAdd(t *testing.T) {
	r := NewRegistry(appconfig.Config{}, nil)

	cases := []struct {
		a, b float64
		want string
	}{
		{2, 3, "5"},
		{-1, 1, "0"},
		{1.5, 2.25, "3.75"},
	}
	for _, tc := range cases {
		res, err := r.Add(context.Background(), callReq(AddName, map[string]any{"a": tc.a, "b": tc.b}))
		if err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
		if got := resultText(t, res); got != tc.want {
			t.Fatalf("add(%v,%v): expected %q, got %q", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestAddMissingArgument(t *testing.T) {
	r := NewRegistry(appconfig.Config{}, nil)
	res, err := r.Add(context.Background(), callReq(AddName, map[string]any{"a": 2.0}))
	if err != nil {
		t.Fatalf("expected handled error, got: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result for missing argument")
	}
}

func TestCalculateOperations(t *testing.T) {
	r := NewRegistry(appconfig.Config{}, nil)

	cases := []struct {
		op   string
		a, b float64
		want string
	}{
		{"add", 2, 3, "5"},
		{"subtract", 2, 3, "-1"},
		{"multiply", 3, 4, "12"},
		{"divide", 5, 2, "2.5"},
	}
	for _, tc := range cases {
		res, err := r.Calculate(context.Background(), callReq(CalculateName, map[string]any{"operation": tc.op, "a": tc.a, "b": tc.b}))
		if err != nil {
			t.Fatalf("Calculate(%s) returned error: %v", tc.op, err)
		}
		if got := resultText(t, res); got != tc.want {
			t.Fatalf("calculate(%s,%v,%v): expected %q, got %q", tc.op, tc.a, tc.b, tc.want, got)
		}
	}
}

func TestCalculateDivideByZero(t *testing.T) {
	r := NewRegistry(appconfig.Config{}, nil)
	res, err := r.Calculate(context.Background(), callReq(CalculateName, map[string]any{"operation": "divide", "a": 5.0, "b": 0.0}))
	if err != nil {
		t.Fatalf("expected handled condition, got error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result for division by zero")
	}
	if got := resultText(t, res); !strings.Contains(got, "cannot divide by zero") {
		t.Fatalf("expected zero-division message, got %q", got)
	}
}

func TestRegistryToolNamesUnique(t *testing.T) {
	r := NewRegistry(appconfig.Config{}, nil)
	seen := map[string]bool{}
	for _, e := range r.Entries() {
		if seen[e.Tool.Name] {
			t.Fatalf("duplicate tool name: %s", e.Tool.Name)
		}
		seen[e.Tool.Name] = true
	}
	if len(seen) != 4 {
		t.Fatalf("expected 4 tools, got %d", len(seen))
	}
}
