// cmd/blogsmith-mcp/main.go
package main

import (
	cmd "blogsmith-mcp/internal/commands"
)

// main starts the blogsmith-mcp CLI by delegating to the cobra root command.
func main() {
	cmd.Execute()
}
