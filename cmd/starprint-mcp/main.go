package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Deltawerks/starprint/internal/adapters/api"
	mcpadapter "github.com/Deltawerks/starprint/internal/adapters/mcp"
	"github.com/Deltawerks/starprint/internal/config"
)

func main() {
	serverFlag := flag.String("server", config.Default().ServerURL, "base URL of the StarPrint data service")
	flag.Parse()

	backend := api.New(*serverFlag)

	mcpServer := server.NewMCPServer(
		"starprint-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, backend)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("starprint-mcp: %v", err)
	}
}
