package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Deltawerks/starprint/internal/domain"
	"github.com/Deltawerks/starprint/internal/ports"
)

// RegisterTools adds all catalog tools to the MCP server. They share the
// same backend client the TUI uses.
func RegisterTools(s *server.MCPServer, backend ports.Backend) {
	s.AddTool(statusTool(), statusHandler(backend))
	s.AddTool(categoriesTool(), categoriesHandler(backend))
	s.AddTool(itemsTool(), itemsHandler(backend))
	s.AddTool(searchTool(), searchHandler(backend))
	s.AddTool(generateThumbnailsTool(), generateThumbnailsHandler(backend))
	s.AddTool(exportTool(), exportHandler(backend))
}

// --- status ---

func statusTool() mcp.Tool {
	return mcp.NewTool("status",
		mcp.WithDescription("Report whether the StarPrint service has a game data path loaded."),
	)
}

func statusHandler(backend ports.Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		status, err := backend.Status(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "configured: %v\n", status.Configured)
		if status.GamePath != "" {
			fmt.Fprintf(&sb, "game path: %s\n", status.GamePath)
		}
		if status.Version != "" {
			fmt.Fprintf(&sb, "version: %s\n", status.Version)
		}
		if status.Loading {
			sb.WriteString("loading: game data is still being read\n")
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- categories ---

func categoriesTool() mcp.Tool {
	return mcp.NewTool("categories",
		mcp.WithDescription("Display the item category tree. Leaf paths are valid arguments for the items tool."),
	)
}

func categoriesHandler(backend ports.Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		roots, err := backend.Categories(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, root := range roots {
			renderTree(&sb, root, "")
		}
		if sb.Len() == 0 {
			return mcp.NewToolResultText("No categories."), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node *domain.CategoryNode, prefix string) {
	if node.IsLeaf() {
		fmt.Fprintf(sb, "%s%s  [%s]\n", prefix, node.Name, node.Path)
	} else {
		fmt.Fprintf(sb, "%s%s\n", prefix, node.Name)
	}
	for _, child := range node.Children {
		renderTree(sb, child, prefix+"  ")
	}
}

// --- items ---

func itemsTool() mcp.Tool {
	return mcp.NewTool("items",
		mcp.WithDescription("List the items of a leaf category."),
		mcp.WithString("path",
			mcp.Description("Leaf category path (e.g. ships/aegis::AEGS)"),
			mcp.Required(),
		),
	)
}

func itemsHandler(backend ports.Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		items, err := backend.Items(ctx, path)
		if err != nil {
			return toolError(err)
		}
		return formatItems(items, "No items found in this category.")
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search all items by free text. Matches names and internal names."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(backend ports.Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		items, err := backend.Search(ctx, query)
		if err != nil {
			return toolError(err)
		}
		return formatItems(items, "No results found.")
	}
}

// --- generate_thumbnails ---

func generateThumbnailsTool() mcp.Tool {
	return mcp.NewTool("generate_thumbnails",
		mcp.WithDescription("Render thumbnails for every item in a category. Long-running; exports and renders each item server-side."),
		mcp.WithString("path",
			mcp.Description("Leaf category path"),
			mcp.Required(),
		),
	)
}

func generateThumbnailsHandler(backend ports.Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		report, err := backend.GenerateThumbnails(ctx, path)
		if err != nil {
			return toolError(err)
		}
		if !report.Complete() {
			return toolError(fmt.Errorf("thumbnail generation ended with status %q", report.Status))
		}
		return mcp.NewToolResultText(fmt.Sprintf(
			"Thumbnails generated: %d new, %d cached, %d failed",
			report.Generated, report.Skipped, report.Failed)), nil
	}
}

// --- export ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export",
		mcp.WithDescription("Convert an item to OBJ server-side. Returns the download and preview URLs."),
		mcp.WithString("id",
			mcp.Description("Item ID as returned by the items or search tools"),
			mcp.Required(),
		),
	)
}

func exportHandler(backend ports.Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		result, err := backend.Export(ctx, id)
		if err != nil {
			return toolError(err)
		}
		if !result.Succeeded() {
			if result.Message != "" {
				return toolError(fmt.Errorf("export failed: %s", result.Message))
			}
			return toolError(fmt.Errorf("export failed"))
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "exported: %s\n", result.Name)
		fmt.Fprintf(&sb, "file: %s\n", result.Filename())
		fmt.Fprintf(&sb, "download: %s\n", result.DownloadURL)
		if result.PreviewURL != "" {
			fmt.Fprintf(&sb, "preview: %s\n", result.PreviewURL)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatItems(items []domain.Item, empty string) (*mcp.CallToolResult, error) {
	if len(items) == 0 {
		return mcp.NewToolResultText(empty), nil
	}
	var sb strings.Builder
	for _, it := range items {
		fmt.Fprintf(&sb, "%s  %s", it.ID, it.Name)
		if it.TypeLabel() != "" {
			fmt.Fprintf(&sb, "  (%s)", it.TypeLabel())
		}
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}
