package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/lawstore"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListLawsTool handles the list_laws MCP tool. It returns the corpus
// inventory, optionally filtered by lifecycle status.
type ListLawsTool struct {
	store *lawstore.Store
}

// NewListLawsTool creates a ListLawsTool backed by the given store.
func NewListLawsTool(store *lawstore.Store) *ListLawsTool {
	return &ListLawsTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ListLawsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_laws",
		mcp.WithDescription(
			"List every law loaded into the corpus with its identifier, "+
				"law number, titles, kind, and lifecycle status.",
		),
		mcp.WithString("status",
			mcp.Description("Filter by status: in_force or repealed"),
		),
	)
}

// Handle processes the list_laws tool call.
func (t *ListLawsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status := strings.TrimSpace(req.GetString("status", ""))
	if status != "" && status != "in_force" && status != "repealed" {
		return mcp.NewToolResultError(fmt.Sprintf(
			"unknown status %q: use in_force or repealed", status)), nil
	}

	laws, err := t.store.ListLaws(ctx, status)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing laws failed: %v", err)), nil
	}
	if len(laws) == 0 {
		return mcp.NewToolResultText("The corpus is empty. Load laws with the lawdb CLI."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Corpus Inventory (%d laws)\n\n", len(laws)))
	sb.WriteString("| ID | Title | Kind | Status |\n")
	sb.WriteString("|----|-------|------|--------|\n")
	for _, l := range laws {
		title := l.Title
		if l.TitleEN != "" {
			title = fmt.Sprintf("%s (%s)", l.TitleEN, l.Title)
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", l.ID, title, l.Kind, l.Status))
	}
	return mcp.NewToolResultText(strings.TrimRight(sb.String(), "\n")), nil
}
