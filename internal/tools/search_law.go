package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/lawstore"
	"github.com/mark3labs/mcp-go/mcp"
)

// SearchLawTool handles the search_law MCP tool. It runs a full-text
// query over provision captions and bodies across the whole corpus.
type SearchLawTool struct {
	store *lawstore.Store
}

// NewSearchLawTool creates a SearchLawTool backed by the given store.
func NewSearchLawTool(store *lawstore.Store) *SearchLawTool {
	return &SearchLawTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *SearchLawTool) Definition() mcp.Tool {
	return mcp.NewTool("search_law",
		mcp.WithDescription(
			"Full-text search across Japanese legislation provisions. "+
				"Accepts English or Japanese queries and returns matching "+
				"provisions with their law, article, and paragraph references.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search terms, in English or Japanese"),
		),
		mcp.WithString("law",
			mcp.Description("Optional law to search within: identifier, law number, or title"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 10, max 50)"),
		),
	)
}

// Handle processes the search_law tool call.
func (t *SearchLawTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := strings.TrimSpace(req.GetString("query", ""))
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}
	limit := intArg(req, "limit", lawstore.DefaultSearchLimit)

	// Optional scoping to one law, resolved like get_provision resolves it.
	lawID := ""
	if law := strings.TrimSpace(req.GetString("law", "")); law != "" {
		doc, err := t.store.ResolveDocument(ctx, law)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("law lookup failed: %v", err)), nil
		}
		if doc == nil {
			return mcp.NewToolResultError(fmt.Sprintf("no law matches %q", law)), nil
		}
		lawID = doc.ID
	}

	hits, err := t.store.SearchProvisions(ctx, query, lawID, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	if len(hits) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No provisions match %q.", query)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Search Results for %q\n\n", query))
	sb.WriteString(fmt.Sprintf("%d provision(s) found.\n\n", len(hits)))
	for _, h := range hits {
		sb.WriteString(fmt.Sprintf("### %s — %s\n\n", h.LawTitle,
			provisionHeading(h.Article, h.Paragraph, h.Item)))
		sb.WriteString(fmt.Sprintf("**Law ID:** %s | **Ref:** %s\n\n", h.LawID, h.Ref))
		if h.Caption != "" {
			sb.WriteString(fmt.Sprintf("*(%s)*\n\n", h.Caption))
		}
		sb.WriteString(h.Body + "\n\n")
	}
	return mcp.NewToolResultText(strings.TrimRight(sb.String(), "\n")), nil
}
