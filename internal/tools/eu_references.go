package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/lawstore"
	"github.com/mark3labs/mcp-go/mcp"
)

// EUReferencesTool handles the eu_references MCP tool. It returns the
// EU-law cross-references recorded for a law, such as the adequacy
// decision covering personal data transfers.
type EUReferencesTool struct {
	store *lawstore.Store
}

// NewEUReferencesTool creates an EUReferencesTool backed by the given store.
func NewEUReferencesTool(store *lawstore.Store) *EUReferencesTool {
	return &EUReferencesTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *EUReferencesTool) Definition() mcp.Tool {
	return mcp.NewTool("eu_references",
		mcp.WithDescription(
			"List the EU-law cross-references recorded for a Japanese law: "+
				"CELEX numbers of adequacy decisions, implemented instruments, "+
				"and related acts.",
		),
		mcp.WithString("law",
			mcp.Required(),
			mcp.Description("Law identifier, law number, or title"),
		),
	)
}

// Handle processes the eu_references tool call.
func (t *EUReferencesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	law := strings.TrimSpace(req.GetString("law", ""))
	if law == "" {
		return mcp.NewToolResultError("'law' is required"), nil
	}

	doc, err := t.store.ResolveDocument(ctx, law)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("law lookup failed: %v", err)), nil
	}
	if doc == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no law matches %q", law)), nil
	}

	refs, err := t.store.EUReferences(ctx, doc.ID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reference lookup failed: %v", err)), nil
	}
	if len(refs) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"%s has no recorded EU references.", doc.Title)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## EU References for %s\n\n", doc.Title))
	sb.WriteString("| CELEX | Kind | Note |\n")
	sb.WriteString("|-------|------|------|\n")
	for _, r := range refs {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", r.CELEX, r.Kind, r.Note))
	}
	return mcp.NewToolResultText(strings.TrimRight(sb.String(), "\n")), nil
}
