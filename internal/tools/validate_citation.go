package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/citation"
	"github.com/Ansvar-Systems/japan-law-mcp/internal/lawstore"
	"github.com/mark3labs/mcp-go/mcp"
)

// ValidateCitationTool handles the validate_citation MCP tool. It parses
// a citation and checks it against the corpus: does the cited law exist,
// is it still in force, and does the cited article exist within it.
type ValidateCitationTool struct {
	store  *lawstore.Store
	parser *citation.Parser
}

// NewValidateCitationTool creates a ValidateCitationTool with the given
// store and parser.
func NewValidateCitationTool(store *lawstore.Store, parser *citation.Parser) *ValidateCitationTool {
	return &ValidateCitationTool{store: store, parser: parser}
}

// Definition returns the MCP tool definition for registration.
func (t *ValidateCitationTool) Definition() mcp.Tool {
	return mcp.NewTool("validate_citation",
		mcp.WithDescription(
			"Validate a legal citation against the loaded corpus. Reports "+
				"whether the cited law resolves, whether the cited provision "+
				"exists, and warns about repealed instruments. An unparseable "+
				"or unresolvable citation produces warnings, not an error.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The citation text to validate"),
		),
	)
}

// Handle processes the validate_citation tool call.
func (t *ValidateCitationTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := strings.TrimSpace(req.GetString("text", ""))
	if text == "" {
		return mcp.NewToolResultError("'text' is required"), nil
	}

	result, err := citation.Validate(ctx, t.store, t.parser, text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("validation failed: %v", err)), nil
	}

	out, err := renderJSON(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("rendering result: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}
