package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/citation"
	"github.com/mark3labs/mcp-go/mcp"
)

// ParseCitationTool handles the parse_citation MCP tool. It normalizes a
// citation in any supported grammar into the canonical structure.
type ParseCitationTool struct {
	parser *citation.Parser
}

// NewParseCitationTool creates a ParseCitationTool with the given parser.
func NewParseCitationTool(parser *citation.Parser) *ParseCitationTool {
	return &ParseCitationTool{parser: parser}
}

// Definition returns the MCP tool definition for registration.
func (t *ParseCitationTool) Definition() mcp.Tool {
	return mcp.NewTool("parse_citation",
		mcp.WithDescription(
			"Parse a Japanese legal citation into structured form. Accepts "+
				"native grammar (個人情報保護法第17条第1項, Kanji or Arabic "+
				"numerals), English grammar (Article 17, paragraph 1, Act on "+
				"the Protection of Personal Information (Act No. 57 of 2003)), "+
				"and act identifiers (act-57-2003, art. 17). Article, paragraph, "+
				"and item come back as Arabic digit strings.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The citation text to parse"),
		),
	)
}

// Handle processes the parse_citation tool call.
//
// An unrecognized citation is a normal outcome, not a tool error: the
// result carries valid=false and an error field naming the input.
func (t *ParseCitationTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := strings.TrimSpace(req.GetString("text", ""))
	if text == "" {
		return mcp.NewToolResultError("'text' is required"), nil
	}

	parsed := t.parser.Parse(text)
	out, err := renderJSON(parsed)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("rendering result: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}
