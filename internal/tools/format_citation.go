package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/citation"
	"github.com/mark3labs/mcp-go/mcp"
)

// FormatCitationTool handles the format_citation MCP tool. It re-renders
// a citation in one of the supported output styles.
type FormatCitationTool struct {
	parser *citation.Parser
}

// NewFormatCitationTool creates a FormatCitationTool with the given parser.
func NewFormatCitationTool(parser *citation.Parser) *FormatCitationTool {
	return &FormatCitationTool{parser: parser}
}

// Definition returns the MCP tool definition for registration.
func (t *FormatCitationTool) Definition() mcp.Tool {
	return mcp.NewTool("format_citation",
		mcp.WithDescription(
			"Parse a citation and re-render it in a chosen style: 'full' "+
				"(Article 17(1), Name (Act No. 57 of 2003)), 'short' "+
				"(Art. 17(1), Name), 'pinpoint' (Art. 17(1)), or 'japanese' "+
				"(第十七条第一項 with the native title).",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The citation text to reformat"),
		),
		mcp.WithString("style",
			mcp.Description("Output style: full (default), short, pinpoint, or japanese"),
		),
	)
}

// Handle processes the format_citation tool call.
func (t *FormatCitationTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := strings.TrimSpace(req.GetString("text", ""))
	if text == "" {
		return mcp.NewToolResultError("'text' is required"), nil
	}
	style := citation.Style(req.GetString("style", string(citation.StyleFull)))

	parsed := t.parser.Parse(text)
	if !parsed.Valid {
		return mcp.NewToolResultError(parsed.Error), nil
	}

	formatted := citation.Format(parsed, style)
	if formatted == "" {
		return mcp.NewToolResultError(fmt.Sprintf(
			"citation %q has no article reference to format", text)), nil
	}
	return mcp.NewToolResultText(formatted), nil
}
