// Package tools implements the MCP tool handlers for the legislation
// server.
//
// Each tool is a struct that receives its dependencies (lawstore.Store,
// citation.Parser) at construction and exposes a Definition for
// registration plus a Handle compatible with mcp-go's CallToolRequest
// signature. One file per tool.
package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/lawstore"
	"github.com/mark3labs/mcp-go/mcp"
)

// intArg reads a numeric argument. JSON numbers arrive as float64.
func intArg(req mcp.CallToolRequest, key string, def int) int {
	raw, ok := req.GetArguments()[key]
	if !ok {
		return def
	}
	f, ok := raw.(float64)
	if !ok {
		return def
	}
	return int(f)
}

// renderJSON pretty-prints a result structure for tool output.
func renderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding result: %w", err)
	}
	return string(data), nil
}

// provisionHeading renders "Article 17, paragraph 1, item 2" style
// pinpoint headings for markdown output.
func provisionHeading(article, paragraph, item string) string {
	var sb strings.Builder
	sb.WriteString("Article " + article)
	if paragraph != "" {
		sb.WriteString(", paragraph " + paragraph)
	}
	if item != "" {
		sb.WriteString(", item " + item)
	}
	return sb.String()
}

// writeProvision appends one provision as a markdown block.
func writeProvision(sb *strings.Builder, p lawstore.Provision) {
	sb.WriteString("### " + provisionHeading(p.Article, p.Paragraph, p.Item) + "\n\n")
	if p.Caption != "" {
		sb.WriteString(fmt.Sprintf("*(%s)*\n\n", p.Caption))
	}
	sb.WriteString(p.Body + "\n\n")
}
