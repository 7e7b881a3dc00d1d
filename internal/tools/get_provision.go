package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/lawstore"
	"github.com/Ansvar-Systems/japan-law-mcp/internal/numeral"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetProvisionTool handles the get_provision MCP tool. It resolves a law
// by identifier or name and returns the text of one article, optionally
// narrowed to a paragraph or item.
type GetProvisionTool struct {
	store *lawstore.Store
}

// NewGetProvisionTool creates a GetProvisionTool backed by the given store.
func NewGetProvisionTool(store *lawstore.Store) *GetProvisionTool {
	return &GetProvisionTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *GetProvisionTool) Definition() mcp.Tool {
	return mcp.NewTool("get_provision",
		mcp.WithDescription(
			"Fetch the text of a specific provision. The law is resolved by "+
				"act identifier (act-57-2003), law number, or title in either "+
				"language. Article, paragraph, and item accept Arabic digits "+
				"or native forms like 第十七条.",
		),
		mcp.WithString("law",
			mcp.Required(),
			mcp.Description("Law identifier, law number, or title"),
		),
		mcp.WithString("article",
			mcp.Required(),
			mcp.Description("Article reference, e.g. 17, 23-2, or 第十七条"),
		),
		mcp.WithString("paragraph",
			mcp.Description("Paragraph number, e.g. 1 or 第一項"),
		),
		mcp.WithString("item",
			mcp.Description("Item number, e.g. 2 or 第二号"),
		),
	)
}

// Handle processes the get_provision tool call.
func (t *GetProvisionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	law := strings.TrimSpace(req.GetString("law", ""))
	if law == "" {
		return mcp.NewToolResultError("'law' is required"), nil
	}
	article := numeral.ParseArticleRef(req.GetString("article", ""))
	if article == "" {
		return mcp.NewToolResultError("'article' is required"), nil
	}
	paragraph := numeral.ParseParagraphRef(req.GetString("paragraph", ""))
	item := numeral.ParseItemRef(req.GetString("item", ""))

	doc, err := t.store.ResolveDocument(ctx, law)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("law lookup failed: %v", err)), nil
	}
	if doc == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no law matches %q", law)), nil
	}

	// A bare article request returns every paragraph and item of the
	// article; a narrowed request returns the single unit.
	var provisions []lawstore.Provision
	if paragraph == "" && item == "" {
		provisions, err = t.store.ArticleProvisions(ctx, doc.ID, article)
	} else {
		var p *lawstore.Provision
		p, err = t.store.GetProvision(ctx, doc.ID, article, paragraph, item)
		if p != nil {
			provisions = []lawstore.Provision{*p}
		}
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("provision lookup failed: %v", err)), nil
	}
	if len(provisions) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf(
			"%s has no %s", doc.Title, provisionHeading(article, paragraph, item))), nil
	}

	var sb strings.Builder
	title := doc.Title
	if doc.TitleEN != "" {
		title = fmt.Sprintf("%s (%s)", doc.TitleEN, doc.Title)
	}
	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	sb.WriteString(fmt.Sprintf("**Law ID:** %s | **Status:** %s\n\n", doc.ID, doc.Status))
	for _, p := range provisions {
		writeProvision(&sb, p)
	}
	return mcp.NewToolResultText(strings.TrimRight(sb.String(), "\n")), nil
}
