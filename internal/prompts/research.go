// Package prompts implements MCP prompt handlers for the legislation
// server.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ResearchPrompt handles the law-research MCP prompt. It guides the AI
// through a structured legal research workflow: search, read, cite,
// validate.
type ResearchPrompt struct{}

// NewResearchPrompt creates a ResearchPrompt.
func NewResearchPrompt() *ResearchPrompt {
	return &ResearchPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ResearchPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("law-research",
		mcp.WithPromptDescription(
			"Research a question of Japanese law. Walks through searching "+
				"the corpus, reading the relevant provisions, and producing "+
				"validated citations.",
		),
		mcp.WithArgument("question",
			mcp.ArgumentDescription("The legal question to research"),
		),
		mcp.WithArgument("style",
			mcp.ArgumentDescription(
				"Citation style for the answer: full, short, pinpoint, or japanese. Default: full",
			),
		),
	)
}

// Handle processes the law-research prompt request.
func (p *ResearchPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	question := "the legal question I give you next"
	if args := req.Params.Arguments; args != nil {
		if q, ok := args["question"]; ok && q != "" {
			question = q
		}
	}

	style := "full"
	if args := req.Params.Arguments; args != nil {
		if s, ok := args["style"]; ok && s != "" {
			style = s
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Research: %s", question),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Research the following question of Japanese law: %s\n\n"+
						"Please:\n"+
						"1. Run `search_law` with terms drawn from the question (try both English and Japanese)\n"+
						"2. For each relevant hit, run `get_provision` to read the full article text\n"+
						"3. Answer the question, citing every provision you rely on\n"+
						"4. Run `validate_citation` on each citation you produce and flag any warnings\n"+
						"5. Render the final citations with `format_citation` in '%s' style\n\n"+
						"Quote provision text verbatim where it matters; do not paraphrase statutory language.",
					question, style,
				)),
			},
		},
	}, nil
}
