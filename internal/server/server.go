// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it opens the corpus store, builds the
// citation parser, and injects them into the tools/prompts/resources
// that depend on them. No business logic lives here — only wiring.
package server

import (
	"fmt"
	"log"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/citation"
	"github.com/Ansvar-Systems/japan-law-mcp/internal/config"
	"github.com/Ansvar-Systems/japan-law-mcp/internal/lawstore"
	"github.com/Ansvar-Systems/japan-law-mcp/internal/prompts"
	"github.com/Ansvar-Systems/japan-law-mcp/internal/resources"
	"github.com/Ansvar-Systems/japan-law-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
//
// The returned cleanup function closes the corpus database connection
// and must be called on shutdown (typically via defer). It is always
// non-nil.
func New(cfg config.Config) (*server.MCPServer, func(), error) {
	// --- Create shared dependencies ---

	store, err := lawstore.Open(lawstore.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, noop, fmt.Errorf("opening corpus store: %w", err)
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			log.Printf("WARNING: corpus store close: %v", err)
		}
	}

	parser := citation.NewParser()

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"japan-law-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register corpus tools ---

	searchTool := tools.NewSearchLawTool(store)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	provisionTool := tools.NewGetProvisionTool(store)
	s.AddTool(provisionTool.Definition(), provisionTool.Handle)

	listTool := tools.NewListLawsTool(store)
	s.AddTool(listTool.Definition(), listTool.Handle)

	euTool := tools.NewEUReferencesTool(store)
	s.AddTool(euTool.Definition(), euTool.Handle)

	// --- Register citation tools ---

	parseTool := tools.NewParseCitationTool(parser)
	s.AddTool(parseTool.Definition(), parseTool.Handle)

	formatTool := tools.NewFormatCitationTool(parser)
	s.AddTool(formatTool.Definition(), formatTool.Handle)

	validateTool := tools.NewValidateCitationTool(store, parser)
	s.AddTool(validateTool.Definition(), validateTool.Handle)

	// --- Register prompts ---

	researchPrompt := prompts.NewResearchPrompt()
	s.AddPrompt(researchPrompt.Definition(), researchPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(store)
	s.AddResource(resourceHandler.StatusResource(), resourceHandler.HandleStatus)

	return s, cleanup, nil
}

// noop is a no-op cleanup function used when store setup fails before a
// connection exists.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to use the server effectively.
func serverInstructions() string {
	return `You have access to japan-law-mcp, a Japanese legislation server.

## What it provides
A local corpus of Japanese laws (statutes, cabinet orders, ministerial
ordinances) with full-text search, provision retrieval, and citation
tooling. Article, paragraph, and item references are normalized to
Arabic digits everywhere; inputs may use Kanji numerals (第十七条),
full-width digits (第１７条), or plain Arabic forms.

## Tools
- search_law: full-text search over provisions, English or Japanese
- get_provision: read one article (or a single paragraph/item of it)
- list_laws: corpus inventory with identifiers and status
- eu_references: EU cross-references (CELEX) recorded for a law
- parse_citation: normalize any supported citation grammar to JSON
- format_citation: re-render a citation (full/short/pinpoint/japanese)
- validate_citation: check a citation against the corpus

## Workflow
1. Search first. Try both English and Japanese terms — provision text
   is stored in its source language.
2. Always read the provision with get_provision before quoting it.
3. Before presenting a citation to the user, run validate_citation and
   surface any warnings (unknown law, missing provision, repealed act).
4. Quote statutory text verbatim. Do not paraphrase provision language
   when the exact wording matters.

## Citation conventions
- Canonical law identifiers look like act-57-2003 (Act No. 57 of 2003).
- Branch articles use hyphens: article 23-2 is 第二十三条の二.
- An invalid parse is not a failure: parse_citation returns
  valid=false with an error naming the input.`
}
