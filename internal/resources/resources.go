// Package resources implements MCP resource handlers for the legislation
// server.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (lawdb://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/lawstore"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler manages corpus resource endpoints.
type Handler struct {
	store *lawstore.Store
}

// NewHandler creates a resource Handler backed by the given store.
func NewHandler(store *lawstore.Store) *Handler {
	return &Handler{store: store}
}

// corpusStatus is the JSON shape of the status resource.
type corpusStatus struct {
	Laws       int            `json:"laws"`
	Provisions int            `json:"provisions"`
	Inventory  []lawstore.Law `json:"inventory,omitempty"`
}

// StatusResource returns the MCP resource definition for corpus status.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		"lawdb://corpus/status",
		"Legislation Corpus Status",
		mcp.WithResourceDescription("Loaded law and provision counts plus the corpus inventory"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleStatus returns the current corpus status as JSON.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	laws, provisions, err := h.store.Counts(ctx)
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	status := corpusStatus{Laws: laws, Provisions: provisions}
	status.Inventory, err = h.store.ListLaws(ctx, "")
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling status: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
