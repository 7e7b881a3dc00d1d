package citation

import (
	"context"
	"fmt"
)

// Document is the metadata a Lookup returns for a resolved law.
type Document struct {
	ID      string
	Title   string
	TitleEN string
	Status  string // in_force, amended, or repealed
}

// Lookup is the document/provision store capability the validator needs.
// Implementations resolve a free-form identifier or title fragment to at
// most one document, and answer provision-existence queries for a resolved
// document and a normalized article digit string.
type Lookup interface {
	// ResolveDocument returns (nil, nil) when nothing matches.
	ResolveDocument(ctx context.Context, query string) (*Document, error)
	ProvisionExists(ctx context.Context, documentID, article string) (bool, error)
}

// ValidationResult wraps a parsed citation with existence facts from the
// document store. Built fresh per call; warnings are ordered: parse
// problems first, then document-level, then provision-level.
type ValidationResult struct {
	Citation        ParsedCitation `json:"citation"`
	DocumentExists  bool           `json:"document_exists"`
	ProvisionExists bool           `json:"provision_exists"`
	DocumentTitle   string         `json:"document_title,omitempty"`
	Status          string         `json:"status,omitempty"`
	Warnings        []string       `json:"warnings,omitempty"`
}

// Validate parses a raw citation and checks it against the store. Parse
// failures and not-found conditions are reported as warnings, not errors;
// the only error return is a failing lookup collaborator, since no
// meaningful result exists without it.
func Validate(ctx context.Context, lookup Lookup, parser *Parser, text string) (*ValidationResult, error) {
	parsed := parser.Parse(text)
	result := &ValidationResult{Citation: parsed}

	if !parsed.Valid {
		result.Warnings = append(result.Warnings, parsed.Error)
		return result, nil
	}

	doc, err := lookup.ResolveDocument(ctx, lookupQuery(parsed))
	if err != nil {
		return nil, fmt.Errorf("citation: resolve document: %w", err)
	}
	if doc == nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("document not found: %s", citedName(parsed)))
		return result, nil
	}

	result.DocumentExists = true
	result.DocumentTitle = doc.Title
	if result.DocumentTitle == "" {
		result.DocumentTitle = doc.TitleEN
	}
	result.Status = doc.Status
	if doc.Status == "repealed" {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("document %q has been repealed", result.DocumentTitle))
	}

	if parsed.Article != "" {
		exists, err := lookup.ProvisionExists(ctx, doc.ID, parsed.Article)
		if err != nil {
			return nil, fmt.Errorf("citation: check provision: %w", err)
		}
		result.ProvisionExists = exists
		if !exists {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("provision not found: article %s of %q", parsed.Article, result.DocumentTitle))
		}
	}

	return result, nil
}

// lookupQuery picks the strongest resolution key the citation offers:
// the act identifier when present, then the native title, then the
// English title.
func lookupQuery(c ParsedCitation) string {
	switch {
	case c.LawNumber != "":
		return c.LawNumber
	case c.Title != "":
		return c.Title
	default:
		return c.TitleEN
	}
}

func citedName(c ParsedCitation) string {
	if name := lookupQuery(c); name != "" {
		return name
	}
	return "(unnamed)"
}
