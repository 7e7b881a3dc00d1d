package ingest

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/lawstore"
)

// Importer loads parsed law documents into the store.
type Importer struct {
	store  *lawstore.Store
	client *Client
}

// NewImporter creates an Importer. The client may be nil when only local
// files are loaded.
func NewImporter(store *lawstore.Store, client *Client) *Importer {
	return &Importer{store: store, client: client}
}

// Result summarizes one ingestion run. Errors holds per-law failures —
// one bad law does not abort the batch.
type Result struct {
	BatchID  string   `json:"batch_id"`
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportLaws fetches each law from the e-Gov API and loads it.
func (im *Importer) ImportLaws(ctx context.Context, lawIDs []string) (*Result, error) {
	if im.client == nil {
		return nil, fmt.Errorf("ingest: no API client configured")
	}

	result := &Result{BatchID: uuid.NewString()}
	for _, id := range lawIDs {
		data, err := im.client.LawData(ctx, id)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", id, err))
			continue
		}
		if err := im.loadDocument(ctx, data); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", id, err))
			continue
		}
		result.Imported++
	}

	return result, im.finish(ctx, result, "e-gov")
}

// LoadDir loads every .xml file under dir.
func (im *Importer) LoadDir(ctx context.Context, dir string) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ingest: read dir: %w", err)
	}

	result := &Result{BatchID: uuid.NewString()}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", entry.Name(), err))
			continue
		}
		if err := im.loadDocument(ctx, data); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", entry.Name(), err))
			continue
		}
		result.Imported++
	}

	return result, im.finish(ctx, result, dir)
}

func (im *Importer) loadDocument(ctx context.Context, data []byte) error {
	doc, err := ParseLawXML(data)
	if err != nil {
		return err
	}
	if err := im.store.UpsertLaw(ctx, doc.Law); err != nil {
		return err
	}
	if err := im.store.ReplaceProvisions(ctx, doc.Law.ID, doc.Provisions); err != nil {
		return err
	}
	log.Printf("ingest: loaded %s (%s, %d provisions)", doc.Law.ID, doc.Law.Title, len(doc.Provisions))
	return nil
}

func (im *Importer) finish(ctx context.Context, result *Result, source string) error {
	return im.store.RecordImportBatch(ctx, lawstore.ImportBatch{
		ID:       result.BatchID,
		Source:   source,
		LawCount: result.Imported,
	})
}
