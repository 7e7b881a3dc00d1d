package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/lawstore"
)

func testStore(t *testing.T) *lawstore.Store {
	t.Helper()
	s, err := lawstore.Open(lawstore.Config{Path: filepath.Join(t.TempDir(), "laws.db")})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestClient_LawData(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(sampleLawXML))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(1000))
	data, err := c.LawData(context.Background(), "415AC0000000057")
	if err != nil {
		t.Fatalf("LawData failed: %v", err)
	}
	if gotPath != "/lawdata/415AC0000000057" {
		t.Errorf("path = %q", gotPath)
	}
	if !strings.Contains(string(data), "個人情報の保護に関する法律") {
		t.Error("response body not returned")
	}

	if _, err := c.LawData(context.Background(), ""); err == nil {
		t.Error("expected error for empty law id")
	}
}

func TestClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(1000))
	if _, err := c.LawData(context.Background(), "x"); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestImporter_ImportLaws(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/bad") {
			http.Error(w, "missing", http.StatusNotFound)
			return
		}
		w.Write([]byte(sampleLawXML))
	}))
	defer srv.Close()

	store := testStore(t)
	im := NewImporter(store, NewClient(WithBaseURL(srv.URL), WithRateLimit(1000)))

	result, err := im.ImportLaws(context.Background(), []string{"415AC0000000057", "bad"})
	if err != nil {
		t.Fatalf("ImportLaws failed: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("Imported = %d, want 1", result.Imported)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "bad") {
		t.Errorf("Errors = %v, want one entry naming the bad law", result.Errors)
	}
	if result.BatchID == "" {
		t.Error("BatchID is empty")
	}

	doc, err := store.ResolveDocument(context.Background(), "act-57-2003")
	if err != nil || doc == nil {
		t.Fatalf("imported law not resolvable: %v, %v", doc, err)
	}

	exists, err := store.ProvisionExists(context.Background(), "act-57-2003", "23")
	if err != nil {
		t.Fatalf("ProvisionExists failed: %v", err)
	}
	if !exists {
		t.Error("branch article 23-2 should satisfy prefix match for 23")
	}
}

func TestImporter_LoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "appi.xml"), []byte(sampleLawXML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.xml"), []byte("<Law/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := testStore(t)
	im := NewImporter(store, nil)

	result, err := im.LoadDir(context.Background(), dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("Imported = %d, want 1", result.Imported)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "broken.xml") {
		t.Errorf("Errors = %v, want one for broken.xml", result.Errors)
	}

	// Re-loading the same directory upserts rather than duplicating.
	if _, err := im.LoadDir(context.Background(), dir); err != nil {
		t.Fatalf("second LoadDir failed: %v", err)
	}
	laws, err := store.ListLaws(context.Background(), "")
	if err != nil {
		t.Fatalf("ListLaws failed: %v", err)
	}
	if len(laws) != 1 {
		t.Errorf("len(laws) = %d, want 1", len(laws))
	}
}
