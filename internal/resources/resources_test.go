package resources

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/lawstore"
	"github.com/mark3labs/mcp-go/mcp"
)

func testStore(t *testing.T) *lawstore.Store {
	t.Helper()
	store, err := lawstore.Open(lawstore.Config{Path: filepath.Join(t.TempDir(), "laws.db")})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestHandleStatus_EmptyCorpus(t *testing.T) {
	h := NewHandler(testStore(t))

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "lawdb://corpus/status"

	contents, err := h.HandleStatus(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleStatus failed: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("expected one resource content, got %d", len(contents))
	}

	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("expected TextResourceContents, got %T", contents[0])
	}
	if !strings.Contains(tc.Text, `"laws": 0`) {
		t.Errorf("empty corpus should report zero laws, got: %s", tc.Text)
	}
}

func TestHandleStatus_CountsAndInventory(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	law := lawstore.Law{
		ID:     "act-57-2003",
		Kind:   "statute",
		Title:  "個人情報の保護に関する法律",
		Status: "in_force",
	}
	if err := store.UpsertLaw(ctx, law); err != nil {
		t.Fatalf("seed law: %v", err)
	}
	provisions := []lawstore.Provision{
		{Ref: "art-1", Article: "1", Body: "目的規定"},
	}
	if err := store.ReplaceProvisions(ctx, law.ID, provisions); err != nil {
		t.Fatalf("seed provisions: %v", err)
	}

	h := NewHandler(store)
	req := mcp.ReadResourceRequest{}
	req.Params.URI = "lawdb://corpus/status"

	contents, err := h.HandleStatus(ctx, req)
	if err != nil {
		t.Fatalf("HandleStatus failed: %v", err)
	}

	tc := contents[0].(mcp.TextResourceContents)
	if !strings.Contains(tc.Text, `"laws": 1`) {
		t.Errorf("should count one law, got: %s", tc.Text)
	}
	if !strings.Contains(tc.Text, `"provisions": 1`) {
		t.Errorf("should count one provision, got: %s", tc.Text)
	}
	if !strings.Contains(tc.Text, "act-57-2003") {
		t.Error("inventory should list the seeded law")
	}
}
