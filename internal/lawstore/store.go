// Package lawstore implements the persistent legislation corpus for
// japan-law-mcp.
//
// It uses SQLite with FTS5 full-text search to store laws, their
// provisions, and EU cross-reference metadata. The store implements
// citation.Lookup, so the citation validator can run against it directly.
package lawstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/citation"

	_ "modernc.org/sqlite"
)

// ─── Types ───────────────────────────────────────────────────────────────────

// Law is one legislative instrument in the corpus.
type Law struct {
	ID            string `json:"id"` // canonical act-<number>-<year> identifier
	LawNumber     string `json:"law_number,omitempty"`
	ActNumber     int    `json:"act_number,omitempty"`
	ActYear       int    `json:"act_year,omitempty"`
	Kind          string `json:"kind"`
	Title         string `json:"title"`
	TitleEN       string `json:"title_en,omitempty"`
	Status        string `json:"status"` // in_force, amended, repealed
	PromulgatedOn string `json:"promulgated_on,omitempty"`
}

// Provision is one article/paragraph/item unit of a law. Ref follows the
// art-<n> convention ("art-17", "art-17-2" for branch articles).
type Provision struct {
	ID        int64  `json:"id"`
	LawID     string `json:"law_id"`
	Ref       string `json:"ref"`
	Article   string `json:"article"`
	Paragraph string `json:"paragraph,omitempty"`
	Item      string `json:"item,omitempty"`
	Caption   string `json:"caption,omitempty"`
	Body      string `json:"body"`
}

// EUReference links a law to an EU instrument by CELEX number.
// Kind distinguishes adequacy decisions from ordinary cross-references.
type EUReference struct {
	ID    int64  `json:"id"`
	LawID string `json:"law_id"`
	CELEX string `json:"celex"`
	Kind  string `json:"kind"` // adequacy_decision, implements, related
	Note  string `json:"note,omitempty"`
}

// SearchHit is a provision matched by full-text search, with its law title
// for display.
type SearchHit struct {
	Provision
	LawTitle string `json:"law_title"`
}

// ImportBatch records one corpus ingestion run.
type ImportBatch struct {
	ID         string `json:"id"`
	Source     string `json:"source"`
	LawCount   int    `json:"law_count"`
	StartedAt  string `json:"started_at,omitempty"`
	FinishedAt string `json:"finished_at,omitempty"`
}

// ─── Config ──────────────────────────────────────────────────────────────────

// Config holds store configuration.
type Config struct {
	// Path is the SQLite database file. The parent directory is created
	// if needed.
	Path string
}

// DefaultConfig places the corpus database under the user's home directory.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{Path: filepath.Join(home, ".japan-law-mcp", "laws.db")}
}

// ─── Store ───────────────────────────────────────────────────────────────────

// Store is the corpus database handle. Safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the corpus database, applies the
// SQLite pragmas, and runs migrations.
func Open(cfg Config) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("lawstore: create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("lawstore: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("lawstore: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("lawstore: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ─── Migrations ──────────────────────────────────────────────────────────────

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS laws (
			id             TEXT PRIMARY KEY,
			law_number     TEXT,
			act_number     INTEGER,
			act_year       INTEGER,
			kind           TEXT NOT NULL DEFAULT 'statute',
			title          TEXT NOT NULL,
			title_en       TEXT,
			title_norm     TEXT,
			title_en_norm  TEXT,
			status         TEXT NOT NULL DEFAULT 'in_force',
			promulgated_on TEXT,
			updated_at     TEXT NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_laws_title      ON laws(title_norm);
		CREATE INDEX IF NOT EXISTS idx_laws_title_en   ON laws(title_en_norm);
		CREATE INDEX IF NOT EXISTS idx_laws_law_number ON laws(law_number);

		CREATE TABLE IF NOT EXISTS provisions (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			law_id    TEXT NOT NULL,
			ref       TEXT NOT NULL,
			article   TEXT NOT NULL,
			paragraph TEXT,
			item      TEXT,
			caption   TEXT,
			body      TEXT NOT NULL,
			FOREIGN KEY (law_id) REFERENCES laws(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_prov_law     ON provisions(law_id, article);
		CREATE INDEX IF NOT EXISTS idx_prov_ref     ON provisions(law_id, ref);

		CREATE VIRTUAL TABLE IF NOT EXISTS provisions_fts USING fts5(
			caption,
			body,
			content='provisions',
			content_rowid='id'
		);

		CREATE TABLE IF NOT EXISTS eu_references (
			id     INTEGER PRIMARY KEY AUTOINCREMENT,
			law_id TEXT NOT NULL,
			celex  TEXT NOT NULL,
			kind   TEXT NOT NULL DEFAULT 'related',
			note   TEXT,
			FOREIGN KEY (law_id) REFERENCES laws(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_euref_law ON eu_references(law_id);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_euref_unique ON eu_references(law_id, celex, kind);

		CREATE TABLE IF NOT EXISTS import_batches (
			id          TEXT PRIMARY KEY,
			source      TEXT NOT NULL,
			law_count   INTEGER NOT NULL DEFAULT 0,
			started_at  TEXT NOT NULL DEFAULT (datetime('now')),
			finished_at TEXT
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// FTS triggers, created once (idempotent check via sqlite_master).
	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='trigger' AND name='prov_fts_insert'",
	).Scan(&name)
	if err == sql.ErrNoRows {
		triggers := `
			CREATE TRIGGER prov_fts_insert AFTER INSERT ON provisions BEGIN
				INSERT INTO provisions_fts(rowid, caption, body)
				VALUES (new.id, new.caption, new.body);
			END;

			CREATE TRIGGER prov_fts_delete AFTER DELETE ON provisions BEGIN
				INSERT INTO provisions_fts(provisions_fts, rowid, caption, body)
				VALUES ('delete', old.id, old.caption, old.body);
			END;

			CREATE TRIGGER prov_fts_update AFTER UPDATE ON provisions BEGIN
				INSERT INTO provisions_fts(provisions_fts, rowid, caption, body)
				VALUES ('delete', old.id, old.caption, old.body);
				INSERT INTO provisions_fts(rowid, caption, body)
				VALUES (new.id, new.caption, new.body);
			END;
		`
		if _, err := s.db.Exec(triggers); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return nil
}

// ─── Writes ──────────────────────────────────────────────────────────────────

// UpsertLaw inserts or replaces a law record. Provisions of a replaced law
// are kept; ReplaceProvisions swaps them atomically.
func (s *Store) UpsertLaw(ctx context.Context, law Law) error {
	if law.ID == "" || law.Title == "" {
		return fmt.Errorf("lawstore: law id and title are required")
	}
	if law.Kind == "" {
		law.Kind = "statute"
	}
	if law.Status == "" {
		law.Status = "in_force"
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO laws (id, law_number, act_number, act_year, kind, title, title_en,
		                  title_norm, title_en_norm, status, promulgated_on, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT(id) DO UPDATE SET
			law_number     = excluded.law_number,
			act_number     = excluded.act_number,
			act_year       = excluded.act_year,
			kind           = excluded.kind,
			title          = excluded.title,
			title_en       = excluded.title_en,
			title_norm     = excluded.title_norm,
			title_en_norm  = excluded.title_en_norm,
			status         = excluded.status,
			promulgated_on = excluded.promulgated_on,
			updated_at     = datetime('now')`,
		law.ID, nullable(law.LawNumber), law.ActNumber, law.ActYear, law.Kind,
		law.Title, nullable(law.TitleEN),
		NormalizeTitle(law.Title), nullable(NormalizeTitle(law.TitleEN)),
		law.Status, nullable(law.PromulgatedOn),
	)
	if err != nil {
		return fmt.Errorf("lawstore: upsert law %s: %w", law.ID, err)
	}
	return nil
}

// ReplaceProvisions deletes a law's provisions and inserts the given set
// in one transaction.
func (s *Store) ReplaceProvisions(ctx context.Context, lawID string, provisions []Provision) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("lawstore: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM provisions WHERE law_id = ?", lawID); err != nil {
		return fmt.Errorf("lawstore: clear provisions: %w", err)
	}
	for _, p := range provisions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO provisions (law_id, ref, article, paragraph, item, caption, body)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			lawID, p.Ref, p.Article, nullable(p.Paragraph), nullable(p.Item),
			nullable(p.Caption), p.Body,
		)
		if err != nil {
			return fmt.Errorf("lawstore: insert provision %s/%s: %w", lawID, p.Ref, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("lawstore: commit provisions: %w", err)
	}
	return nil
}

// AddEUReference records an EU cross-reference for a law. Duplicate
// (law, celex, kind) rows are ignored.
func (s *Store) AddEUReference(ctx context.Context, ref EUReference) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO eu_references (law_id, celex, kind, note)
		VALUES (?, ?, ?, ?)`,
		ref.LawID, ref.CELEX, ref.Kind, nullable(ref.Note),
	)
	if err != nil {
		return fmt.Errorf("lawstore: add eu reference: %w", err)
	}
	return nil
}

// RecordImportBatch logs one finished ingestion run.
func (s *Store) RecordImportBatch(ctx context.Context, batch ImportBatch) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO import_batches (id, source, law_count, finished_at)
		VALUES (?, ?, ?, datetime('now'))`,
		batch.ID, batch.Source, batch.LawCount,
	)
	if err != nil {
		return fmt.Errorf("lawstore: record import batch: %w", err)
	}
	return nil
}

// ─── Lookup (citation.Lookup implementation) ─────────────────────────────────

// ResolveDocument resolves a free-form identifier or title fragment to at
// most one law. Resolution order: canonical id, Japanese law number, exact
// normalized title, fuzzy title match. Returns (nil, nil) when nothing
// matches.
func (s *Store) ResolveDocument(ctx context.Context, query string) (*citation.Document, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}
	qn := NormalizeTitle(q)

	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, COALESCE(title_en, ''), status FROM laws
		WHERE id = ?1 OR law_number = ?1 OR title_norm = ?2 OR title_en_norm = ?2
		ORDER BY CASE WHEN id = ?1 THEN 0 WHEN law_number = ?1 THEN 1 ELSE 2 END
		LIMIT 1`, q, qn)

	doc, err := scanDocument(row)
	if err != nil {
		return nil, fmt.Errorf("lawstore: resolve document: %w", err)
	}
	if doc != nil {
		return doc, nil
	}

	// Fuzzy fallback: substring match on normalized titles, shortest
	// (most specific) title first.
	row = s.db.QueryRowContext(ctx, `
		SELECT id, title, COALESCE(title_en, ''), status FROM laws
		WHERE title_norm LIKE '%' || ?1 || '%' OR title_en_norm LIKE '%' || ?1 || '%'
		ORDER BY length(title) LIMIT 1`, qn)

	doc, err = scanDocument(row)
	if err != nil {
		return nil, fmt.Errorf("lawstore: resolve document: %w", err)
	}
	return doc, nil
}

// ProvisionExists reports whether a law has a provision matching the
// normalized article digit string: by art-<n> ref, by exact article field,
// or by ref prefix (so "17" also matches branch articles like art-17-2).
func (s *Store) ProvisionExists(ctx context.Context, lawID, article string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(1) FROM provisions
		WHERE law_id = ?1
		  AND (ref = 'art-' || ?2 OR article = ?2 OR ref LIKE 'art-' || ?2 || '-%')`,
		lawID, article,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("lawstore: provision exists: %w", err)
	}
	return n > 0, nil
}

func scanDocument(row *sql.Row) (*citation.Document, error) {
	var doc citation.Document
	err := row.Scan(&doc.ID, &doc.Title, &doc.TitleEN, &doc.Status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// NormalizeTitle folds a law title for comparison: NFKC (full-width and
// compatibility forms collapse), width fold, lowercase, whitespace
// stripped. Both stored titles and lookup queries go through this, so
// width and case variants resolve to the same law.
func NormalizeTitle(s string) string {
	folded := width.Fold.String(norm.NFKC.String(s))
	return strings.Join(strings.Fields(strings.ToLower(folded)), "")
}

// nullable maps "" to NULL so optional columns stay NULL instead of
// accumulating empty strings.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
