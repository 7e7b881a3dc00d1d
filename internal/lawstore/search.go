package lawstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"unicode"
)

// DefaultSearchLimit caps full-text search results when the caller does
// not say otherwise.
const DefaultSearchLimit = 10

// SearchProvisions runs a full-text query over provision captions and
// bodies. A non-empty lawID scopes the search to one law. ASCII queries
// go through FTS5; queries containing CJK text fall back to LIKE
// matching, since the unicode61 tokenizer does not segment Japanese and
// would only ever match whole undelimited blocks.
func (s *Store) SearchProvisions(ctx context.Context, query, lawID string, limit int) ([]SearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("lawstore: empty search query")
	}
	if limit <= 0 || limit > 50 {
		limit = DefaultSearchLimit
	}

	var rows *sql.Rows
	var err error
	if containsCJK(query) {
		like := "%" + query + "%"
		rows, err = s.db.QueryContext(ctx, `
			SELECT p.id, p.law_id, p.ref, p.article,
			       COALESCE(p.paragraph, ''), COALESCE(p.item, ''),
			       COALESCE(p.caption, ''), p.body, l.title
			FROM provisions p
			JOIN laws l ON l.id = p.law_id
			WHERE (p.body LIKE ?1 OR p.caption LIKE ?1)
			  AND (?2 = '' OR p.law_id = ?2)
			ORDER BY p.law_id, length(p.ref), p.ref
			LIMIT ?3`, like, lawID, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, `
			SELECT p.id, p.law_id, p.ref, p.article,
			       COALESCE(p.paragraph, ''), COALESCE(p.item, ''),
			       COALESCE(p.caption, ''), p.body, l.title
			FROM provisions_fts f
			JOIN provisions p ON p.id = f.rowid
			JOIN laws l ON l.id = p.law_id
			WHERE provisions_fts MATCH ?1
			  AND (?2 = '' OR p.law_id = ?2)
			ORDER BY rank
			LIMIT ?3`, ftsQuery(query), lawID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("lawstore: search: %w", err)
	}
	defer rows.Close()

	var hits []SearchHit
	for rows.Next() {
		var h SearchHit
		if err := rows.Scan(&h.ID, &h.LawID, &h.Ref, &h.Article,
			&h.Paragraph, &h.Item, &h.Caption, &h.Body, &h.LawTitle); err != nil {
			return nil, fmt.Errorf("lawstore: scan search hit: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// GetProvision fetches one provision by law and article, optionally
// narrowed to a paragraph and item. With no paragraph/item filter the
// article's first unit is returned.
func (s *Store) GetProvision(ctx context.Context, lawID, article, paragraph, item string) (*Provision, error) {
	query := `
		SELECT id, law_id, ref, article, COALESCE(paragraph, ''),
		       COALESCE(item, ''), COALESCE(caption, ''), body
		FROM provisions
		WHERE law_id = ? AND article = ?`
	args := []any{lawID, article}
	if paragraph != "" {
		query += " AND paragraph = ?"
		args = append(args, paragraph)
	}
	if item != "" {
		query += " AND item = ?"
		args = append(args, item)
	}
	query += " ORDER BY id LIMIT 1"

	var p Provision
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID, &p.LawID, &p.Ref, &p.Article, &p.Paragraph, &p.Item, &p.Caption, &p.Body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lawstore: get provision: %w", err)
	}
	return &p, nil
}

// ArticleProvisions returns every unit of one article in document order.
func (s *Store) ArticleProvisions(ctx context.Context, lawID, article string) ([]Provision, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, law_id, ref, article, COALESCE(paragraph, ''),
		       COALESCE(item, ''), COALESCE(caption, ''), body
		FROM provisions
		WHERE law_id = ? AND article = ?
		ORDER BY id`, lawID, article)
	if err != nil {
		return nil, fmt.Errorf("lawstore: article provisions: %w", err)
	}
	defer rows.Close()

	var out []Provision
	for rows.Next() {
		var p Provision
		if err := rows.Scan(&p.ID, &p.LawID, &p.Ref, &p.Article,
			&p.Paragraph, &p.Item, &p.Caption, &p.Body); err != nil {
			return nil, fmt.Errorf("lawstore: scan provision: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListLaws returns the corpus inventory, optionally filtered by lifecycle
// status.
func (s *Store) ListLaws(ctx context.Context, status string) ([]Law, error) {
	query := `
		SELECT id, COALESCE(law_number, ''), COALESCE(act_number, 0),
		       COALESCE(act_year, 0), kind, title, COALESCE(title_en, ''),
		       status, COALESCE(promulgated_on, '')
		FROM laws`
	var args []any
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY act_year, act_number, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("lawstore: list laws: %w", err)
	}
	defer rows.Close()

	var laws []Law
	for rows.Next() {
		var l Law
		if err := rows.Scan(&l.ID, &l.LawNumber, &l.ActNumber, &l.ActYear,
			&l.Kind, &l.Title, &l.TitleEN, &l.Status, &l.PromulgatedOn); err != nil {
			return nil, fmt.Errorf("lawstore: scan law: %w", err)
		}
		laws = append(laws, l)
	}
	return laws, rows.Err()
}

// EUReferences returns the EU cross-references recorded for a law.
func (s *Store) EUReferences(ctx context.Context, lawID string) ([]EUReference, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, law_id, celex, kind, COALESCE(note, '')
		FROM eu_references WHERE law_id = ? ORDER BY kind, celex`, lawID)
	if err != nil {
		return nil, fmt.Errorf("lawstore: eu references: %w", err)
	}
	defer rows.Close()

	var refs []EUReference
	for rows.Next() {
		var r EUReference
		if err := rows.Scan(&r.ID, &r.LawID, &r.CELEX, &r.Kind, &r.Note); err != nil {
			return nil, fmt.Errorf("lawstore: scan eu reference: %w", err)
		}
		refs = append(refs, r)
	}
	return refs, rows.Err()
}

// Counts returns corpus totals for the status resource and the stats CLI.
func (s *Store) Counts(ctx context.Context) (laws, provisions int, err error) {
	if err = s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM laws").Scan(&laws); err != nil {
		return 0, 0, fmt.Errorf("lawstore: count laws: %w", err)
	}
	if err = s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM provisions").Scan(&provisions); err != nil {
		return 0, 0, fmt.Errorf("lawstore: count provisions: %w", err)
	}
	return laws, provisions, nil
}

// ftsQuery quotes each token so user input cannot inject FTS5 operators
// (AND, NEAR, column filters) or crash on unbalanced quotes.
func ftsQuery(query string) string {
	fields := strings.Fields(query)
	for i, f := range fields {
		fields[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(fields, " ")
}

func containsCJK(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana) {
			return true
		}
	}
	return false
}
