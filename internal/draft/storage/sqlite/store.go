// Package sqlite provides a SQLite-backed draft storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/postforge/internal/draft/filter"
	"github.com/louisbranch/postforge/internal/draft/storage"
	"github.com/louisbranch/postforge/internal/draft/storage/sqlite/migrations"
	sqlitemigrate "github.com/louisbranch/postforge/internal/platform/storage/sqlitemigrate"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists drafts in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite draft store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateDraft inserts one draft record.
func (s *Store) CreateDraft(ctx context.Context, d storage.Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(d.ID)
	name := strings.TrimSpace(d.Name)
	if id == "" {
		return fmt.Errorf("draft id is required")
	}
	if name == "" {
		return fmt.Errorf("draft name is required")
	}
	if strings.TrimSpace(d.PostType) == "" {
		return fmt.Errorf("post type is required")
	}
	if strings.TrimSpace(d.PreviewToken) == "" {
		return fmt.Errorf("preview token is required")
	}
	components, selections, err := encodePayload(d)
	if err != nil {
		return err
	}
	createdAt := d.CreatedAt.UTC()
	updatedAt := d.UpdatedAt.UTC()
	if createdAt.IsZero() && updatedAt.IsZero() {
		createdAt = time.Now().UTC()
		updatedAt = createdAt
	} else {
		if createdAt.IsZero() {
			createdAt = updatedAt
		}
		if updatedAt.IsZero() {
			updatedAt = createdAt
		}
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO drafts (
		   id,
		   name,
		   post_type,
		   theme,
		   components,
		   selections,
		   composed_text,
		   preview_token,
		   created_at,
		   updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		name,
		d.PostType,
		d.Theme,
		components,
		selections,
		d.ComposedText,
		d.PreviewToken,
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		if isDraftUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create draft: %w", err)
	}
	return nil
}

// GetDraft returns one draft by ID.
func (s *Store) GetDraft(ctx context.Context, id string) (storage.Draft, error) {
	if err := ctx.Err(); err != nil {
		return storage.Draft{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Draft{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.Draft{}, fmt.Errorf("draft id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, draftSelect+` WHERE id = ?`, id)
	return scanDraft(row)
}

// GetDraftByPreviewToken returns one draft by its shareable preview token.
func (s *Store) GetDraftByPreviewToken(ctx context.Context, token string) (storage.Draft, error) {
	if err := ctx.Err(); err != nil {
		return storage.Draft{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Draft{}, fmt.Errorf("storage is not configured")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return storage.Draft{}, fmt.Errorf("preview token is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, draftSelect+` WHERE preview_token = ?`, token)
	return scanDraft(row)
}

// ListDrafts returns drafts matching cond ordered by updated_at descending.
func (s *Store) ListDrafts(ctx context.Context, cond filter.SQLCondition, limit int) ([]storage.Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	query := draftSelect
	params := cond.Params
	if cond.Clause != "" {
		query += ` WHERE ` + cond.Clause
	}
	query += ` ORDER BY updated_at DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		params = append(append([]any{}, params...), limit)
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []storage.Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("list drafts: %w", err)
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	return drafts, nil
}

// UpdateDraft replaces one draft record.
func (s *Store) UpdateDraft(ctx context.Context, d storage.Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(d.ID)
	if id == "" {
		return fmt.Errorf("draft id is required")
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("draft name is required")
	}
	components, selections, err := encodePayload(d)
	if err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE drafts
		    SET name = ?,
		        post_type = ?,
		        theme = ?,
		        components = ?,
		        selections = ?,
		        composed_text = ?,
		        updated_at = ?
		  WHERE id = ?`,
		strings.TrimSpace(d.Name),
		d.PostType,
		d.Theme,
		components,
		selections,
		d.ComposedText,
		toMillis(d.UpdatedAt),
		id,
	)
	if err != nil {
		return fmt.Errorf("update draft: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update draft: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteDraft removes one draft by ID.
func (s *Store) DeleteDraft(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("draft id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

const draftSelect = `SELECT id, name, post_type, theme,
       components, selections, composed_text, preview_token,
       created_at, updated_at
  FROM drafts`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDraft(row rowScanner) (storage.Draft, error) {
	var d storage.Draft
	var components string
	var selections string
	var createdAt int64
	var updatedAt int64
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.PostType,
		&d.Theme,
		&components,
		&selections,
		&d.ComposedText,
		&d.PreviewToken,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Draft{}, storage.ErrNotFound
		}
		return storage.Draft{}, fmt.Errorf("get draft: %w", err)
	}
	if err := json.Unmarshal([]byte(components), &d.Components); err != nil {
		return storage.Draft{}, fmt.Errorf("decode components: %w", err)
	}
	if err := json.Unmarshal([]byte(selections), &d.Selections); err != nil {
		return storage.Draft{}, fmt.Errorf("decode selections: %w", err)
	}
	d.CreatedAt = fromMillis(createdAt)
	d.UpdatedAt = fromMillis(updatedAt)
	return d, nil
}

func encodePayload(d storage.Draft) (components, selections string, err error) {
	componentList := d.Components
	if componentList == nil {
		componentList = []storage.Component{}
	}
	rawComponents, err := json.Marshal(componentList)
	if err != nil {
		return "", "", fmt.Errorf("encode components: %w", err)
	}
	selectionMap := d.Selections
	if selectionMap == nil {
		selectionMap = map[string]string{}
	}
	rawSelections, err := json.Marshal(selectionMap)
	if err != nil {
		return "", "", fmt.Errorf("encode selections: %w", err)
	}
	return string(rawComponents), string(rawSelections), nil
}

func isDraftUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "drafts.")
}

var _ storage.DraftStore = (*Store)(nil)
