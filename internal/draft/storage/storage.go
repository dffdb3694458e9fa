// Package storage defines persistence contracts for post drafts.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/louisbranch/postforge/internal/compose"
	"github.com/louisbranch/postforge/internal/draft/filter"
)

var (
	// ErrNotFound indicates a requested draft record is missing.
	ErrNotFound = errors.New("draft not found")
	// ErrAlreadyExists indicates a draft with the same ID already exists.
	ErrAlreadyExists = errors.New("draft already exists")
)

// Component stores one post component as its kind plus the JSON-encoded
// parameters it was added with.
type Component struct {
	Kind   compose.Kind    `json:"kind"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Draft stores one post draft record.
type Draft struct {
	ID           string
	Name         string
	PostType     string
	Theme        string
	Components   []Component
	Selections   map[string]string
	ComposedText string
	PreviewToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DraftStore persists draft records.
type DraftStore interface {
	CreateDraft(ctx context.Context, d Draft) error
	GetDraft(ctx context.Context, id string) (Draft, error)
	GetDraftByPreviewToken(ctx context.Context, token string) (Draft, error)
	// ListDrafts returns drafts matching cond ordered by updated_at
	// descending. A zero cond matches everything; limit <= 0 means no limit.
	ListDrafts(ctx context.Context, cond filter.SQLCondition, limit int) ([]Draft, error)
	UpdateDraft(ctx context.Context, d Draft) error
	DeleteDraft(ctx context.Context, id string) error
}
