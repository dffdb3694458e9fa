// Package draft manages stored post drafts: creating, editing, composing,
// and listing them, plus the process-wide active draft that tools operate
// on when no draft is named explicitly.
package draft

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/postforge/internal/compose"
	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/louisbranch/postforge/internal/compose/variant"
	"github.com/louisbranch/postforge/internal/draft/filter"
	"github.com/louisbranch/postforge/internal/draft/storage"
	"github.com/louisbranch/postforge/internal/id"
	apperrors "github.com/louisbranch/postforge/internal/platform/errors"
	"github.com/louisbranch/postforge/internal/tokens"
)

// DefaultPostType is assumed when a draft is created without a post type.
const DefaultPostType = "text"

// Service coordinates draft persistence with theme and variant lookups. It
// also tracks the active draft, which draft-scoped methods fall back to
// when they are given a blank draft id.
type Service struct {
	store  storage.DraftStore
	themes *theme.Manager

	mu       sync.Mutex
	activeID string

	now      func() time.Time
	newID    func() (string, error)
	newToken func() (string, error)
}

// NewService returns a draft service backed by store, resolving theme names
// through themes.
func NewService(store storage.DraftStore, themes *theme.Manager) *Service {
	return &Service{
		store:    store,
		themes:   themes,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    id.NewID,
		newToken: id.NewToken,
	}
}

// CreateInput carries the fields accepted when creating a draft.
type CreateInput struct {
	Name       string
	PostType   string
	Theme      string
	Selections map[string]string
}

// CreateDraft validates input, stores a new draft, and makes it the active
// draft.
func (s *Service) CreateDraft(ctx context.Context, input CreateInput) (storage.Draft, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return storage.Draft{}, apperrors.New(apperrors.CodeDraftNameEmpty, "draft name is required")
	}

	postType := input.PostType
	if postType == "" {
		postType = DefaultPostType
	}
	if _, ok := variant.TableFor(postType); !ok {
		return storage.Draft{}, apperrors.WithMetadata(apperrors.CodePostTypeNotFound, "unknown post type",
			map[string]string{"post_type": postType})
	}

	if input.Theme != "" {
		if _, err := s.themes.Get(input.Theme); err != nil {
			return storage.Draft{}, themeNotFound(input.Theme, err)
		}
	}

	draftID, err := s.newID()
	if err != nil {
		return storage.Draft{}, err
	}
	token, err := s.newToken()
	if err != nil {
		return storage.Draft{}, err
	}

	now := s.now()
	d := storage.Draft{
		ID:           draftID,
		Name:         name,
		PostType:     postType,
		Theme:        input.Theme,
		Selections:   cloneSelections(input.Selections),
		PreviewToken: token,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.CreateDraft(ctx, d); err != nil {
		return storage.Draft{}, err
	}

	s.mu.Lock()
	s.activeID = d.ID
	s.mu.Unlock()

	return d, nil
}

// GetDraft loads a draft. A blank id loads the active draft.
func (s *Service) GetDraft(ctx context.Context, draftID string) (storage.Draft, error) {
	draftID, err := s.resolveID(draftID)
	if err != nil {
		return storage.Draft{}, err
	}
	d, err := s.store.GetDraft(ctx, draftID)
	if err != nil {
		return storage.Draft{}, draftStorageError(draftID, err)
	}
	return d, nil
}

// GetDraftByPreviewToken loads the draft behind a shareable preview token.
func (s *Service) GetDraftByPreviewToken(ctx context.Context, token string) (storage.Draft, error) {
	d, err := s.store.GetDraftByPreviewToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Draft{}, apperrors.Wrap(apperrors.CodeDraftNotFound, "draft not found", err)
		}
		return storage.Draft{}, err
	}
	return d, nil
}

// ListDrafts returns drafts matching the filter expression, newest first.
// An empty filter matches every draft; limit <= 0 returns all matches.
func (s *Service) ListDrafts(ctx context.Context, filterExpr string, limit int) ([]storage.Draft, error) {
	cond, err := filter.ParseDraftFilter(filterExpr)
	if err != nil {
		return nil, apperrors.WrapWithMetadata(apperrors.CodeDraftFilterInvalid, "invalid draft filter",
			map[string]string{"filter": filterExpr}, err)
	}
	return s.store.ListDrafts(ctx, cond, limit)
}

// Update describes a partial draft update. Nil fields keep the stored
// value. Selections merge by key; Components replace the stored list.
type Update struct {
	Name         *string
	Theme        *string
	Components   []storage.Component
	Selections   map[string]string
	ComposedText *string
}

// UpdateDraft applies update to a stored draft and refreshes its update
// time. A blank id updates the active draft.
func (s *Service) UpdateDraft(ctx context.Context, draftID string, update Update) (storage.Draft, error) {
	d, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return storage.Draft{}, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return storage.Draft{}, apperrors.New(apperrors.CodeDraftNameEmpty, "draft name is required")
		}
		d.Name = name
	}
	if update.Theme != nil {
		if *update.Theme != "" {
			if _, err := s.themes.Get(*update.Theme); err != nil {
				return storage.Draft{}, themeNotFound(*update.Theme, err)
			}
		}
		d.Theme = *update.Theme
	}
	if update.Components != nil {
		d.Components = update.Components
	}
	if len(update.Selections) > 0 {
		if d.Selections == nil {
			d.Selections = make(map[string]string, len(update.Selections))
		}
		for k, v := range update.Selections {
			d.Selections[k] = v
		}
	}
	if update.ComposedText != nil {
		d.ComposedText = *update.ComposedText
	}

	return s.save(ctx, d)
}

// AppendComponent validates one component and appends it to a draft. A
// blank id appends to the active draft.
func (s *Service) AppendComponent(ctx context.Context, draftID string, c storage.Component) (storage.Draft, error) {
	// Applying against a scratch post rejects unknown kinds and malformed
	// params before they reach storage.
	if err := applyComponent(compose.NewPost("", nil, nil), c); err != nil {
		return storage.Draft{}, err
	}
	d, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return storage.Draft{}, err
	}
	d.Components = append(d.Components, c)
	return s.save(ctx, d)
}

// DeleteDraft removes a draft by id. Deleting the active draft clears the
// active selection.
func (s *Service) DeleteDraft(ctx context.Context, draftID string) error {
	if err := s.store.DeleteDraft(ctx, draftID); err != nil {
		return draftStorageError(draftID, err)
	}
	s.mu.Lock()
	if s.activeID == draftID {
		s.activeID = ""
	}
	s.mu.Unlock()
	return nil
}

// SetActive marks an existing draft as the active draft.
func (s *Service) SetActive(ctx context.Context, draftID string) (storage.Draft, error) {
	d, err := s.store.GetDraft(ctx, draftID)
	if err != nil {
		return storage.Draft{}, draftStorageError(draftID, err)
	}
	s.mu.Lock()
	s.activeID = d.ID
	s.mu.Unlock()
	return d, nil
}

// ActiveID returns the id of the active draft, or "" when none is selected.
func (s *Service) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// ComposeDraft renders a draft's components into final post text, persists
// the text on the draft, and reports which components were skipped as
// invalid. A blank id composes the active draft.
func (s *Service) ComposeDraft(ctx context.Context, draftID string) (storage.Draft, compose.Result, error) {
	d, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return storage.Draft{}, compose.Result{}, err
	}
	post, err := s.rebuild(d)
	if err != nil {
		return storage.Draft{}, compose.Result{}, err
	}
	res, err := post.ComposeResult()
	if err != nil {
		return storage.Draft{}, compose.Result{}, composeError(err)
	}

	d.ComposedText = res.Text
	d, err = s.save(ctx, d)
	if err != nil {
		return storage.Draft{}, compose.Result{}, err
	}
	return d, res, nil
}

// PollAttachment is the native poll extracted from a poll draft's mock-up.
type PollAttachment struct {
	Question string
	Options  []string
}

// ComposeForPublish renders a draft for publication. A poll draft that
// carries a poll mock-up renders its commentary without the mock-up and
// returns the mock-up's question and options for native attachment; any
// other draft composes exactly as ComposeDraft does.
func (s *Service) ComposeForPublish(ctx context.Context, draftID string) (storage.Draft, compose.Result, *PollAttachment, error) {
	d, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return storage.Draft{}, compose.Result{}, nil, err
	}
	var poll *PollAttachment
	if d.PostType == "poll" {
		for _, c := range d.Components {
			if c.Kind != compose.KindPollPreview {
				continue
			}
			var p PollPreviewParams
			if err := decodeParams(c, &p); err != nil {
				return storage.Draft{}, compose.Result{}, nil, err
			}
			poll = &PollAttachment{Question: p.Question, Options: p.Options}
			break
		}
	}
	if poll == nil {
		d, res, err := s.ComposeDraft(ctx, d.ID)
		return d, res, nil, err
	}
	commentary := d
	commentary.Components = make([]storage.Component, 0, len(d.Components))
	for _, c := range d.Components {
		if c.Kind == compose.KindPollPreview {
			continue
		}
		commentary.Components = append(commentary.Components, c)
	}
	post, err := s.rebuild(commentary)
	if err != nil {
		return storage.Draft{}, compose.Result{}, nil, err
	}
	res, err := post.ComposeResult()
	if err != nil {
		return storage.Draft{}, compose.Result{}, nil, composeError(err)
	}
	return d, res, poll, nil
}

// PreviewDraft composes a draft and truncates the text to what readers see
// above the feed fold. chars <= 0 uses the standard fold position. A blank
// id previews the active draft.
func (s *Service) PreviewDraft(ctx context.Context, draftID string, chars int) (string, error) {
	d, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return "", err
	}
	post, err := s.rebuild(d)
	if err != nil {
		return "", err
	}
	if chars <= 0 {
		chars = tokens.TruncationPoint
	}
	text, err := post.Preview(chars)
	if err != nil {
		return "", composeError(err)
	}
	return text, nil
}

// OptimizeDraft ensures a themed draft opens with a hook and closes with a
// call to action, persisting any components it adds. The inserted hook is
// an empty placeholder of the theme's hook style, left for the author to
// fill in. Unthemed drafts are returned unchanged. Reports whether the
// draft was modified.
func (s *Service) OptimizeDraft(ctx context.Context, draftID string) (storage.Draft, bool, error) {
	d, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return storage.Draft{}, false, err
	}
	if d.Theme == "" {
		return d, false, nil
	}
	th, err := s.themes.Get(d.Theme)
	if err != nil {
		return storage.Draft{}, false, themeNotFound(d.Theme, err)
	}

	hasHook, hasCTA := false, false
	for _, c := range d.Components {
		switch c.Kind {
		case compose.KindHook:
			hasHook = true
		case compose.KindCallToAction:
			hasCTA = true
		}
	}
	if hasHook && hasCTA {
		return d, false, nil
	}

	if !hasHook {
		c, err := NewComponent(compose.KindHook, HookParams{Type: th.HookStyle})
		if err != nil {
			return storage.Draft{}, false, err
		}
		d.Components = append([]storage.Component{c}, d.Components...)
	}
	if !hasCTA {
		c, err := NewComponent(compose.KindCallToAction, CTAParams{Type: th.CTAStyle, Text: "What's your take?"})
		if err != nil {
			return storage.Draft{}, false, err
		}
		d.Components = append(d.Components, c)
	}

	d, err = s.save(ctx, d)
	if err != nil {
		return storage.Draft{}, false, err
	}
	return d, true, nil
}

// ExportDraft snapshots a composed draft: every component rendered, the
// final text, and the fold preview. A blank id exports the active draft.
func (s *Service) ExportDraft(ctx context.Context, draftID string) (compose.Export, error) {
	d, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return compose.Export{}, err
	}
	post, err := s.rebuild(d)
	if err != nil {
		return compose.Export{}, err
	}
	exp, err := post.Export()
	if err != nil {
		return compose.Export{}, composeError(err)
	}
	return exp, nil
}

// DraftStats composes a draft and reports engagement stats for the text.
// Posts over the character limit still get stats, with a negative
// remaining count. A blank id reports on the active draft.
func (s *Service) DraftStats(ctx context.Context, draftID string) (Stats, error) {
	d, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return Stats{}, err
	}
	text, err := s.RenderText(d)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(d, text), nil
}

// RenderText composes a draft's current components without persisting the
// result. Posts over the character limit still render, so read-only
// surfaces can show the overflowing text next to a negative remaining
// count.
func (s *Service) RenderText(d storage.Draft) (string, error) {
	post, err := s.rebuild(d)
	if err != nil {
		return "", err
	}
	res, err := post.ComposeResult()
	if err != nil {
		var lengthErr *compose.LengthExceededError
		if !errors.As(err, &lengthErr) {
			return "", err
		}
	}
	return res.Text, nil
}

// rebuild resolves the draft's theme and reconstructs its composable post.
func (s *Service) rebuild(d storage.Draft) (*compose.Post, error) {
	var th *theme.Theme
	if d.Theme != "" {
		t, err := s.themes.Get(d.Theme)
		if err != nil {
			return nil, themeNotFound(d.Theme, err)
		}
		th = t
	}
	return Rebuild(d, th)
}

// save writes the draft back with a fresh update time.
func (s *Service) save(ctx context.Context, d storage.Draft) (storage.Draft, error) {
	d.UpdatedAt = s.now()
	if err := s.store.UpdateDraft(ctx, d); err != nil {
		return storage.Draft{}, draftStorageError(d.ID, err)
	}
	return d, nil
}

// resolveID falls back to the active draft when draftID is blank.
func (s *Service) resolveID(draftID string) (string, error) {
	if draftID != "" {
		return draftID, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeID == "" {
		return "", apperrors.New(apperrors.CodeDraftNoActiveDraft, "no active draft selected")
	}
	return s.activeID, nil
}

func draftStorageError(draftID string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperrors.WrapWithMetadata(apperrors.CodeDraftNotFound, "draft not found",
			map[string]string{"draft_id": draftID}, err)
	}
	return err
}

func themeNotFound(name string, err error) error {
	return apperrors.WrapWithMetadata(apperrors.CodeThemeNotFound, "theme not found",
		map[string]string{"theme": name}, err)
}

func composeError(err error) error {
	var lengthErr *compose.LengthExceededError
	if errors.As(err, &lengthErr) {
		return apperrors.WrapWithMetadata(apperrors.CodePostLengthExceeded, "post exceeds the character limit",
			map[string]string{
				"length": strconv.Itoa(lengthErr.Length),
				"limit":  strconv.Itoa(lengthErr.Limit),
			}, err)
	}
	return err
}

func cloneSelections(selections map[string]string) map[string]string {
	if len(selections) == 0 {
		return nil
	}
	out := make(map[string]string, len(selections))
	for k, v := range selections {
		out[k] = v
	}
	return out
}
