package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/postforge/internal/compose"
	"github.com/louisbranch/postforge/internal/compose/theme"
	"github.com/louisbranch/postforge/internal/draft"
	"github.com/louisbranch/postforge/internal/draft/storage"
	"github.com/louisbranch/postforge/internal/draft/storage/sqlite"
	webi18n "github.com/louisbranch/postforge/internal/web/i18n"
)

func newTestHandler(t *testing.T) (http.Handler, *draft.Service) {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "drafts.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})

	themes := theme.NewManager()
	drafts := draft.NewService(store, themes)
	return NewHandler(drafts, themes), drafts
}

func seedDraft(t *testing.T, drafts *draft.Service, name string) storage.Draft {
	t.Helper()
	ctx := context.Background()

	d, err := drafts.CreateDraft(ctx, draft.CreateInput{Name: name})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}

	hook, err := draft.NewComponent(compose.KindHook, draft.HookParams{Type: "question", Content: "Ever shipped on a Friday?"})
	if err != nil {
		t.Fatalf("encode hook: %v", err)
	}
	if _, err := drafts.AppendComponent(ctx, d.ID, hook); err != nil {
		t.Fatalf("append hook: %v", err)
	}
	tags, err := draft.NewComponent(compose.KindHashtags, draft.HashtagsParams{Tags: []string{"golang", "shipping"}})
	if err != nil {
		t.Fatalf("encode hashtags: %v", err)
	}
	if _, err := drafts.AppendComponent(ctx, d.ID, tags); err != nil {
		t.Fatalf("append hashtags: %v", err)
	}

	d, err = drafts.GetDraft(ctx, d.ID)
	if err != nil {
		t.Fatalf("reload draft: %v", err)
	}
	return d
}

func TestHandleHomeListsDrafts(t *testing.T) {
	t.Parallel()
	handler, drafts := newTestHandler(t)
	seedDraft(t, drafts, "Launch recap")
	seedDraft(t, drafts, "Hiring update")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{"Launch recap", "Hiring update", "Drafts"} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestHandleHomeRejectsOtherPaths(t *testing.T) {
	t.Parallel()
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleHomeMethodNotAllowed(t *testing.T) {
	t.Parallel()
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodGet {
		t.Fatalf("Allow = %q, want %q", allow, http.MethodGet)
	}
}

func TestHandleDraftDetail(t *testing.T) {
	t.Parallel()
	handler, drafts := newTestHandler(t)
	d := seedDraft(t, drafts, "Launch recap")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/drafts/"+d.ID, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Ever shipped on a Friday?") {
		t.Errorf("detail page missing composed hook text")
	}
	if !strings.Contains(body, "#golang #shipping") {
		t.Errorf("detail page missing hashtag block")
	}
	if !strings.Contains(body, "Characters") {
		t.Errorf("detail page missing stat chips")
	}
	if d.PreviewToken != "" && !strings.Contains(body, "/p/"+d.PreviewToken) {
		t.Errorf("detail page missing share link for token %q", d.PreviewToken)
	}
}

func TestHandleDraftDetailNotFound(t *testing.T) {
	t.Parallel()
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/drafts/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), "Draft not found") {
		t.Errorf("not-found page missing title")
	}
}

func TestHandleSharedPreview(t *testing.T) {
	t.Parallel()
	handler, drafts := newTestHandler(t)
	d := seedDraft(t, drafts, "Launch recap")
	if d.PreviewToken == "" {
		t.Fatal("seeded draft has no preview token")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/p/"+d.PreviewToken, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Ever shipped on a Friday?") {
		t.Errorf("shared preview missing composed text")
	}
}

func TestHandleSharedPreviewUnknownToken(t *testing.T) {
	t.Parallel()
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/p/unknown-token", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleUp(t *testing.T) {
	t.Parallel()
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "OK" {
		t.Fatalf("body = %q, want OK", rec.Body.String())
	}
}

func TestLangQueryParamSetsCookie(t *testing.T) {
	t.Parallel()
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var found bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == webi18n.LangCookieName && cookie.Value == "pt-BR" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s cookie for pt-BR", webi18n.LangCookieName)
	}
}
