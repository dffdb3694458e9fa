package linkedin

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/louisbranch/postforge/internal/platform/errors"
)

func writeMediaFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write media file: %v", err)
	}
	return path
}

func TestUploadImage(t *testing.T) {
	t.Parallel()

	var c *Client
	var statusCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/images", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.URL.Query().Get("action"); got != "initializeUpload" {
			t.Errorf("action = %q, want initializeUpload", got)
		}
		var payload struct {
			Init struct {
				Owner string `json:"owner"`
			} `json:"initializeUploadRequest"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode init payload: %v", err)
		}
		if payload.Init.Owner != "urn:li:person:abc" {
			t.Errorf("owner = %q, want urn:li:person:abc", payload.Init.Owner)
		}
		json.NewEncoder(w).Encode(map[string]map[string]string{
			"value": {
				"uploadUrl": c.cfg.BaseURL + "/upload-slot/1",
				"image":     "urn:li:image:55",
			},
		})
	})
	mux.HandleFunc("/upload-slot/1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "image/png" {
			t.Errorf("Content-Type = %q, want image/png", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer t" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "png-bytes" {
			t.Errorf("upload body = %q, want file contents", body)
		}
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/rest/images/urn:li:image:55", func(w http.ResponseWriter, r *http.Request) {
		status := "AVAILABLE"
		if statusCalls.Add(1) == 1 {
			status = "PROCESSING"
		}
		json.NewEncoder(w).Encode(map[string]string{"status": status})
	})

	c = testClient(t, mux, Config{AccessToken: "t", PersonURN: "urn:li:person:abc"})
	urn, err := c.UploadImage(context.Background(), writeMediaFile(t, "chart.png", []byte("png-bytes")))
	if err != nil {
		t.Fatalf("upload image: %v", err)
	}
	if urn != "urn:li:image:55" {
		t.Fatalf("urn = %q, want urn:li:image:55", urn)
	}
	if got := statusCalls.Load(); got != 2 {
		t.Fatalf("status polls = %d, want 2", got)
	}
}

func TestUploadDocument(t *testing.T) {
	t.Parallel()

	var c *Client
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/documents", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]map[string]string{
			"value": {
				"uploadUrl": c.cfg.BaseURL + "/upload-slot/2",
				"document":  "urn:li:document:9",
			},
		})
	})
	mux.HandleFunc("/upload-slot/2", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/pdf" {
			t.Errorf("Content-Type = %q, want application/pdf", got)
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/rest/documents/urn:li:document:9", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "AVAILABLE"})
	})

	c = testClient(t, mux, Config{AccessToken: "t", PersonURN: "urn:li:person:abc"})
	urn, err := c.UploadDocument(context.Background(), writeMediaFile(t, "deck.pdf", []byte("%PDF-1.4")))
	if err != nil {
		t.Fatalf("upload document: %v", err)
	}
	if urn != "urn:li:document:9" {
		t.Fatalf("urn = %q, want urn:li:document:9", urn)
	}
}

func TestUploadImageRejectsBadFiles(t *testing.T) {
	t.Parallel()

	c := NewClient(Config{AccessToken: "t", PersonURN: "urn:li:person:abc"})
	ctx := context.Background()

	if _, err := c.UploadImage(ctx, writeMediaFile(t, "pic.bmp", []byte("x"))); apperrors.CodeOf(err) != apperrors.CodeLinkedInUploadFailed {
		t.Fatalf("unsupported type code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeLinkedInUploadFailed)
	}
	if _, err := c.UploadImage(ctx, filepath.Join(t.TempDir(), "missing.png")); apperrors.CodeOf(err) != apperrors.CodeLinkedInUploadFailed {
		t.Fatalf("missing file code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeLinkedInUploadFailed)
	}
	if _, err := c.UploadImage(ctx, writeMediaFile(t, "huge.png", make([]byte, maxImageBytes+1))); apperrors.CodeOf(err) != apperrors.CodeLinkedInUploadFailed {
		t.Fatalf("oversize code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeLinkedInUploadFailed)
	}
}

func TestUploadImageProcessingFailed(t *testing.T) {
	t.Parallel()

	var c *Client
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/images", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]map[string]string{
			"value": {"uploadUrl": c.cfg.BaseURL + "/upload-slot/3", "image": "urn:li:image:bad"},
		})
	})
	mux.HandleFunc("/upload-slot/3", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/rest/images/urn:li:image:bad", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "PROCESSING_FAILED"})
	})

	c = testClient(t, mux, Config{AccessToken: "t", PersonURN: "urn:li:person:abc"})
	_, err := c.UploadImage(context.Background(), writeMediaFile(t, "chart.png", []byte("x")))
	if apperrors.CodeOf(err) != apperrors.CodeLinkedInUploadFailed {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeLinkedInUploadFailed)
	}
}

func TestUploadImageNotReadyBeforeDeadline(t *testing.T) {
	t.Parallel()

	var c *Client
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/images", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]map[string]string{
			"value": {"uploadUrl": c.cfg.BaseURL + "/upload-slot/4", "image": "urn:li:image:slow"},
		})
	})
	mux.HandleFunc("/upload-slot/4", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/rest/images/urn:li:image:slow", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "PROCESSING"})
	})

	c = testClient(t, mux, Config{AccessToken: "t", PersonURN: "urn:li:person:abc"})
	c.pollInterval = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, err := c.UploadImage(ctx, writeMediaFile(t, "chart.png", []byte("x")))
	if apperrors.CodeOf(err) != apperrors.CodeLinkedInMediaNotReady {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeLinkedInMediaNotReady)
	}
}

func TestMediaKindForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"chart.PNG", "image"},
		{"photo.jpeg", "image"},
		{"slides.pdf", "document"},
		{"report.docx", "document"},
	}
	for _, tc := range tests {
		got, err := MediaKindForPath(tc.path)
		if err != nil {
			t.Fatalf("MediaKindForPath(%q): %v", tc.path, err)
		}
		if got != tc.want {
			t.Fatalf("MediaKindForPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}

	if _, err := MediaKindForPath("notes.txt"); apperrors.CodeOf(err) != apperrors.CodeLinkedInUploadFailed {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeLinkedInUploadFailed)
	}
}
