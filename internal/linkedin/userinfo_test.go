package linkedin

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/louisbranch/postforge/internal/platform/errors"
)

func TestUserinfo(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer t" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		if got := r.Header.Get("Linkedin-Version"); got != "" {
			t.Errorf("Linkedin-Version = %q, want unset on the openid endpoint", got)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"sub":     "abc123",
			"name":    "Ada Lovelace",
			"email":   "ada@example.com",
			"picture": "https://cdn.example.com/ada.png",
		})
	})

	c := testClient(t, mux, Config{AccessToken: "t"})
	info, err := c.Userinfo(context.Background())
	if err != nil {
		t.Fatalf("userinfo: %v", err)
	}
	if info.Sub != "abc123" {
		t.Fatalf("sub = %q, want abc123", info.Sub)
	}
	if info.Name != "Ada Lovelace" {
		t.Fatalf("name = %q, want Ada Lovelace", info.Name)
	}
	if info.Email != "ada@example.com" {
		t.Fatalf("email = %q, want ada@example.com", info.Email)
	}
}

func TestUserinfoTokenRejected(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/userinfo", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"expired"}`, http.StatusUnauthorized)
	})

	c := testClient(t, mux, Config{AccessToken: "t"})
	_, err := c.Userinfo(context.Background())
	if apperrors.CodeOf(err) != apperrors.CodeLinkedInAuthMissing {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeLinkedInAuthMissing)
	}
}

func TestUserinfoMissingSubject(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/userinfo", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"name": "Nameless"})
	})

	c := testClient(t, mux, Config{AccessToken: "t"})
	_, err := c.Userinfo(context.Background())
	if apperrors.CodeOf(err) != apperrors.CodeLinkedInResponseInvalid {
		t.Fatalf("code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeLinkedInResponseInvalid)
	}
}

func TestPersonURNPrefersConfigured(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})

	c := testClient(t, mux, Config{AccessToken: "t", PersonURN: "urn:li:person:cfg"})
	urn, err := c.PersonURN(context.Background())
	if err != nil {
		t.Fatalf("person urn: %v", err)
	}
	if urn != "urn:li:person:cfg" {
		t.Fatalf("urn = %q, want urn:li:person:cfg", urn)
	}
}

func TestParseIDToken(t *testing.T) {
	t.Parallel()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, IDTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "abc123"},
		Name:             "Ada Lovelace",
		Email:            "ada@example.com",
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	claims, err := ParseIDToken(raw)
	if err != nil {
		t.Fatalf("parse id token: %v", err)
	}
	if claims.Subject != "abc123" {
		t.Fatalf("subject = %q, want abc123", claims.Subject)
	}
	if claims.Name != "Ada Lovelace" {
		t.Fatalf("name = %q, want Ada Lovelace", claims.Name)
	}
	if claims.Email != "ada@example.com" {
		t.Fatalf("email = %q, want ada@example.com", claims.Email)
	}
}

func TestParseIDTokenErrors(t *testing.T) {
	t.Parallel()

	if _, err := ParseIDToken("not-a-token"); apperrors.CodeOf(err) != apperrors.CodeLinkedInResponseInvalid {
		t.Fatalf("garbage code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeLinkedInResponseInvalid)
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"name": "Nameless"}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := ParseIDToken(raw); apperrors.CodeOf(err) != apperrors.CodeLinkedInResponseInvalid {
		t.Fatalf("missing subject code = %v, want %v", apperrors.CodeOf(err), apperrors.CodeLinkedInResponseInvalid)
	}
}
