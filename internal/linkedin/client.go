package linkedin

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	apperrors "github.com/louisbranch/postforge/internal/platform/errors"
)

// Visibility controls who can see a published post.
type Visibility string

const (
	VisibilityPublic      Visibility = "PUBLIC"
	VisibilityConnections Visibility = "CONNECTIONS"
	VisibilityLoggedIn    Visibility = "LOGGED_IN"
)

// ParseVisibility maps a case-insensitive name to a post visibility. A
// blank name defaults to public.
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(VisibilityPublic):
		return VisibilityPublic, nil
	case string(VisibilityConnections):
		return VisibilityConnections, nil
	case string(VisibilityLoggedIn):
		return VisibilityLoggedIn, nil
	default:
		return "", apperrors.WithMetadata(apperrors.CodeLinkedInPostRejected, "unknown visibility",
			map[string]string{"visibility": s})
	}
}

func (v Visibility) String() string { return string(v) }

// Client talks to the LinkedIn REST and OpenID endpoints.
type Client struct {
	cfg          Config
	httpClient   *http.Client
	pollInterval time.Duration

	mu        sync.Mutex
	personURN string
}

// NewClient returns a client for the given configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:          cfg,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		pollInterval: 2 * time.Second,
		personURN:    cfg.PersonURN,
	}
}

// Configured reports whether the client holds credentials for publishing.
func (c *Client) Configured() bool { return c.cfg.Configured() }

// Missing lists the environment variables still needed before posts can go
// live.
func (c *Client) Missing() []string { return c.cfg.Missing() }

// requireAuth fails fast when no access token is configured, naming the
// variables to set.
func (c *Client) requireAuth() error {
	if c.cfg.AccessToken != "" {
		return nil
	}
	return apperrors.WithMetadata(apperrors.CodeLinkedInAuthMissing,
		"publishing is not configured, set the listed variables to go live",
		map[string]string{"missing": strings.Join(c.cfg.Missing(), ", ")})
}

// author returns the person URN posts are published as, deriving it from
// the userinfo subject when the configuration leaves it unset.
func (c *Client) author(ctx context.Context) (string, error) {
	c.mu.Lock()
	urn := c.personURN
	c.mu.Unlock()
	if urn != "" {
		return urn, nil
	}

	info, err := c.Userinfo(ctx)
	if err != nil {
		return "", err
	}
	urn = "urn:li:person:" + info.Sub

	c.mu.Lock()
	c.personURN = urn
	c.mu.Unlock()
	return urn, nil
}

// setRESTHeaders applies the auth and protocol headers the versioned REST
// endpoints require.
func (c *Client) setRESTHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")
	req.Header.Set("Linkedin-Version", c.cfg.Version)
}

// restError turns a non-success response into a coded error carrying the
// status and a snippet of the body.
func restError(code apperrors.Code, message string, resp *http.Response) error {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return apperrors.WithMetadata(code, message, map[string]string{
		"status": strconv.Itoa(resp.StatusCode),
		"body":   strings.TrimSpace(string(snippet)),
	})
}
