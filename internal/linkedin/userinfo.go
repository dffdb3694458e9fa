package linkedin

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/louisbranch/postforge/internal/platform/errors"
)

// Userinfo is the OpenID Connect profile for the token's owner.
type Userinfo struct {
	Sub        string `json:"sub"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
	Picture    string `json:"picture"`
}

// Userinfo fetches the profile behind the configured access token.
func (c *Client) Userinfo(ctx context.Context) (Userinfo, error) {
	if err := c.requireAuth(); err != nil {
		return Userinfo{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/v2/userinfo", nil)
	if err != nil {
		return Userinfo{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Userinfo{}, apperrors.Wrap(apperrors.CodeLinkedInResponseInvalid, "userinfo request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return Userinfo{}, restError(apperrors.CodeLinkedInAuthMissing, "access token rejected", resp)
	}
	if resp.StatusCode != http.StatusOK {
		return Userinfo{}, restError(apperrors.CodeLinkedInResponseInvalid, "userinfo rejected", resp)
	}

	var info Userinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Userinfo{}, apperrors.Wrap(apperrors.CodeLinkedInResponseInvalid, "userinfo response does not decode", err)
	}
	if info.Sub == "" {
		return Userinfo{}, apperrors.New(apperrors.CodeLinkedInResponseInvalid, "userinfo response is missing a subject")
	}
	return info, nil
}

// PersonURN returns the author URN posts publish under, deriving it from
// the userinfo subject when the configuration leaves it unset.
func (c *Client) PersonURN(ctx context.Context) (string, error) {
	return c.author(ctx)
}

// IDTokenClaims are the OpenID claims carried in a LinkedIn id_token.
type IDTokenClaims struct {
	jwt.RegisteredClaims
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
	Picture    string `json:"picture"`
}

// ParseIDToken extracts the claims from an id_token without checking its
// signature. Callers only get tokens straight from the token endpoint over
// TLS; signature verification stays with the issuer.
func ParseIDToken(raw string) (IDTokenClaims, error) {
	var claims IDTokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return IDTokenClaims{}, apperrors.Wrap(apperrors.CodeLinkedInResponseInvalid, "id token does not parse", err)
	}
	if claims.Subject == "" {
		return IDTokenClaims{}, apperrors.New(apperrors.CodeLinkedInResponseInvalid, "id token is missing a subject")
	}
	return claims, nil
}
