package arky

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoRefreshToken is returned when the platform rejects the access
// token and the client has no refresh token to recover with.
var ErrNoRefreshToken = errors.New("arky: access token rejected and no refresh token configured")

// refreshSkew is how close to the exp claim the client refreshes
// proactively instead of waiting for a 401.
const refreshSkew = 30 * time.Second

type tokenSource struct {
	mu      sync.Mutex
	access  string
	refresh string
}

func (t *tokenSource) snapshot() (access, refresh string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.access, t.refresh
}

func (t *tokenSource) set(access, refresh string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.access = access
	if refresh != "" {
		t.refresh = refresh
	}
}

// expiresWithin reports whether tok is a JWT whose exp claim falls
// inside d from now. Opaque (non-JWT) tokens report false and are left
// to the server to reject.
func expiresWithin(tok string, d time.Duration) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Until(exp.Time) < d
}

// refreshAccessToken exchanges the refresh token for a fresh session.
// It bypasses the regular request path so a failed refresh cannot
// trigger another refresh.
func (c *Client) refreshAccessToken(ctx context.Context) error {
	_, refresh := c.tokens.snapshot()
	if refresh == "" {
		return ErrNoRefreshToken
	}

	payload, err := json.Marshal(map[string]string{"refreshToken": refresh})
	if err != nil {
		return fmt.Errorf("arky: encode refresh payload: %w", err)
	}

	u := c.baseURL.JoinPath("v1/auth/refresh")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("arky: refresh token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, Message: "token refresh failed"}
	}

	var out struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("arky: decode refresh response: %w", err)
	}
	if out.AccessToken == "" {
		return errors.New("arky: refresh response had no access token")
	}

	c.tokens.set(out.AccessToken, out.RefreshToken)
	c.logger.Debug("access token refreshed")
	return nil
}
