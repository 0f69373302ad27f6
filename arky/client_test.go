package arky

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func testClient(t *testing.T, srv *httptest.Server, mutate func(*Config)) *Client {
	t.Helper()
	cfg := Config{
		BaseURL:    srv.URL,
		BusinessID: "biz-1",
		APIKey:     "key-1",
		Logger:     discardLogger(),
	}
	if mutate != nil {
		mutate(&cfg)
	}
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestClient_GetSendsStandardHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := testClient(t, srv, nil)
	var out map[string]bool
	if err := c.Get(context.Background(), "/v1/ping", nil, &out); err != nil {
		t.Fatalf("get: %v", err)
	}

	if got.Get("Accept") != "application/json" {
		t.Fatalf("accept header: %q", got.Get("Accept"))
	}
	if got.Get("User-Agent") != "arky-go" {
		t.Fatalf("user agent: %q", got.Get("User-Agent"))
	}
	if got.Get("X-Request-Id") == "" {
		t.Fatal("every request must carry a request id")
	}
	if got.Get("X-Api-Key") != "key-1" {
		t.Fatalf("api key header: %q", got.Get("X-Api-Key"))
	}
	if !out["ok"] {
		t.Fatal("response not decoded")
	}
}

func TestClient_AccessTokenTakesPrecedenceOverAPIKey(t *testing.T) {
	var auth, apiKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		apiKey = r.Header.Get("X-Api-Key")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := testClient(t, srv, func(cfg *Config) { cfg.AccessToken = "opaque-token" })
	if err := c.Get(context.Background(), "/v1/ping", nil, nil); err != nil {
		t.Fatalf("get: %v", err)
	}

	if auth != "Bearer opaque-token" {
		t.Fatalf("authorization header: %q", auth)
	}
	if apiKey != "" {
		t.Fatal("api key must not be sent alongside a bearer token")
	}
}

func TestClient_QueryParamsEncoded(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := testClient(t, srv, nil)
	q := url.Values{}
	q.Set("from", "1000")
	q.Set("to", "2000")
	if err := c.Get(context.Background(), "v1/businesses/biz-1/providers", q, nil); err != nil {
		t.Fatalf("get: %v", err)
	}

	if gotPath != "/v1/businesses/biz-1/providers" {
		t.Fatalf("path: %q", gotPath)
	}
	if gotQuery != "from=1000&to=2000" {
		t.Fatalf("query: %q", gotQuery)
	}
}

func TestClient_ErrorResponsesDecodeToAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"not_found","message":"no such service"}`))
	}))
	defer srv.Close()

	c := testClient(t, srv, nil)
	err := c.Get(context.Background(), "/v1/services/nope", nil, nil)
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Code != "not_found" || apiErr.Message != "no such service" {
		t.Fatalf("error not decoded: %+v", apiErr)
	}
	if apiErr.RequestID == "" {
		t.Fatal("errors must carry the request id for support")
	}
	if !IsNotFound(err) {
		t.Fatal("IsNotFound must match a 404")
	}
}

func TestClient_RefreshOn401ReplaysRequest(t *testing.T) {
	var attempts int
	var refreshCalls int
	var replayedBody string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/auth/refresh" {
			refreshCalls++
			var in map[string]string
			_ = json.NewDecoder(r.Body).Decode(&in)
			if in["refreshToken"] != "refresh-1" {
				t.Errorf("refresh payload: %v", in)
			}
			_, _ = w.Write([]byte(`{"accessToken":"fresh","refreshToken":"refresh-2"}`))
			return
		}

		attempts++
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, _ := io.ReadAll(r.Body)
		replayedBody = string(body)
		_, _ = w.Write([]byte(`{"id":"order-1"}`))
	}))
	defer srv.Close()

	c := testClient(t, srv, func(cfg *Config) {
		cfg.AccessToken = "stale-opaque" // not a JWT, so no proactive refresh
		cfg.RefreshToken = "refresh-1"
	})

	var out struct {
		ID string `json:"id"`
	}
	if err := c.Post(context.Background(), "/v1/orders", map[string]string{"sku": "a"}, &out); err != nil {
		t.Fatalf("post: %v", err)
	}

	if attempts != 2 {
		t.Fatalf("expected the 401 then one replay, got %d attempts", attempts)
	}
	if refreshCalls != 1 {
		t.Fatalf("expected exactly one refresh, got %d", refreshCalls)
	}
	if !strings.Contains(replayedBody, `"sku":"a"`) {
		t.Fatalf("replayed body lost the payload: %q", replayedBody)
	}
	if out.ID != "order-1" {
		t.Fatalf("response not decoded after replay: %+v", out)
	}

	access, refresh := c.tokens.snapshot()
	if access != "fresh" || refresh != "refresh-2" {
		t.Fatalf("rotated tokens not stored: %q %q", access, refresh)
	}
}

func TestClient_401WithoutRefreshTokenFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := testClient(t, srv, func(cfg *Config) {
		cfg.APIKey = ""
		cfg.AccessToken = "stale-opaque"
	})

	err := c.Get(context.Background(), "/v1/ping", nil, nil)
	if !errors.Is(err, ErrNoRefreshToken) {
		t.Fatalf("expected ErrNoRefreshToken, got %v", err)
	}
}

func TestClient_SecondConsecutive401IsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/auth/refresh" {
			_, _ = w.Write([]byte(`{"accessToken":"still-bad"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := testClient(t, srv, func(cfg *Config) {
		cfg.AccessToken = "stale"
		cfg.RefreshToken = "refresh-1"
	})

	err := c.Get(context.Background(), "/v1/ping", nil, nil)
	if !IsUnauthorized(err) {
		t.Fatalf("a second 401 must surface, got %v", err)
	}
}

func TestClient_UploadSendsMultipart(t *testing.T) {
	var fileName, fileBody, contentTypeField string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer func() { _ = f.Close() }()
		buf, _ := io.ReadAll(f)
		fileName = hdr.Filename
		fileBody = string(buf)
		contentTypeField = r.FormValue("contentType")
		_, _ = w.Write([]byte(`{"id":"media-1"}`))
	}))
	defer srv.Close()

	c := testClient(t, srv, nil)
	var out struct {
		ID string `json:"id"`
	}
	err := c.Upload(context.Background(), "/v1/media", "file", "logo.png", "image/png",
		strings.NewReader("png-bytes"), &out)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if fileName != "logo.png" || fileBody != "png-bytes" || contentTypeField != "image/png" {
		t.Fatalf("multipart fields wrong: %q %q %q", fileName, fileBody, contentTypeField)
	}
	if out.ID != "media-1" {
		t.Fatalf("response not decoded: %+v", out)
	}
}

func TestClient_EmptyBodySuccessIsFine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := testClient(t, srv, nil)
	if err := c.Delete(context.Background(), "/v1/media/media-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
