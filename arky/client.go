package arky

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const defaultTimeout = 10 * time.Second

// Client is the core HTTP client every resource package delegates to.
// It owns base-URL resolution, authentication headers, transparent
// token refresh and error decoding. Construct one per tenant with New.
type Client struct {
	baseURL    *url.URL
	businessID string
	apiKey     string
	tokens     *tokenSource
	hc         *http.Client
	logger     *slog.Logger
	metrics    *Metrics
	userAgent  string
}

// New builds a Client from cfg. The zero-value transport is an
// otel-instrumented http.Transport with a 10 second timeout.
func New(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("arky: parse base url: %w", err)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = discardLogger()
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "arky-go"
	}

	return &Client{
		baseURL:    base,
		businessID: cfg.BusinessID,
		apiKey:     cfg.APIKey,
		tokens:     &tokenSource{access: cfg.AccessToken, refresh: cfg.RefreshToken},
		hc:         hc,
		logger:     logger,
		metrics:    cfg.Metrics,
		userAgent:  userAgent,
	}, nil
}

// BusinessID returns the tenant this client is scoped to.
func (c *Client) BusinessID() string {
	return c.businessID
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, "", nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("arky: encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, nil, "application/json", payload, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("arky: encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPut, path, nil, "application/json", payload, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil, nil)
}

// Upload issues a multipart POST with a single file field.
func (c *Client) Upload(ctx context.Context, path, field, fileName, contentType string, r io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, fileName)
	if err != nil {
		return fmt.Errorf("arky: build multipart body: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return fmt.Errorf("arky: read upload payload: %w", err)
	}
	if contentType != "" {
		if err := mw.WriteField("contentType", contentType); err != nil {
			return fmt.Errorf("arky: build multipart body: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("arky: build multipart body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, nil, mw.FormDataContentType(), buf.Bytes(), out)
}

// do runs one request with at most one retry after a token refresh.
// The body is held as bytes so the retry can replay it.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body []byte, out any) error {
	requestID := uuid.NewString()
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("arky.request_id", requestID),
		attribute.String("arky.business_id", c.businessID),
	)

	refreshed := false
	for {
		access, refresh := c.tokens.snapshot()
		if access != "" && refresh != "" && !refreshed && expiresWithin(access, refreshSkew) {
			if err := c.refreshAccessToken(ctx); err != nil {
				return err
			}
			refreshed = true
			access, _ = c.tokens.snapshot()
		}

		u := c.baseURL.JoinPath(strings.TrimPrefix(path, "/"))
		if len(query) > 0 {
			u.RawQuery = query.Encode()
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("X-Request-Id", requestID)
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		switch {
		case access != "":
			req.Header.Set("Authorization", "Bearer "+access)
		case c.apiKey != "":
			req.Header.Set("X-Api-Key", c.apiKey)
		}

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			return fmt.Errorf("arky: %s %s: %w", method, path, err)
		}
		c.metrics.observe(method, resp.StatusCode, time.Since(start))
		c.logger.Debug("api request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)

		if resp.StatusCode == http.StatusUnauthorized && access != "" && !refreshed {
			_ = resp.Body.Close()
			if err := c.refreshAccessToken(ctx); err != nil {
				return err
			}
			refreshed = true
			continue
		}

		return drainResponse(resp, requestID, out)
	}
}

func drainResponse(resp *http.Response, requestID string, out any) error {
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("arky: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, RequestID: requestID}
		var body struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &body) == nil {
			apiErr.Code = body.Code
			apiErr.Message = body.Message
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("arky: decode response: %w", err)
	}
	return nil
}
