// Package media wraps the asset endpoints.
package media

import (
	"context"
	"io"

	"github.com/0xDjole/arky-go/arky"
	"github.com/0xDjole/arky-go/types"
)

type Client struct {
	c *arky.Client
}

func NewClient(c *arky.Client) *Client {
	return &Client{c: c}
}

// Upload streams one file to the platform's media store.
func (m *Client) Upload(ctx context.Context, fileName, contentType string, r io.Reader) (*types.Media, error) {
	var out types.Media
	path := "/v1/businesses/" + m.c.BusinessID() + "/media"
	if err := m.c.Upload(ctx, path, "file", fileName, contentType, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *Client) Get(ctx context.Context, id string) (*types.Media, error) {
	var out types.Media
	path := "/v1/businesses/" + m.c.BusinessID() + "/media/" + id
	if err := m.c.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an asset.
func (m *Client) Delete(ctx context.Context, id string) error {
	path := "/v1/businesses/" + m.c.BusinessID() + "/media/" + id
	return m.c.Delete(ctx, path)
}
