// Package business wraps the tenant endpoints. The config fetch is the
// one with behavior: it goes through an injected cache with a TTL, so
// tenant settings live on the client instance instead of in global
// state.
package business

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/0xDjole/arky-go/arky"
	"github.com/0xDjole/arky-go/cache"
	"github.com/0xDjole/arky-go/types"
)

const defaultConfigTTL = 5 * time.Minute

type Client struct {
	c         *arky.Client
	cache     cache.Cache
	configTTL time.Duration
}

// NewClient builds the wrapper. A nil cache disables config caching.
func NewClient(c *arky.Client, store cache.Cache, configTTL time.Duration) *Client {
	if configTTL <= 0 {
		configTTL = defaultConfigTTL
	}
	return &Client{c: c, cache: store, configTTL: configTTL}
}

func (b *Client) Get(ctx context.Context, id string) (*types.Business, error) {
	var out types.Business
	if err := b.c.Get(ctx, "/v1/businesses/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type ListInput struct {
	Limit  int
	Cursor string
}

func (b *Client) List(ctx context.Context, in ListInput) (*types.BusinessList, error) {
	query := url.Values{}
	if in.Limit > 0 {
		query.Set("limit", strconv.Itoa(in.Limit))
	}
	if in.Cursor != "" {
		query.Set("cursor", in.Cursor)
	}

	var out types.BusinessList
	if err := b.c.Get(ctx, "/v1/businesses", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetConfig returns the tenant configuration, served from cache while
// the TTL holds. Cache failures fall through to a live fetch.
func (b *Client) GetConfig(ctx context.Context, id string) (*types.BusinessConfig, error) {
	key := "business-config:" + id

	if b.cache != nil {
		if raw, ok, err := b.cache.Get(ctx, key); err == nil && ok {
			var cfg types.BusinessConfig
			if json.Unmarshal(raw, &cfg) == nil {
				return &cfg, nil
			}
		}
	}

	var cfg types.BusinessConfig
	if err := b.c.Get(ctx, "/v1/businesses/"+id+"/config", nil, &cfg); err != nil {
		return nil, err
	}

	if b.cache != nil {
		raw, err := json.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("business: encode config for cache: %w", err)
		}
		_ = b.cache.Set(ctx, key, raw, b.configTTL)
	}
	return &cfg, nil
}
