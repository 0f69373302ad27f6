// Package catalog wraps the product and service listing endpoints.
// Thin by design: one function per endpoint, typed in and out.
package catalog

import (
	"context"
	"net/url"
	"strconv"

	"github.com/0xDjole/arky-go/arky"
	"github.com/0xDjole/arky-go/types"
)

type Client struct {
	c *arky.Client
}

func NewClient(c *arky.Client) *Client {
	return &Client{c: c}
}

type ListInput struct {
	Limit  int
	Cursor string
}

func (cl *Client) listQuery(in ListInput) url.Values {
	query := url.Values{}
	if in.Limit > 0 {
		query.Set("limit", strconv.Itoa(in.Limit))
	}
	if in.Cursor != "" {
		query.Set("cursor", in.Cursor)
	}
	return query
}

func (cl *Client) GetService(ctx context.Context, id string) (*types.Service, error) {
	var out types.Service
	path := "/v1/businesses/" + cl.c.BusinessID() + "/services/" + id
	if err := cl.c.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cl *Client) ListServices(ctx context.Context, in ListInput) (*types.ServiceList, error) {
	var out types.ServiceList
	path := "/v1/businesses/" + cl.c.BusinessID() + "/services"
	if err := cl.c.Get(ctx, path, cl.listQuery(in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cl *Client) GetProduct(ctx context.Context, id string) (*types.Product, error) {
	var out types.Product
	path := "/v1/businesses/" + cl.c.BusinessID() + "/products/" + id
	if err := cl.c.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cl *Client) ListProducts(ctx context.Context, in ListInput) (*types.ProductList, error) {
	var out types.ProductList
	path := "/v1/businesses/" + cl.c.BusinessID() + "/products"
	if err := cl.c.Get(ctx, path, cl.listQuery(in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
