// Package order wraps the order endpoints: checkout, pricing preview,
// and order retrieval. The reservation engine reuses Checkout/Quote
// through its API collaborator; this package exposes the same calls to
// SDK consumers that manage carts themselves.
package order

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

func (o *Client) Get(ctx context.Context, id string) (*types.Order, error) {
	var out types.Order
	path := "/v1/businesses/" + o.c.BusinessID() + "/orders/" + id
	if err := o.c.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type ListInput struct {
	Status string
	Limit  int
	Cursor string
}

func (o *Client) List(ctx context.Context, in ListInput) (*types.OrderList, error) {
	query := url.Values{}
	if in.Status != "" {
		query.Set("status", in.Status)
	}
	if in.Limit > 0 {
		query.Set("limit", strconv.Itoa(in.Limit))
	}
	if in.Cursor != "" {
		query.Set("cursor", in.Cursor)
	}

	var out types.OrderList
	path := "/v1/businesses/" + o.c.BusinessID() + "/orders"
	if err := o.c.Get(ctx, path, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *Client) Checkout(ctx context.Context, in types.CheckoutRequest) (*types.CheckoutResult, error) {
	var out types.CheckoutResult
	path := "/v1/businesses/" + o.c.BusinessID() + "/orders/checkout"
	if err := o.c.Post(ctx, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *Client) Quote(ctx context.Context, in types.QuoteRequest) (*types.Quote, error) {
	var out types.Quote
	path := "/v1/businesses/" + o.c.BusinessID() + "/orders/quote"
	if err := o.c.Post(ctx, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
