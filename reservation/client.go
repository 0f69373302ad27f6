package reservation

import (
	"context"
	"net/url"
	"strconv"

	"github.com/0xDjole/arky-go/arky"
	"github.com/0xDjole/arky-go/types"
)

// Client implements API over the platform's REST endpoints.
type Client struct {
	c *arky.Client
}

func NewClient(c *arky.Client) *Client {
	return &Client{c: c}
}

func (r *Client) GetService(ctx context.Context, in GetServiceInput) (*types.Service, error) {
	var svc types.Service
	path := "/v1/businesses/" + r.c.BusinessID() + "/services/" + in.ID
	if err := r.c.Get(ctx, path, nil, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *Client) GetServiceProviders(ctx context.Context, in GetServiceProvidersInput) ([]types.Provider, error) {
	query := url.Values{}
	query.Set("from", strconv.FormatInt(in.From, 10))
	query.Set("to", strconv.FormatInt(in.To, 10))

	var out struct {
		Items []types.Provider `json:"items"`
	}
	path := "/v1/businesses/" + r.c.BusinessID() + "/services/" + in.ServiceID + "/providers"
	if err := r.c.Get(ctx, path, query, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (r *Client) GetProviders(ctx context.Context, in GetProvidersInput) (*types.ProviderList, error) {
	query := url.Values{}
	if in.ServiceID != "" {
		query.Set("serviceId", in.ServiceID)
	}
	if in.Limit > 0 {
		query.Set("limit", strconv.Itoa(in.Limit))
	}

	var out types.ProviderList
	path := "/v1/businesses/" + r.c.BusinessID() + "/providers"
	if err := r.c.Get(ctx, path, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Client) Checkout(ctx context.Context, in types.CheckoutRequest) (*types.CheckoutResult, error) {
	var out types.CheckoutResult
	path := "/v1/businesses/" + r.c.BusinessID() + "/orders/checkout"
	if err := r.c.Post(ctx, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Client) GetQuote(ctx context.Context, in types.QuoteRequest) (*types.Quote, error) {
	var out types.Quote
	path := "/v1/businesses/" + r.c.BusinessID() + "/orders/quote"
	if err := r.c.Post(ctx, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
