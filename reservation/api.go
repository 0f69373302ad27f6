package reservation

import (
	"context"

	"github.com/0xDjole/arky-go/types"
)

// API is the platform collaborator the engine drives. The SDK's REST
// client implements it; tests substitute fakes.
type API interface {
	GetService(ctx context.Context, in GetServiceInput) (*types.Service, error)
	GetServiceProviders(ctx context.Context, in GetServiceProvidersInput) ([]types.Provider, error)
	GetProviders(ctx context.Context, in GetProvidersInput) (*types.ProviderList, error)
	Checkout(ctx context.Context, in types.CheckoutRequest) (*types.CheckoutResult, error)
	GetQuote(ctx context.Context, in types.QuoteRequest) (*types.Quote, error)
}

type GetServiceInput struct {
	ID string
}

// GetServiceProvidersInput bounds the queried month; the server clips
// each provider's timeline to [From, To].
type GetServiceProvidersInput struct {
	ServiceID string
	From      int64
	To        int64
}

type GetProvidersInput struct {
	ServiceID string
	Limit     int
}
