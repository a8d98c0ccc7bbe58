package api

import (
	"context"
	"fmt"
	"net/http"

	"deskline/internal/domain/catalog"
)

// ListProviders fetches the service-provider taxonomy roots.
func (c *Client) ListProviders(ctx context.Context) ([]catalog.Provider, error) {
	var resp struct {
		Data []catalog.Provider `json:"data"`
	}
	err := c.doRequest(ctx, requestSpec{
		method:    http.MethodGet,
		path:      "/service/providers",
		readQuery: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	return resp.Data, nil
}

// ListServices fetches the services offered by one provider.
func (c *Client) ListServices(ctx context.Context, providerID uint) ([]catalog.Service, error) {
	var resp struct {
		Data []catalog.Service `json:"data"`
	}
	err := c.doRequest(ctx, requestSpec{
		method:    http.MethodPost,
		path:      "/services",
		body:      map[string]uint{"provider_id": providerID},
		readQuery: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	// the provider id is not echoed per row by every deployment
	for i := range resp.Data {
		if resp.Data[i].ProviderID == 0 {
			resp.Data[i].ProviderID = providerID
		}
	}
	return resp.Data, nil
}
