package usecases

import (
	"context"

	"deskline/internal/domain/catalog"
	"deskline/internal/shared/logger"
)

// CatalogAPI is the slice of the remote API the catalog use cases touch.
type CatalogAPI interface {
	ListProviders(ctx context.Context) ([]catalog.Provider, error)
	ListServices(ctx context.Context, providerID uint) ([]catalog.Service, error)
}

type ListProvidersExecutor interface {
	Execute(ctx context.Context) ([]catalog.Provider, error)
}

type ListProvidersUseCase struct {
	api    CatalogAPI
	logger logger.Interface
}

func NewListProvidersUseCase(api CatalogAPI, log logger.Interface) *ListProvidersUseCase {
	return &ListProvidersUseCase{
		api:    api,
		logger: log,
	}
}

func (uc *ListProvidersUseCase) Execute(ctx context.Context) ([]catalog.Provider, error) {
	uc.logger.Infow("fetching service providers")

	providers, err := uc.api.ListProviders(ctx)
	if err != nil {
		uc.logger.Errorw("failed to fetch service providers", "error", err)
		return nil, err
	}
	return providers, nil
}
