package usecases

import (
	"context"

	"deskline/internal/domain/catalog"
	"deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
)

type ListServicesQuery struct {
	ProviderID uint
}

type ListServicesExecutor interface {
	Execute(ctx context.Context, query ListServicesQuery) ([]catalog.Service, error)
}

type ListServicesUseCase struct {
	api    CatalogAPI
	logger logger.Interface
}

func NewListServicesUseCase(api CatalogAPI, log logger.Interface) *ListServicesUseCase {
	return &ListServicesUseCase{
		api:    api,
		logger: log,
	}
}

func (uc *ListServicesUseCase) Execute(ctx context.Context, query ListServicesQuery) ([]catalog.Service, error) {
	if query.ProviderID == 0 {
		return nil, errors.NewValidationError("service provider is required")
	}

	uc.logger.Infow("fetching services", "provider_id", query.ProviderID)

	services, err := uc.api.ListServices(ctx, query.ProviderID)
	if err != nil {
		uc.logger.Errorw("failed to fetch services", "provider_id", query.ProviderID, "error", err)
		return nil, err
	}
	return services, nil
}
