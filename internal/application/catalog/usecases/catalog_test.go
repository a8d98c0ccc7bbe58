package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskline/internal/domain/catalog"
	apperrors "deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
)

type mockCatalogAPI struct {
	ListProvidersFunc func(ctx context.Context) ([]catalog.Provider, error)
	ListServicesFunc  func(ctx context.Context, providerID uint) ([]catalog.Service, error)
}

func (m *mockCatalogAPI) ListProviders(ctx context.Context) ([]catalog.Provider, error) {
	return m.ListProvidersFunc(ctx)
}

func (m *mockCatalogAPI) ListServices(ctx context.Context, providerID uint) ([]catalog.Service, error) {
	return m.ListServicesFunc(ctx, providerID)
}

type mockLogger struct{}

func (mockLogger) Debugw(string, ...any)          {}
func (mockLogger) Infow(string, ...any)           {}
func (mockLogger) Warnw(string, ...any)           {}
func (mockLogger) Errorw(string, ...any)          {}
func (l mockLogger) With(...any) logger.Interface { return l }

var _ CatalogAPI = (*mockCatalogAPI)(nil)

func TestListProvidersUseCase_Execute(t *testing.T) {
	mockAPI := &mockCatalogAPI{
		ListProvidersFunc: func(ctx context.Context) ([]catalog.Provider, error) {
			return []catalog.Provider{{ID: 1, Name: "IT"}, {ID: 2, Name: "Facilities"}}, nil
		},
	}

	useCase := NewListProvidersUseCase(mockAPI, mockLogger{})
	providers, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "IT", providers[0].Name)
}

func TestListServicesUseCase_Execute(t *testing.T) {
	mockAPI := &mockCatalogAPI{
		ListServicesFunc: func(ctx context.Context, providerID uint) ([]catalog.Service, error) {
			assert.Equal(t, uint(1), providerID)
			return []catalog.Service{{ID: 4, ProviderID: 1, Name: "Email"}}, nil
		},
	}

	useCase := NewListServicesUseCase(mockAPI, mockLogger{})
	services, err := useCase.Execute(context.Background(), ListServicesQuery{ProviderID: 1})

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, uint(1), services[0].ProviderID)
}

func TestListServicesUseCase_Execute_ProviderRequired(t *testing.T) {
	apiCalls := 0
	mockAPI := &mockCatalogAPI{
		ListServicesFunc: func(ctx context.Context, providerID uint) ([]catalog.Service, error) {
			apiCalls++
			return nil, nil
		},
	}

	useCase := NewListServicesUseCase(mockAPI, mockLogger{})
	_, err := useCase.Execute(context.Background(), ListServicesQuery{})

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	assert.Zero(t, apiCalls)
}
