package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskline/internal/domain/upload"
	"deskline/internal/infrastructure/api"
	"deskline/internal/infrastructure/cache"
	"deskline/internal/shared/constants"
	apperrors "deskline/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	mockAPI := &mockTicketAPI{
		CreateTicketFunc: func(ctx context.Context, providerID, serviceID uint, details string, documents []upload.Attachment) (*api.CreateTicketResult, error) {
			assert.Equal(t, uint(3), providerID)
			assert.Equal(t, uint(7), serviceID)
			return &api.CreateTicketResult{TicketID: 42, TicketNumber: "TKT-0042"}, nil
		},
	}
	pageCache := cache.NewTicketCache()
	token := pageCache.Select(1)
	pageCache.Commit(token, cache.PageResult{Tickets: tickets(1), TotalRecords: 1})

	useCase := NewCreateTicketUseCase(mockAPI, pageCache, mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		ProviderID: 3,
		ServiceID:  7,
		Details:    "printer keeps jamming on duplex jobs",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.TicketID)
	assert.Equal(t, "TKT-0042", result.TicketNumber)
	assert.Empty(t, result.RejectedFiles)

	// the list cache is invalidated so the next fetch sees the new ticket
	_, ok := pageCache.Page(1)
	assert.False(t, ok)
}

func TestCreateTicketUseCase_Execute_ValidationBlocksNetwork(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{
			name: "missing provider",
			cmd:  CreateTicketCommand{ServiceID: 7, Details: "details long enough here"},
		},
		{
			name: "missing service",
			cmd:  CreateTicketCommand{ProviderID: 3, Details: "details long enough here"},
		},
		{
			name: "details too short",
			cmd:  CreateTicketCommand{ProviderID: 3, ServiceID: 7, Details: "short"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiCalls := 0
			mockAPI := &mockTicketAPI{
				CreateTicketFunc: func(ctx context.Context, providerID, serviceID uint, details string, documents []upload.Attachment) (*api.CreateTicketResult, error) {
					apiCalls++
					return &api.CreateTicketResult{}, nil
				},
			}

			useCase := NewCreateTicketUseCase(mockAPI, cache.NewTicketCache(), mockLogger{})
			_, err := useCase.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
			assert.Zero(t, apiCalls)
		})
	}
}

func TestCreateTicketUseCase_Execute_OversizedFilesExcluded(t *testing.T) {
	var submitted []upload.Attachment
	mockAPI := &mockTicketAPI{
		CreateTicketFunc: func(ctx context.Context, providerID, serviceID uint, details string, documents []upload.Attachment) (*api.CreateTicketResult, error) {
			submitted = documents
			return &api.CreateTicketResult{TicketID: 1}, nil
		},
	}

	useCase := NewCreateTicketUseCase(mockAPI, cache.NewTicketCache(), mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateTicketCommand{
		ProviderID: 3,
		ServiceID:  7,
		Details:    "printer keeps jamming on duplex jobs",
		Documents: []upload.Attachment{
			{Name: "at-limit.pdf", Size: constants.MaxDocumentBytes},
			{Name: "too-big.pdf", Size: constants.MaxDocumentBytes + 1},
		},
	})

	require.NoError(t, err)
	require.Len(t, submitted, 1)
	assert.Equal(t, "at-limit.pdf", submitted[0].Name)
	assert.Equal(t, []string{"too-big.pdf"}, result.RejectedFiles)
}

func TestCreateTicketUseCase_Execute_APIFailureKeepsCache(t *testing.T) {
	mockAPI := &mockTicketAPI{
		CreateTicketFunc: func(ctx context.Context, providerID, serviceID uint, details string, documents []upload.Attachment) (*api.CreateTicketResult, error) {
			return nil, apperrors.NewServerError("ticket could not be created")
		},
	}
	pageCache := cache.NewTicketCache()
	token := pageCache.Select(1)
	pageCache.Commit(token, cache.PageResult{Tickets: tickets(1), TotalRecords: 1})

	useCase := NewCreateTicketUseCase(mockAPI, pageCache, mockLogger{})
	_, err := useCase.Execute(context.Background(), CreateTicketCommand{
		ProviderID: 3,
		ServiceID:  7,
		Details:    "printer keeps jamming on duplex jobs",
	})

	require.Error(t, err)
	_, ok := pageCache.Page(1)
	assert.True(t, ok)
}
