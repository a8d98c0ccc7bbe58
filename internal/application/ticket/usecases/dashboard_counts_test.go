package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskline/internal/domain/ticket"
	apperrors "deskline/internal/shared/errors"
)

func TestGetDashboardCountsUseCase_Execute_Success(t *testing.T) {
	mockAPI := &mockTicketAPI{
		DashboardCountsFunc: func(ctx context.Context) (*ticket.DashboardCounts, error) {
			return &ticket.DashboardCounts{Total: 12, Completed: 5, InProgress: 3, Pending: 4}, nil
		},
	}

	useCase := NewGetDashboardCountsUseCase(mockAPI, &mockMirror{}, mockLogger{})
	result, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), result.Counts.Total)
	assert.False(t, result.FromMirror)
}

func TestGetDashboardCountsUseCase_Execute_FallsBackToMirror(t *testing.T) {
	mockAPI := &mockTicketAPI{
		DashboardCountsFunc: func(ctx context.Context) (*ticket.DashboardCounts, error) {
			return nil, apperrors.NewTransportError("connection refused")
		},
	}
	mirror := &mockMirror{
		tickets: []ticket.Ticket{
			{ID: 1, Status: ticket.StatusCompleted},
			{ID: 2, Status: ticket.StatusInProgress},
			{ID: 3, Status: ticket.StatusPending},
		},
		totalRecords: 3,
		hasSnapshot:  true,
	}

	useCase := NewGetDashboardCountsUseCase(mockAPI, mirror, mockLogger{})
	result, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	assert.True(t, result.FromMirror)
	assert.Equal(t, int64(3), result.Counts.Total)
	assert.Equal(t, int64(1), result.Counts.Completed)
	assert.Equal(t, int64(1), result.Counts.InProgress)
	assert.Equal(t, int64(1), result.Counts.Pending)
}

func TestGetDashboardCountsUseCase_Execute_NoMirrorSurfacesError(t *testing.T) {
	mockAPI := &mockTicketAPI{
		DashboardCountsFunc: func(ctx context.Context) (*ticket.DashboardCounts, error) {
			return nil, apperrors.NewTransportError("connection refused")
		},
	}

	useCase := NewGetDashboardCountsUseCase(mockAPI, &mockMirror{}, mockLogger{})
	_, err := useCase.Execute(context.Background())

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeTransport))
}
