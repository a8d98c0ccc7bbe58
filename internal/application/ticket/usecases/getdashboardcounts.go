package usecases

import (
	"context"

	"deskline/internal/domain/ticket"
	"deskline/internal/shared/logger"
)

type GetDashboardCountsResult struct {
	Counts ticket.DashboardCounts
	// FromMirror marks counts derived from the cached snapshot after the
	// counts endpoint could not be reached; they are lower bounds.
	FromMirror bool
}

type GetDashboardCountsExecutor interface {
	Execute(ctx context.Context) (*GetDashboardCountsResult, error)
}

type GetDashboardCountsUseCase struct {
	api    TicketAPI
	mirror MirrorStore
	logger logger.Interface
}

func NewGetDashboardCountsUseCase(api TicketAPI, mirror MirrorStore, log logger.Interface) *GetDashboardCountsUseCase {
	return &GetDashboardCountsUseCase{
		api:    api,
		mirror: mirror,
		logger: log,
	}
}

func (uc *GetDashboardCountsUseCase) Execute(ctx context.Context) (*GetDashboardCountsResult, error) {
	uc.logger.Infow("fetching dashboard counts")

	counts, err := uc.api.DashboardCounts(ctx)
	if err == nil {
		return &GetDashboardCountsResult{Counts: *counts}, nil
	}
	uc.logger.Errorw("failed to fetch dashboard counts", "error", err)

	tickets, _, ok, mirrorErr := uc.mirror.LoadMirror()
	if mirrorErr != nil || !ok || len(tickets) == 0 {
		return nil, err
	}

	uc.logger.Infow("deriving dashboard counts from mirror", "tickets", len(tickets))
	return &GetDashboardCountsResult{
		Counts:     ticket.CountsOf(tickets),
		FromMirror: true,
	}, nil
}
