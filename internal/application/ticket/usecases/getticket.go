package usecases

import (
	"context"

	"deskline/internal/domain/ticket"
	"deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*ticket.Ticket, error)
}

type GetTicketUseCase struct {
	api    TicketAPI
	logger logger.Interface
}

func NewGetTicketUseCase(api TicketAPI, log logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		api:    api,
		logger: log,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*ticket.Ticket, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket id is required")
	}

	uc.logger.Infow("fetching ticket detail", "ticket_id", query.TicketID)

	fetched, err := uc.api.ShowTicket(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to fetch ticket detail", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}
	return fetched, nil
}
