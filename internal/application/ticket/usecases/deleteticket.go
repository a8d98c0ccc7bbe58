package usecases

import (
	"context"

	"deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type DeleteTicketUseCase struct {
	api    TicketAPI
	cache  PageCache
	logger logger.Interface
}

func NewDeleteTicketUseCase(api TicketAPI, pageCache PageCache, log logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		api:    api,
		cache:  pageCache,
		logger: log,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket id is required")
	}

	uc.logger.Infow("executing delete ticket", "ticket_id", cmd.TicketID)

	if err := uc.api.DeleteTicket(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.cache.Invalidate()

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}
