package usecases

import (
	"context"

	"deskline/internal/domain/upload"
	"deskline/internal/shared/logger"
	"deskline/internal/shared/utils"
)

type CreateTicketCommand struct {
	ProviderID uint   `json:"service_provider_id" validate:"required"`
	ServiceID  uint   `json:"service_id" validate:"required"`
	Details    string `json:"ticket_details" validate:"required,min=10"`
	Documents  []upload.Attachment
}

type CreateTicketResult struct {
	TicketID     uint
	TicketNumber string
	// RejectedFiles lists attachments excluded for exceeding the size
	// ceiling. The submission went ahead without them.
	RejectedFiles []string
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type CreateTicketUseCase struct {
	api    TicketAPI
	cache  PageCache
	logger logger.Interface
}

func NewCreateTicketUseCase(api TicketAPI, pageCache PageCache, log logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		api:    api,
		cache:  pageCache,
		logger: log,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket",
		"provider_id", cmd.ProviderID,
		"service_id", cmd.ServiceID,
		"documents", len(cmd.Documents))

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	accepted, rejected := upload.SplitOversized(cmd.Documents)
	rejectedNames := make([]string, 0, len(rejected))
	for _, r := range rejected {
		uc.logger.Warnw("attachment exceeds size ceiling, excluded", "file", r.Name, "size", r.Size)
		rejectedNames = append(rejectedNames, r.Name)
	}

	created, err := uc.api.CreateTicket(ctx, cmd.ProviderID, cmd.ServiceID, cmd.Details, accepted)
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, err
	}

	uc.cache.Invalidate()

	uc.logger.Infow("ticket created",
		"ticket_id", created.TicketID,
		"ticket_number", created.TicketNumber)

	return &CreateTicketResult{
		TicketID:      created.TicketID,
		TicketNumber:  created.TicketNumber,
		RejectedFiles: rejectedNames,
	}, nil
}
