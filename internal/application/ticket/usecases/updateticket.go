package usecases

import (
	"context"

	"deskline/internal/domain/upload"
	"deskline/internal/shared/logger"
	"deskline/internal/shared/utils"
)

type UpdateTicketCommand struct {
	TicketID   uint   `json:"ticket_id" validate:"required"`
	ProviderID uint   `json:"service_provider_id" validate:"required"`
	ServiceID  uint   `json:"service_id" validate:"required"`
	Details    string `json:"ticket_details" validate:"required,min=10"`

	NewDocuments []upload.Attachment

	// RemovedDocumentIDs are deleted with immediate, independent calls;
	// removing a document is a confirmable, irreversible action distinct
	// from editing fields.
	RemovedDocumentIDs []uint
}

type UpdateTicketResult struct {
	RejectedFiles []string
	// RemovalErrors maps document ids whose deletion failed to the error
	// message; the field update itself still proceeded.
	RemovalErrors map[uint]string
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type UpdateTicketUseCase struct {
	api    TicketAPI
	cache  PageCache
	logger logger.Interface
}

func NewUpdateTicketUseCase(api TicketAPI, pageCache PageCache, log logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		api:    api,
		cache:  pageCache,
		logger: log,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket",
		"ticket_id", cmd.TicketID,
		"new_documents", len(cmd.NewDocuments),
		"removed_documents", len(cmd.RemovedDocumentIDs))

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Errorw("invalid update ticket command", "error", err)
		return nil, err
	}

	result := &UpdateTicketResult{RemovalErrors: map[uint]string{}}

	for _, documentID := range cmd.RemovedDocumentIDs {
		if err := uc.api.DeleteDocument(ctx, documentID); err != nil {
			uc.logger.Errorw("failed to delete document", "document_id", documentID, "error", err)
			result.RemovalErrors[documentID] = err.Error()
		}
	}

	accepted, rejected := upload.SplitOversized(cmd.NewDocuments)
	for _, r := range rejected {
		uc.logger.Warnw("attachment exceeds size ceiling, excluded", "file", r.Name, "size", r.Size)
		result.RejectedFiles = append(result.RejectedFiles, r.Name)
	}

	if err := uc.api.UpdateTicket(ctx, cmd.TicketID, cmd.ProviderID, cmd.ServiceID, cmd.Details, accepted); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.cache.Invalidate()

	uc.logger.Infow("ticket updated", "ticket_id", cmd.TicketID)
	return result, nil
}
