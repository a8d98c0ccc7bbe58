package usecases

import (
	"context"

	"deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
)

type DeleteDocumentCommand struct {
	DocumentID uint
}

type DeleteDocumentExecutor interface {
	Execute(ctx context.Context, cmd DeleteDocumentCommand) error
}

type DeleteDocumentUseCase struct {
	api    TicketAPI
	cache  PageCache
	logger logger.Interface
}

func NewDeleteDocumentUseCase(api TicketAPI, pageCache PageCache, log logger.Interface) *DeleteDocumentUseCase {
	return &DeleteDocumentUseCase{
		api:    api,
		cache:  pageCache,
		logger: log,
	}
}

func (uc *DeleteDocumentUseCase) Execute(ctx context.Context, cmd DeleteDocumentCommand) error {
	if cmd.DocumentID == 0 {
		return errors.NewValidationError("document id is required")
	}

	uc.logger.Infow("executing delete document", "document_id", cmd.DocumentID)

	if err := uc.api.DeleteDocument(ctx, cmd.DocumentID); err != nil {
		uc.logger.Errorw("failed to delete document", "document_id", cmd.DocumentID, "error", err)
		return err
	}

	uc.cache.Invalidate()
	return nil
}
