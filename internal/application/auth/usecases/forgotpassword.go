package usecases

import (
	"context"

	"deskline/internal/shared/logger"
	"deskline/internal/shared/utils"
)

type ForgotPasswordCommand struct {
	Email string `json:"email" validate:"required,email"`
}

type ForgotPasswordResult struct {
	Message string
	// Link is only populated by deployments that return the reset link
	// directly instead of mailing it.
	Link string
}

type ForgotPasswordExecutor interface {
	Execute(ctx context.Context, cmd ForgotPasswordCommand) (*ForgotPasswordResult, error)
}

type ForgotPasswordUseCase struct {
	api    AuthAPI
	logger logger.Interface
}

func NewForgotPasswordUseCase(api AuthAPI, log logger.Interface) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		api:    api,
		logger: log,
	}
}

func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, cmd ForgotPasswordCommand) (*ForgotPasswordResult, error) {
	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Errorw("invalid forgot password command", "error", err)
		return nil, err
	}

	message, link, err := uc.api.ForgotPassword(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("forgot password request failed", "email", cmd.Email, "error", err)
		return nil, err
	}
	return &ForgotPasswordResult{Message: message, Link: link}, nil
}
