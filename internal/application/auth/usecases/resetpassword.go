package usecases

import (
	"context"

	"deskline/internal/shared/logger"
	"deskline/internal/shared/utils"
)

type ResetPasswordCommand struct {
	ResetToken      string `json:"reset_token" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type ResetPasswordExecutor interface {
	Execute(ctx context.Context, cmd ResetPasswordCommand) (string, error)
}

type ResetPasswordUseCase struct {
	api    AuthAPI
	logger logger.Interface
}

func NewResetPasswordUseCase(api AuthAPI, log logger.Interface) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		api:    api,
		logger: log,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) (string, error) {
	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Errorw("invalid reset password command", "error", err)
		return "", err
	}

	message, err := uc.api.ResetPassword(ctx, cmd.ResetToken, cmd.Password, cmd.ConfirmPassword)
	if err != nil {
		uc.logger.Errorw("password reset failed", "error", err)
		return "", err
	}

	uc.logger.Infow("password reset completed")
	return message, nil
}
