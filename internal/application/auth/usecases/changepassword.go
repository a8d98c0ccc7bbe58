package usecases

import (
	"context"

	"deskline/internal/shared/logger"
	"deskline/internal/shared/utils"
)

type ChangePasswordCommand struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"new_password_confirmation" validate:"required,eqfield=NewPassword"`
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) (string, error)
}

type ChangePasswordUseCase struct {
	api      AuthAPI
	sessions Sessions
	logger   logger.Interface
}

func NewChangePasswordUseCase(api AuthAPI, sessions Sessions, log logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		api:      api,
		sessions: sessions,
		logger:   log,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) (string, error) {
	if _, err := uc.sessions.Require(); err != nil {
		return "", err
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Errorw("invalid change password command", "error", err)
		return "", err
	}

	message, err := uc.api.ChangePassword(ctx, cmd.OldPassword, cmd.NewPassword, cmd.ConfirmPassword)
	if err != nil {
		uc.logger.Errorw("password change failed", "error", err)
		return "", err
	}

	uc.logger.Infow("password changed")
	return message, nil
}
