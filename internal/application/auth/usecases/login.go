package usecases

import (
	"context"

	"deskline/internal/domain/session"
	"deskline/internal/shared/logger"
	"deskline/internal/shared/utils"
)

type LoginCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Remember bool
}

type LoginResult struct {
	User session.User
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LoginUseCase struct {
	api      AuthAPI
	sessions Sessions
	logger   logger.Interface
}

func NewLoginUseCase(api AuthAPI, sessions Sessions, log logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		api:      api,
		sessions: sessions,
		logger:   log,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	uc.logger.Infow("executing login", "email", cmd.Email, "remember", cmd.Remember)

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Errorw("invalid login command", "error", err)
		return nil, err
	}

	result, err := uc.api.Login(ctx, cmd.Email, cmd.Password)
	if err != nil {
		uc.logger.Errorw("login failed", "email", cmd.Email, "error", err)
		return nil, err
	}

	if err := uc.sessions.Login(result.Token, result.User); err != nil {
		return nil, err
	}

	// remembered credentials only change state after a successful login
	if err := uc.sessions.RememberCredentials(cmd.Email, cmd.Password, cmd.Remember); err != nil {
		uc.logger.Warnw("failed to update remembered login", "error", err)
	}

	uc.logger.Infow("login succeeded", "user_id", result.User.ID)
	return &LoginResult{User: result.User}, nil
}
