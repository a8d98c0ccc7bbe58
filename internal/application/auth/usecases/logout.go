package usecases

import (
	"context"

	"deskline/internal/shared/logger"
)

type LogoutExecutor interface {
	Execute(ctx context.Context) error
}

type LogoutUseCase struct {
	sessions Sessions
	logger   logger.Interface
}

func NewLogoutUseCase(sessions Sessions, log logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessions: sessions,
		logger:   log,
	}
}

// Execute clears the local session. There is no server call: the token is
// simply discarded, and logging out twice is a no-op.
func (uc *LogoutUseCase) Execute(ctx context.Context) error {
	return uc.sessions.Logout()
}
