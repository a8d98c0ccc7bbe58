package usecases

import (
	"context"

	"deskline/internal/domain/session"
	"deskline/internal/domain/upload"
	"deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
)

type UploadAvatarCommand struct {
	Photo upload.Attachment
}

type UploadAvatarResult struct {
	AvatarURL string
}

type UploadAvatarExecutor interface {
	Execute(ctx context.Context, cmd UploadAvatarCommand) (*UploadAvatarResult, error)
}

type UploadAvatarUseCase struct {
	api      AuthAPI
	sessions Sessions
	logger   logger.Interface
}

func NewUploadAvatarUseCase(api AuthAPI, sessions Sessions, log logger.Interface) *UploadAvatarUseCase {
	return &UploadAvatarUseCase{
		api:      api,
		sessions: sessions,
		logger:   log,
	}
}

func (uc *UploadAvatarUseCase) Execute(ctx context.Context, cmd UploadAvatarCommand) (*UploadAvatarResult, error) {
	if _, err := uc.sessions.Require(); err != nil {
		return nil, err
	}
	if cmd.Photo.Path == "" {
		return nil, errors.NewValidationError("profile photo is required")
	}
	// size is checked before any bytes leave the machine
	if err := cmd.Photo.CheckAvatarSize(); err != nil {
		uc.logger.Errorw("profile photo rejected", "file", cmd.Photo.Name, "size", cmd.Photo.Size)
		return nil, errors.NewValidationError(err.Error())
	}

	user, avatarURL, err := uc.api.UpdateAvatar(ctx, cmd.Photo)
	if err != nil {
		uc.logger.Errorw("avatar upload failed", "error", err)
		return nil, err
	}

	if user.ID != 0 {
		if err := uc.sessions.ReplaceUser(user); err != nil {
			return nil, err
		}
	} else if avatarURL != "" {
		if err := uc.sessions.UpdateUser(session.UserPatch{AvatarURL: &avatarURL}); err != nil {
			return nil, err
		}
	}

	uc.logger.Infow("avatar updated", "avatar_url", avatarURL)
	return &UploadAvatarResult{AvatarURL: avatarURL}, nil
}
