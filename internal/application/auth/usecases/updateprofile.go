package usecases

import (
	"context"

	"deskline/internal/domain/session"
	"deskline/internal/shared/logger"
	"deskline/internal/shared/utils"
)

type UpdateProfileCommand struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*session.User, error)
}

type UpdateProfileUseCase struct {
	api      AuthAPI
	sessions Sessions
	logger   logger.Interface
}

func NewUpdateProfileUseCase(api AuthAPI, sessions Sessions, log logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		api:      api,
		sessions: sessions,
		logger:   log,
	}
}

// Execute sends the edited fields to the server first and only then
// merges them into the stored session, so a rejected update never leaves
// a half-applied local profile.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*session.User, error) {
	if _, err := uc.sessions.Require(); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Errorw("invalid update profile command", "error", err)
		return nil, err
	}

	updated, err := uc.api.UpdateProfile(ctx, cmd.FirstName, cmd.LastName, cmd.Phone)
	if err != nil {
		uc.logger.Errorw("profile update failed", "error", err)
		return nil, err
	}

	if updated.ID != 0 {
		if err := uc.sessions.ReplaceUser(updated); err != nil {
			return nil, err
		}
	} else {
		// deployment did not echo the record; merge what we sent
		patch := session.UserPatch{
			FirstName: &cmd.FirstName,
			LastName:  &cmd.LastName,
			Phone:     &cmd.Phone,
		}
		if err := uc.sessions.UpdateUser(patch); err != nil {
			return nil, err
		}
	}

	current := uc.sessions.Current().User
	uc.logger.Infow("profile updated", "user_id", current.ID)
	return &current, nil
}

type GetProfileExecutor interface {
	Execute(ctx context.Context) (*session.User, error)
}

type GetProfileUseCase struct {
	api      AuthAPI
	sessions Sessions
	logger   logger.Interface
}

func NewGetProfileUseCase(api AuthAPI, sessions Sessions, log logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		api:      api,
		sessions: sessions,
		logger:   log,
	}
}

// Execute refreshes the profile from the server, falling back to the
// stored session copy when the server cannot be reached.
func (uc *GetProfileUseCase) Execute(ctx context.Context) (*session.User, error) {
	current, err := uc.sessions.Require()
	if err != nil {
		return nil, err
	}

	fetched, err := uc.api.GetProfile(ctx)
	if err != nil {
		uc.logger.Warnw("profile fetch failed, serving stored copy", "error", err)
		user := current.User
		return &user, nil
	}

	if err := uc.sessions.ReplaceUser(fetched); err != nil {
		return nil, err
	}
	return &fetched, nil
}
