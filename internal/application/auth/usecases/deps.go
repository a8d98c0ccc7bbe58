package usecases

import (
	"context"

	"deskline/internal/domain/session"
	"deskline/internal/domain/upload"
	"deskline/internal/infrastructure/api"
)

// AuthAPI is the slice of the remote API the auth and profile use cases
// touch.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.LoginResult, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword, confirmation string) (string, error)
	ForgotPassword(ctx context.Context, email string) (message, link string, err error)
	ResetPassword(ctx context.Context, resetToken, password, confirmation string) (string, error)
	GetProfile(ctx context.Context) (session.User, error)
	UpdateProfile(ctx context.Context, firstName, lastName, phone string) (session.User, error)
	UpdateAvatar(ctx context.Context, photo upload.Attachment) (session.User, string, error)
}

// Sessions is the session-manager surface the use cases depend on.
type Sessions interface {
	Login(token string, user session.User) error
	Logout() error
	Current() session.Session
	Require() (session.Session, error)
	UpdateUser(patch session.UserPatch) error
	ReplaceUser(user session.User) error
	RememberCredentials(email, password string, remember bool) error
	RememberedCredentials() (email, password string, ok bool)
}
