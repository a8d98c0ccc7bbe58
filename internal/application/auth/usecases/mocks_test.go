package usecases

import (
	"context"

	"deskline/internal/domain/session"
	"deskline/internal/domain/upload"
	"deskline/internal/infrastructure/api"
	"deskline/internal/shared/constants"
	apperrors "deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
)

type mockAuthAPI struct {
	LoginFunc          func(ctx context.Context, email, password string) (*api.LoginResult, error)
	ChangePasswordFunc func(ctx context.Context, oldPassword, newPassword, confirmation string) (string, error)
	ForgotPasswordFunc func(ctx context.Context, email string) (string, string, error)
	ResetPasswordFunc  func(ctx context.Context, resetToken, password, confirmation string) (string, error)
	GetProfileFunc     func(ctx context.Context) (session.User, error)
	UpdateProfileFunc  func(ctx context.Context, firstName, lastName, phone string) (session.User, error)
	UpdateAvatarFunc   func(ctx context.Context, photo upload.Attachment) (session.User, string, error)
}

func (m *mockAuthAPI) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	return m.LoginFunc(ctx, email, password)
}

func (m *mockAuthAPI) ChangePassword(ctx context.Context, oldPassword, newPassword, confirmation string) (string, error) {
	return m.ChangePasswordFunc(ctx, oldPassword, newPassword, confirmation)
}

func (m *mockAuthAPI) ForgotPassword(ctx context.Context, email string) (string, string, error) {
	return m.ForgotPasswordFunc(ctx, email)
}

func (m *mockAuthAPI) ResetPassword(ctx context.Context, resetToken, password, confirmation string) (string, error) {
	return m.ResetPasswordFunc(ctx, resetToken, password, confirmation)
}

func (m *mockAuthAPI) GetProfile(ctx context.Context) (session.User, error) {
	return m.GetProfileFunc(ctx)
}

func (m *mockAuthAPI) UpdateProfile(ctx context.Context, firstName, lastName, phone string) (session.User, error) {
	return m.UpdateProfileFunc(ctx, firstName, lastName, phone)
}

func (m *mockAuthAPI) UpdateAvatar(ctx context.Context, photo upload.Attachment) (session.User, string, error) {
	return m.UpdateAvatarFunc(ctx, photo)
}

// mockSessions keeps the session in memory; zero value means logged out.
type mockSessions struct {
	session        session.Session
	remembered     bool
	rememberedMail string
	rememberedPass string
	rememberCalls  int
	forgetCalls    int
}

func (m *mockSessions) Login(token string, user session.User) error {
	m.session = session.Session{Token: token, User: user}
	return nil
}

func (m *mockSessions) Logout() error {
	m.session = session.Session{}
	return nil
}

func (m *mockSessions) Current() session.Session {
	return m.session
}

func (m *mockSessions) Require() (session.Session, error) {
	if !m.session.Authenticated() {
		return session.Session{}, apperrors.NewUnauthorizedError(constants.ErrMsgUnauthorized)
	}
	return m.session, nil
}

func (m *mockSessions) UpdateUser(patch session.UserPatch) error {
	m.session.User = m.session.User.Merge(patch)
	return nil
}

func (m *mockSessions) ReplaceUser(user session.User) error {
	m.session.User = user
	return nil
}

func (m *mockSessions) RememberCredentials(email, password string, remember bool) error {
	if remember {
		m.rememberCalls++
		m.remembered = true
		m.rememberedMail = email
		m.rememberedPass = password
		return nil
	}
	m.forgetCalls++
	m.remembered = false
	m.rememberedMail = ""
	m.rememberedPass = ""
	return nil
}

func (m *mockSessions) RememberedCredentials() (string, string, bool) {
	return m.rememberedMail, m.rememberedPass, m.remembered
}

type mockLogger struct{}

func (mockLogger) Debugw(string, ...any)          {}
func (mockLogger) Infow(string, ...any)           {}
func (mockLogger) Warnw(string, ...any)           {}
func (mockLogger) Errorw(string, ...any)          {}
func (l mockLogger) With(...any) logger.Interface { return l }

var _ AuthAPI = (*mockAuthAPI)(nil)
var _ Sessions = (*mockSessions)(nil)
