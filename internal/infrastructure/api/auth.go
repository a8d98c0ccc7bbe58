package api

import (
	"context"
	"fmt"
	"net/http"

	"deskline/internal/domain/session"
)

// LoginResult is the token and profile returned by a successful login.
type LoginResult struct {
	Token string
	User  session.User
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp struct {
		Data struct {
			Token string      `json:"token"`
			User  userPayload `json:"user"`
		} `json:"data"`
	}
	err := c.doRequest(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/login",
		body:   body,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &LoginResult{
		Token: resp.Data.Token,
		User:  resp.Data.User.toDomain(),
	}, nil
}

// ChangePassword changes the authenticated user's password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword, confirmation string) (string, error) {
	body := map[string]string{
		"old_password":              oldPassword,
		"new_password":              newPassword,
		"new_password_confirmation": confirmation,
	}

	var resp struct {
		Message string `json:"message"`
	}
	err := c.doRequest(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/password-change",
		body:   body,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("change password: %w", err)
	}
	return resp.Message, nil
}

// ForgotPassword requests a password-reset mail for the address. The
// optional link is returned by some deployments for development use.
func (c *Client) ForgotPassword(ctx context.Context, email string) (message, link string, err error) {
	var resp struct {
		Message string `json:"message"`
		Link    string `json:"link"`
	}
	err = c.doRequest(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/forgot-password",
		body:   map[string]string{"email": email},
	}, &resp)
	if err != nil {
		return "", "", fmt.Errorf("forgot password: %w", err)
	}
	return resp.Message, resp.Link, nil
}

// ResetPassword completes a password reset with the token from the mail.
func (c *Client) ResetPassword(ctx context.Context, resetToken, password, confirmation string) (string, error) {
	body := map[string]string{
		"reset_token":           resetToken,
		"password":              password,
		"password_confirmation": confirmation,
	}

	var resp struct {
		Message string `json:"message"`
	}
	err := c.doRequest(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/reset-password",
		body:   body,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("reset password: %w", err)
	}
	return resp.Message, nil
}
