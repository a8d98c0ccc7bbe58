package api

import (
	"context"
	"fmt"
	"net/http"

	"deskline/internal/domain/session"
	"deskline/internal/domain/upload"
)

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (session.User, error) {
	var resp struct {
		Data struct {
			User userPayload `json:"user"`
		} `json:"data"`
	}
	err := c.doRequest(ctx, requestSpec{
		method:    http.MethodGet,
		path:      "/profile",
		readQuery: true,
	}, &resp)
	if err != nil {
		return session.User{}, fmt.Errorf("get profile: %w", err)
	}
	return resp.Data.User.toDomain(), nil
}

// UpdateProfile updates the editable profile fields and returns the
// server's view of the profile after the update.
func (c *Client) UpdateProfile(ctx context.Context, firstName, lastName, phone string) (session.User, error) {
	body := map[string]string{
		"first_name": firstName,
		"last_name":  lastName,
		"phone":      phone,
	}

	var resp struct {
		Data struct {
			User userPayload `json:"user"`
		} `json:"data"`
	}
	err := c.doRequest(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/profile-update",
		body:   body,
	}, &resp)
	if err != nil {
		return session.User{}, fmt.Errorf("update profile: %w", err)
	}
	return resp.Data.User.toDomain(), nil
}

// UpdateAvatar uploads a new profile photo. Depending on the deployment
// the response carries either the full user record or just the avatar
// URL; the second return value reports whether a full record was present.
func (c *Client) UpdateAvatar(ctx context.Context, photo upload.Attachment) (session.User, string, error) {
	var resp struct {
		Data struct {
			User   *userPayload `json:"user"`
			Avatar string       `json:"avatar"`
		} `json:"data"`
	}
	err := c.doMultipart(ctx, "/profile-photo", nil, []filePart{
		{field: "profile_photo", attachment: photo},
	}, &resp)
	if err != nil {
		return session.User{}, "", fmt.Errorf("update avatar: %w", err)
	}

	if resp.Data.User != nil {
		user := resp.Data.User.toDomain()
		return user, user.AvatarURL, nil
	}
	return session.User{}, resp.Data.Avatar, nil
}
