package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"deskline/internal/domain/upload"
	"deskline/internal/shared/constants"
	apperrors "deskline/internal/shared/errors"
)

// filePart binds a staged attachment to its multipart field name.
type filePart struct {
	field      string
	attachment upload.Attachment
}

// doMultipart submits a multipart/form-data request. Multipart endpoints
// are all mutations, so there is no retry.
func (c *Client) doMultipart(ctx context.Context, path string, fields map[string]string, files []filePart, result any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("write field %s: %w", key, err)
		}
	}

	for _, part := range files {
		if err := writeFilePart(writer, part); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(constants.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	c.authorize(req, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewTransportError(constants.ErrMsgTransportFailure, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewTransportError(constants.ErrMsgTransportFailure, err.Error())
	}

	return c.decode(requestSpec{method: http.MethodPost, path: path}, resp.StatusCode, respBody, result)
}

func writeFilePart(writer *multipart.Writer, part filePart) error {
	file, err := os.Open(part.attachment.Path)
	if err != nil {
		return fmt.Errorf("open attachment %s: %w", part.attachment.Name, err)
	}
	defer file.Close()

	fw, err := writer.CreateFormFile(part.field, part.attachment.Name)
	if err != nil {
		return fmt.Errorf("create form file %s: %w", part.attachment.Name, err)
	}
	if _, err := io.Copy(fw, file); err != nil {
		return fmt.Errorf("copy attachment %s: %w", part.attachment.Name, err)
	}
	return nil
}
