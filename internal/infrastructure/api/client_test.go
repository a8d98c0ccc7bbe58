package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskline/internal/shared/constants"
	apperrors "deskline/internal/shared/errors"
)

func staticToken(token string) TokenSource {
	return func() string { return token }
}

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		// login is on the no-auth allowlist
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"token":"tok-123","user":{"id":4,"first_name":"Asha","last_name":"Patel","email":"asha@example.com"}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken(""))
	result, err := client.Login(context.Background(), "asha@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", result.Token)
	assert.Equal(t, uint(4), result.User.ID)
	assert.Equal(t, "Asha Patel", result.User.FullName())
}

func TestAuthenticatedRequestsCarryBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":{"user":{"id":1}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok-123"))
	_, err := client.GetProfile(context.Background())
	require.NoError(t, err)
}

func TestErrorMessageFallbackChain(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name:        "message field wins",
			body:        `{"message":"ticket not yours","error":"forbidden"}`,
			wantMessage: "ticket not yours",
		},
		{
			name:        "error field when message absent",
			body:        `{"error":"forbidden"}`,
			wantMessage: "forbidden",
		},
		{
			name:        "fixed default when body is opaque",
			body:        `<html>boom</html>`,
			wantMessage: constants.ErrMsgServerFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, staticToken("tok"))
			err := client.DeleteTicket(context.Background(), 9)
			require.Error(t, err)

			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeServer, appErr.Type)
			assert.Equal(t, tt.wantMessage, appErr.Message)
		})
	}
}

func TestUnauthorizedResponseMapsToUnauthorizedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("stale"))
	_, err := client.GetProfile(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestBodyStatusFieldSignalsFailureOn2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":500,"message":"storage offline"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok"))
	_, err := client.ShowTicket(context.Background(), 3)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeServer, appErr.Type)
	assert.Equal(t, "storage offline", appErr.Message)
}

// flakyHandler drops the first connection, then answers normally.
func flakyHandler(t *testing.T, calls *atomic.Int32, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			hj, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hj.Hijack()
			require.NoError(t, err)
			conn.Close()
			return
		}
		_, _ = w.Write([]byte(body))
	}
}

func TestReadQueriesRetryOnceOnTransportFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(flakyHandler(t, &calls, `{"data":[],"total_records":0}`))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok"))
	page, err := client.ListTickets(context.Background(), 1, constants.TicketPageSize)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.TotalRecords)
	assert.Equal(t, int32(2), calls.Load())
}

func TestMutationsAreNeverRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(flakyHandler(t, &calls, `{"status":200}`))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok"))
	err := client.DeleteTicket(context.Background(), 12)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeTransport))
	assert.Equal(t, int32(1), calls.Load())
}

func TestListTicketsDecodesDocumentsAndDates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"data": [{
				"id": 7,
				"ticket_number": "TKT-0007",
				"service_provider_id": 1,
				"service_id": 2,
				"ticket_details": "printer not working",
				"status": "in progress",
				"assign_user_name": "Lee",
				"assign_date": "2026-08-30 09:15:00",
				"created_at": "2026-08-29T10:00:00Z",
				"documents": [{"document_id": 5, "document_url": "https://files.example.com/invoice.pdf"}]
			}],
			"total_records": 31
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("tok"))
	page, err := client.ListTickets(context.Background(), 1, constants.TicketPageSize)
	require.NoError(t, err)
	require.Len(t, page.Tickets, 1)
	assert.Equal(t, int64(31), page.TotalRecords)

	got := page.Tickets[0]
	assert.Equal(t, "TKT-0007", got.TicketNumber)
	assert.Equal(t, "In Progress", got.Status.String())
	require.NotNil(t, got.AssignDate)
	assert.Equal(t, 2026, got.AssignDate.Year())
	require.Len(t, got.AttachedDocuments(), 1)
	assert.Equal(t, "invoice.pdf", got.AttachedDocuments()[0].FileName())
}

func TestCreateTicketSubmitsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, "1", r.FormValue("service_provider_id"))
		assert.Equal(t, "2", r.FormValue("service_id"))
		assert.Equal(t, "printer not working", r.FormValue("ticket_details"))

		files := r.MultipartForm.File["documents[]"]
		require.Len(t, files, 1)
		assert.Equal(t, "invoice.pdf", files[0].Filename)

		_, _ = w.Write([]byte(`{"status":200,"data":{"ticket_id":42,"ticket_number":"TKT-0042"}}`))
	}))
	defer server.Close()

	doc := writeTempFile(t, "invoice.pdf", 2048)

	client := NewClient(server.URL, staticToken("tok"))
	result, err := client.CreateTicket(context.Background(), 1, 2, "printer not working", doc)
	require.NoError(t, err)
	assert.Equal(t, uint(42), result.TicketID)
	assert.Equal(t, "TKT-0042", result.TicketNumber)
}
