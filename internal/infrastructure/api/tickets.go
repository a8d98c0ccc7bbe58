package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"deskline/internal/domain/ticket"
	"deskline/internal/domain/upload"
)

// TicketPage is one page of the ticket list.
type TicketPage struct {
	Tickets      []ticket.Ticket
	TotalRecords int64
}

// CreateTicketResult identifies a freshly created ticket.
type CreateTicketResult struct {
	TicketID     uint   `json:"ticket_id"`
	TicketNumber string `json:"ticket_number"`
}

// ListTickets fetches one page of the authenticated user's tickets.
// The endpoint is a POST but semantically a read, so it participates in
// the read-retry policy.
func (c *Client) ListTickets(ctx context.Context, page, limit int) (*TicketPage, error) {
	var resp struct {
		Data         []ticketPayload `json:"data"`
		TotalRecords int64           `json:"total_records"`
	}
	err := c.doRequest(ctx, requestSpec{
		method:    http.MethodPost,
		path:      "/ticket/list",
		body:      map[string]int{"page": page, "limit": limit},
		readQuery: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return &TicketPage{
		Tickets:      ticketsToDomain(resp.Data),
		TotalRecords: resp.TotalRecords,
	}, nil
}

// ShowTicket fetches a single ticket with its documents.
func (c *Client) ShowTicket(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var resp struct {
		Data ticketPayload `json:"data"`
	}
	err := c.doRequest(ctx, requestSpec{
		method:    http.MethodGet,
		path:      "/ticket/show/" + strconv.FormatUint(uint64(id), 10),
		readQuery: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("show ticket %d: %w", id, err)
	}
	t := resp.Data.toDomain()
	return &t, nil
}

// CreateTicket submits a new ticket with its documents as one multipart
// request. Size ceilings and field preconditions are enforced by the use
// case before this call.
func (c *Client) CreateTicket(ctx context.Context, providerID, serviceID uint, details string, documents []upload.Attachment) (*CreateTicketResult, error) {
	fields := map[string]string{
		"service_provider_id": strconv.FormatUint(uint64(providerID), 10),
		"service_id":          strconv.FormatUint(uint64(serviceID), 10),
		"ticket_details":      details,
	}

	var resp struct {
		Data CreateTicketResult `json:"data"`
	}
	err := c.doMultipart(ctx, "/tickets/create", fields, documentParts(documents), &resp)
	if err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}
	return &resp.Data, nil
}

// UpdateTicket submits changed fields plus any newly attached documents.
// Document removals are not part of this request; they are immediate
// DeleteDocument calls.
func (c *Client) UpdateTicket(ctx context.Context, id uint, providerID, serviceID uint, details string, newDocuments []upload.Attachment) error {
	fields := map[string]string{
		"ticket_id":           strconv.FormatUint(uint64(id), 10),
		"service_provider_id": strconv.FormatUint(uint64(providerID), 10),
		"service_id":          strconv.FormatUint(uint64(serviceID), 10),
		"ticket_details":      details,
	}

	if err := c.doMultipart(ctx, "/ticket/update", fields, documentParts(newDocuments), nil); err != nil {
		return fmt.Errorf("update ticket %d: %w", id, err)
	}
	return nil
}

// DeleteTicket deletes one ticket. The endpoint is a GET by the server's
// design; it is still a mutation and never retried.
func (c *Client) DeleteTicket(ctx context.Context, id uint) error {
	err := c.doRequest(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/ticket/delete/" + strconv.FormatUint(uint64(id), 10),
	}, nil)
	if err != nil {
		return fmt.Errorf("delete ticket %d: %w", id, err)
	}
	return nil
}

// DeleteDocument removes one attached document.
func (c *Client) DeleteDocument(ctx context.Context, documentID uint) error {
	err := c.doRequest(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/ticket/document/delete/" + strconv.FormatUint(uint64(documentID), 10),
	}, nil)
	if err != nil {
		return fmt.Errorf("delete document %d: %w", documentID, err)
	}
	return nil
}

// DashboardCounts fetches the aggregate figures for the dashboard.
func (c *Client) DashboardCounts(ctx context.Context) (*ticket.DashboardCounts, error) {
	var resp struct {
		Data ticket.DashboardCounts `json:"data"`
	}
	err := c.doRequest(ctx, requestSpec{
		method:    http.MethodGet,
		path:      "/dashboard/counts",
		readQuery: true,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &resp.Data, nil
}

func documentParts(documents []upload.Attachment) []filePart {
	parts := make([]filePart, 0, len(documents))
	for _, doc := range documents {
		parts = append(parts, filePart{field: "documents[]", attachment: doc})
	}
	return parts
}
