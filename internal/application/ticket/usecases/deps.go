package usecases

import (
	"context"

	"deskline/internal/domain/ticket"
	"deskline/internal/domain/upload"
	"deskline/internal/infrastructure/api"
	"deskline/internal/infrastructure/cache"
)

// TicketAPI is the slice of the remote API the ticket use cases touch.
type TicketAPI interface {
	ListTickets(ctx context.Context, page, limit int) (*api.TicketPage, error)
	ShowTicket(ctx context.Context, id uint) (*ticket.Ticket, error)
	CreateTicket(ctx context.Context, providerID, serviceID uint, details string, documents []upload.Attachment) (*api.CreateTicketResult, error)
	UpdateTicket(ctx context.Context, id uint, providerID, serviceID uint, details string, newDocuments []upload.Attachment) error
	DeleteTicket(ctx context.Context, id uint) error
	DeleteDocument(ctx context.Context, documentID uint) error
	DashboardCounts(ctx context.Context) (*ticket.DashboardCounts, error)
}

// MirrorStore persists the last-known-good ticket snapshot.
type MirrorStore interface {
	SaveMirror(tickets []ticket.Ticket, totalRecords int64) error
	LoadMirror() ([]ticket.Ticket, int64, bool, error)
}

// PageCache is the page-keyed ticket list cache.
type PageCache interface {
	Select(page int) cache.FetchToken
	Selected() int
	Commit(token cache.FetchToken, result cache.PageResult) bool
	Page(page int) (cache.PageResult, bool)
	Invalidate()
}
