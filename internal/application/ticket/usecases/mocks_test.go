package usecases

import (
	"context"

	"deskline/internal/domain/ticket"
	"deskline/internal/domain/upload"
	"deskline/internal/infrastructure/api"
	"deskline/internal/infrastructure/cache"
	"deskline/internal/shared/logger"
)

type mockTicketAPI struct {
	ListTicketsFunc     func(ctx context.Context, page, limit int) (*api.TicketPage, error)
	ShowTicketFunc      func(ctx context.Context, id uint) (*ticket.Ticket, error)
	CreateTicketFunc    func(ctx context.Context, providerID, serviceID uint, details string, documents []upload.Attachment) (*api.CreateTicketResult, error)
	UpdateTicketFunc    func(ctx context.Context, id uint, providerID, serviceID uint, details string, newDocuments []upload.Attachment) error
	DeleteTicketFunc    func(ctx context.Context, id uint) error
	DeleteDocumentFunc  func(ctx context.Context, documentID uint) error
	DashboardCountsFunc func(ctx context.Context) (*ticket.DashboardCounts, error)
}

func (m *mockTicketAPI) ListTickets(ctx context.Context, page, limit int) (*api.TicketPage, error) {
	return m.ListTicketsFunc(ctx, page, limit)
}

func (m *mockTicketAPI) ShowTicket(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return m.ShowTicketFunc(ctx, id)
}

func (m *mockTicketAPI) CreateTicket(ctx context.Context, providerID, serviceID uint, details string, documents []upload.Attachment) (*api.CreateTicketResult, error) {
	return m.CreateTicketFunc(ctx, providerID, serviceID, details, documents)
}

func (m *mockTicketAPI) UpdateTicket(ctx context.Context, id uint, providerID, serviceID uint, details string, newDocuments []upload.Attachment) error {
	return m.UpdateTicketFunc(ctx, id, providerID, serviceID, details, newDocuments)
}

func (m *mockTicketAPI) DeleteTicket(ctx context.Context, id uint) error {
	return m.DeleteTicketFunc(ctx, id)
}

func (m *mockTicketAPI) DeleteDocument(ctx context.Context, documentID uint) error {
	return m.DeleteDocumentFunc(ctx, documentID)
}

func (m *mockTicketAPI) DashboardCounts(ctx context.Context) (*ticket.DashboardCounts, error) {
	return m.DashboardCountsFunc(ctx)
}

type mockMirror struct {
	tickets      []ticket.Ticket
	totalRecords int64
	hasSnapshot  bool
	saveErr      error
	loadErr      error
	saveCalls    int
}

func (m *mockMirror) SaveMirror(tickets []ticket.Ticket, totalRecords int64) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saveCalls++
	m.tickets = tickets
	m.totalRecords = totalRecords
	m.hasSnapshot = true
	return nil
}

func (m *mockMirror) LoadMirror() ([]ticket.Ticket, int64, bool, error) {
	if m.loadErr != nil {
		return nil, 0, false, m.loadErr
	}
	return m.tickets, m.totalRecords, m.hasSnapshot, nil
}

type mockLogger struct{}

func (mockLogger) Debugw(string, ...any)          {}
func (mockLogger) Infow(string, ...any)           {}
func (mockLogger) Warnw(string, ...any)           {}
func (mockLogger) Errorw(string, ...any)          {}
func (l mockLogger) With(...any) logger.Interface { return l }

func tickets(ids ...uint) []ticket.Ticket {
	list := make([]ticket.Ticket, 0, len(ids))
	for _, id := range ids {
		list = append(list, ticket.Ticket{ID: id, Status: ticket.StatusPending})
	}
	return list
}

var _ TicketAPI = (*mockTicketAPI)(nil)
var _ MirrorStore = (*mockMirror)(nil)
var _ PageCache = (*cache.TicketCache)(nil)
