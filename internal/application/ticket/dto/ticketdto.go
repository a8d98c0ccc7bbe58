// Package dto shapes ticket domain records for display. The CLI and the
// interactive browser both render from these rows so the two surfaces
// never drift in formatting.
package dto

import (
	"fmt"
	"time"

	"deskline/internal/domain/ticket"
)

const displayDate = "02 Jan 2006"

// TicketRow is one line of the paginated ticket list.
type TicketRow struct {
	ID           uint
	TicketNumber string
	Details      string
	Status       string
	CreatedAt    string
	AssignedTo   string
	Documents    int
}

// TicketDetail is the full single-ticket view.
type TicketDetail struct {
	ID           uint
	TicketNumber string
	Details      string
	Status       string
	Open         bool
	CreatedAt    string
	AssignDate   string
	AssignedTo   string
	Documents    []DocumentRow
}

// DocumentRow is one attached document in the detail view.
type DocumentRow struct {
	ID   uint
	Name string
	Type string
	URL  string
}

// RowFromTicket flattens a ticket into a list row. Long details are
// truncated so the row stays on one terminal line.
func RowFromTicket(t ticket.Ticket) TicketRow {
	return TicketRow{
		ID:           t.ID,
		TicketNumber: t.TicketNumber,
		Details:      truncate(t.TicketDetails, 60),
		Status:       t.Status.Label(),
		CreatedAt:    formatDate(t.CreatedAt),
		AssignedTo:   assignee(t),
		Documents:    len(t.AttachedDocuments()),
	}
}

// RowsFromTickets maps a ticket page into display rows.
func RowsFromTickets(tickets []ticket.Ticket) []TicketRow {
	rows := make([]TicketRow, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, RowFromTicket(t))
	}
	return rows
}

// DetailFromTicket expands a ticket into the full detail view.
func DetailFromTicket(t ticket.Ticket) TicketDetail {
	documents := make([]DocumentRow, 0, len(t.AttachedDocuments()))
	for _, d := range t.AttachedDocuments() {
		documents = append(documents, DocumentRow{
			ID:   d.DocumentID,
			Name: d.FileName(),
			Type: string(d.Type()),
			URL:  d.DocumentURL,
		})
	}

	detail := TicketDetail{
		ID:           t.ID,
		TicketNumber: t.TicketNumber,
		Details:      t.TicketDetails,
		Status:       t.Status.Label(),
		Open:         t.Status.IsOpen(),
		CreatedAt:    formatDate(t.CreatedAt),
		AssignedTo:   assignee(t),
		Documents:    documents,
	}
	if t.AssignDate != nil {
		detail.AssignDate = formatDate(*t.AssignDate)
	}
	return detail
}

// PageSummary renders the "Showing x-y of z" line under the list.
func PageSummary(page, pageSize int, count int, totalRecords int64) string {
	if totalRecords == 0 {
		return "No tickets found"
	}
	first := (page-1)*pageSize + 1
	last := first + count - 1
	return fmt.Sprintf("Showing %d-%d of %d tickets", first, last, totalRecords)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(displayDate)
}

func assignee(t ticket.Ticket) string {
	if !t.IsAssigned() {
		return "Unassigned"
	}
	return t.AssignUserName
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
