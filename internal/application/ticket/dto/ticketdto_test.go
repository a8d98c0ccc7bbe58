package dto

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"deskline/internal/domain/ticket"
)

func TestRowFromTicket(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	row := RowFromTicket(ticket.Ticket{
		ID:            42,
		TicketNumber:  "TKT-0042",
		TicketDetails: "printer keeps jamming",
		Status:        ticket.StatusInProgress,
		CreatedAt:     created,
		Documents: []ticket.Document{
			{DocumentID: 1, DocumentURL: "https://cdn.example.com/docs/jam.pdf"},
		},
	})

	assert.Equal(t, "TKT-0042", row.TicketNumber)
	assert.Equal(t, "In Progress", row.Status)
	assert.Equal(t, "14 Mar 2026", row.CreatedAt)
	assert.Equal(t, "Unassigned", row.AssignedTo)
	assert.Equal(t, 1, row.Documents)
}

func TestRowFromTicket_TruncatesLongDetails(t *testing.T) {
	row := RowFromTicket(ticket.Ticket{TicketDetails: strings.Repeat("a", 100)})
	assert.LessOrEqual(t, len([]rune(row.Details)), 60)
	assert.True(t, strings.HasSuffix(row.Details, "…"))
}

func TestDetailFromTicket(t *testing.T) {
	assigned := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	detail := DetailFromTicket(ticket.Ticket{
		ID:             42,
		TicketNumber:   "TKT-0042",
		TicketDetails:  "printer keeps jamming",
		Status:         ticket.StatusCompleted,
		AssignUserName: "Agent Lee",
		AssignDate:     &assigned,
		Documents: []ticket.Document{
			{DocumentID: 1, DocumentURL: "https://cdn.example.com/docs/jam.pdf"},
			{DocumentID: 2, DocumentURL: "https://cdn.example.com/docs/photo.png"},
		},
	})

	assert.Equal(t, "Completed", detail.Status)
	assert.False(t, detail.Open)
	assert.Equal(t, "15 Mar 2026", detail.AssignDate)
	assert.Equal(t, "Agent Lee", detail.AssignedTo)
	assert.Len(t, detail.Documents, 2)
	assert.Equal(t, "jam.pdf", detail.Documents[0].Name)
	assert.Equal(t, "pdf", detail.Documents[0].Type)
	assert.Equal(t, "image", detail.Documents[1].Type)
}

func TestDetailFromTicket_ZeroDates(t *testing.T) {
	detail := DetailFromTicket(ticket.Ticket{Status: ticket.StatusPending})
	assert.Equal(t, "-", detail.CreatedAt)
	assert.Empty(t, detail.AssignDate)
	assert.True(t, detail.Open)
}

func TestPageSummary(t *testing.T) {
	assert.Equal(t, "Showing 1-10 of 35 tickets", PageSummary(1, 10, 10, 35))
	assert.Equal(t, "Showing 31-35 of 35 tickets", PageSummary(4, 10, 5, 35))
	assert.Equal(t, "No tickets found", PageSummary(1, 10, 0, 0))
}
