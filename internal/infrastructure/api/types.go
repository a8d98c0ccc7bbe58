package api

import (
	"encoding/json"
	"strings"
	"time"

	"deskline/internal/domain/session"
	"deskline/internal/domain/ticket"
)

// userPayload is the wire shape of a user profile.
type userPayload struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	AvatarURL  string `json:"avatar_url"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Division   string `json:"division"`
}

func (p userPayload) toDomain() session.User {
	return session.User(p)
}

// flexTime tolerates the timestamp formats the API emits: RFC 3339,
// MySQL datetime, and bare dates. Null and empty decode to the zero time.
type flexTime struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *flexTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// null or a non-string value; leave the zero time
		return nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return nil
}

// documentPayload is the wire shape of an attached document.
type documentPayload struct {
	DocumentID  uint   `json:"document_id"`
	DocumentURL string `json:"document_url"`
}

// ticketPayload is the wire shape of a ticket.
type ticketPayload struct {
	ID                uint              `json:"id"`
	TicketNumber      string            `json:"ticket_number"`
	ServiceProviderID uint              `json:"service_provider_id"`
	ServiceID         uint              `json:"service_id"`
	TicketDetails     string            `json:"ticket_details"`
	Status            string            `json:"status"`
	AssignUserName    string            `json:"assign_user_name"`
	AssignDate        flexTime          `json:"assign_date"`
	CreatedAt         flexTime          `json:"created_at"`
	UpdatedAt         flexTime          `json:"updated_at"`
	Documents         []documentPayload `json:"documents"`
}

func (p ticketPayload) toDomain() ticket.Ticket {
	docs := make([]ticket.Document, 0, len(p.Documents))
	for _, d := range p.Documents {
		docs = append(docs, ticket.Document{
			DocumentID:  d.DocumentID,
			DocumentURL: d.DocumentURL,
		})
	}

	t := ticket.Ticket{
		ID:                p.ID,
		TicketNumber:      p.TicketNumber,
		ServiceProviderID: p.ServiceProviderID,
		ServiceID:         p.ServiceID,
		TicketDetails:     p.TicketDetails,
		Status:            ticket.Normalize(p.Status),
		AssignUserName:    p.AssignUserName,
		CreatedAt:         p.CreatedAt.Time,
		UpdatedAt:         p.UpdatedAt.Time,
		Documents:         docs,
	}
	if !p.AssignDate.IsZero() {
		assigned := p.AssignDate.Time
		t.AssignDate = &assigned
	}
	return t
}

func ticketsToDomain(payloads []ticketPayload) []ticket.Ticket {
	tickets := make([]ticket.Ticket, 0, len(payloads))
	for _, p := range payloads {
		tickets = append(tickets, p.toDomain())
	}
	return tickets
}
