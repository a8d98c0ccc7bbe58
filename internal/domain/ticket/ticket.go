package ticket

import "time"

// Ticket is the client-side view of a support ticket as returned by the
// remote API. The server owns all lifecycle transitions; this type only
// carries the data and the derived presentation facts the views need.
type Ticket struct {
	ID                uint       `json:"id"`
	TicketNumber      string     `json:"ticket_number"`
	ServiceProviderID uint       `json:"service_provider_id"`
	ServiceID         uint       `json:"service_id"`
	TicketDetails     string     `json:"ticket_details"`
	Status            Status     `json:"status"`
	AssignUserName    string     `json:"assign_user_name"`
	AssignDate        *time.Time `json:"assign_date"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	Documents         []Document `json:"documents"`
}

// AttachedDocuments returns the documents, never nil. Rendered views
// treat a ticket without documents as an empty sequence.
func (t *Ticket) AttachedDocuments() []Document {
	if t.Documents == nil {
		return []Document{}
	}
	return t.Documents
}

// IsAssigned reports whether the server has assigned the ticket to an agent.
func (t *Ticket) IsAssigned() bool {
	return t.AssignUserName != ""
}
