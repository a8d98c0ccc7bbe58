package ticket

// DashboardCounts are the aggregate figures shown on the dashboard.
type DashboardCounts struct {
	Total             int64 `json:"total_tickets"`
	Completed         int64 `json:"completed"`
	InProgress        int64 `json:"in_progress"`
	Pending           int64 `json:"pending"`
	UnderVerification int64 `json:"under_verification"`
}

// CountsOf derives approximate dashboard counts from a ticket snapshot.
// Used only as a presentation fallback when the counts endpoint is
// unreachable; the snapshot covers at most one page, so the figures are
// lower bounds.
func CountsOf(tickets []Ticket) DashboardCounts {
	var c DashboardCounts
	for _, t := range tickets {
		c.Total++
		switch Normalize(string(t.Status)) {
		case StatusCompleted, StatusMarkAsCompleted:
			c.Completed++
		case StatusInProgress:
			c.InProgress++
		case StatusUnderVerification:
			c.UnderVerification++
		default:
			c.Pending++
		}
	}
	return c
}
