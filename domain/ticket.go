package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets. Assignment is not
// a status of its own: an assigned ticket stays OPEN with a non-empty
// AssigneeID.
type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "open"
	TicketStatusClosed TicketStatus = "closed"
)

// Severity enumerates triage severity labels.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Ticket is the aggregate for support requests.
type Ticket struct {
	ID          string
	Title       string
	Description string
	Severity    Severity
	Status      TicketStatus
	RequesterID string
	AssigneeID  string
	Tags        []string
	CreatedAt   time.Time
}
