package events

import (
	"time"

	"github.com/spec-kit/helpdesk-core/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketOpened   EventType = "ticket.open"
	EventTicketAssigned EventType = "ticket.assign"
	EventTicketClosed   EventType = "ticket.close"
	EventSLAWarning     EventType = "sla.warning"
)

// Event represents a domain event emitted by the service layer.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketOpenedPayload payload.
type TicketOpenedPayload struct {
	Severity domain.Severity `json:"severity"`
	Title    string          `json:"title"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	AgentID  string          `json:"agent_id"`
	Severity domain.Severity `json:"severity"`
}

// TicketClosedPayload payload.
type TicketClosedPayload struct {
	Severity domain.Severity `json:"severity"`
}

// SLAWarningPayload payload.
type SLAWarningPayload struct {
	HoursOpen float64         `json:"hours_open"`
	Severity  domain.Severity `json:"severity"`
}
