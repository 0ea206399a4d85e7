package notify

import (
	"math"

	"github.com/spec-kit/helpdesk-core/domain"
)

// AssignmentNotice is the payload produced when a ticket is assigned.
type AssignmentNotice struct {
	Kind     string          `json:"kind"`
	TicketID string          `json:"ticket_id"`
	AgentID  string          `json:"agent_id"`
	Severity domain.Severity `json:"severity"`
}

// SLAWarning is the payload produced for a ticket breaching its SLA.
type SLAWarning struct {
	Kind      string          `json:"kind"`
	TicketID  string          `json:"ticket_id"`
	HoursOpen float64         `json:"hours_open"`
	Severity  domain.Severity `json:"severity"`
}

// Notifier formats notification payloads. It is a capability consumed by
// the service and reporting layers; delivery is out of scope.
type Notifier interface {
	SendAssignmentNotice(ticket domain.Ticket, agentID string) AssignmentNotice
	SendSLAWarning(ticket domain.Ticket, hoursOpen float64) SLAWarning
}

// PayloadNotifier is the stock Notifier; it only builds payloads.
type PayloadNotifier struct{}

// NewPayloadNotifier constructs the stock notifier.
func NewPayloadNotifier() PayloadNotifier {
	return PayloadNotifier{}
}

// SendAssignmentNotice builds the assignment payload for the ticket.
func (PayloadNotifier) SendAssignmentNotice(ticket domain.Ticket, agentID string) AssignmentNotice {
	return AssignmentNotice{
		Kind:     "assignment",
		TicketID: ticket.ID,
		AgentID:  agentID,
		Severity: ticket.Severity,
	}
}

// SendSLAWarning builds the SLA-warning payload, hours rounded to two
// decimals.
func (PayloadNotifier) SendSLAWarning(ticket domain.Ticket, hoursOpen float64) SLAWarning {
	return SLAWarning{
		Kind:      "sla_warning",
		TicketID:  ticket.ID,
		HoursOpen: Round2(hoursOpen),
		Severity:  ticket.Severity,
	}
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
