package domain

import "time"

// Audit action tags recorded by the store.
const (
	AuditTicketOpen   = "ticket.open"
	AuditTicketAssign = "ticket.assign"
	AuditTicketClose  = "ticket.close"
)

// AuditEvent is an immutable audit trail entry. Every mutating operation
// appends exactly one; events are never updated or deleted.
type AuditEvent struct {
	ID        string
	Action    string
	ActorID   string
	CreatedAt time.Time
	Meta      map[string]string
}
