package store

import (
	"fmt"
	"sync"

	"github.com/spec-kit/helpdesk-core/clock"
	"github.com/spec-kit/helpdesk-core/domain"
)

// Store holds all in-memory state: users, tickets, tokens and the
// append-only audit log. A single mutex guards every map, the per-prefix ID
// counters and the audit slice, so an ID generation + entity write + audit
// append sequence runs as one critical section.
type Store struct {
	mu       sync.RWMutex
	clk      clock.Clock
	users    map[string]domain.User
	tickets  map[string]domain.Ticket
	tokens   map[string]domain.TokenRecord
	audits   []domain.AuditEvent
	counters map[string]int
}

// New constructs an empty store reading timestamps from clk.
func New(clk clock.Clock) *Store {
	return &Store{
		clk:      clk,
		users:    make(map[string]domain.User),
		tickets:  make(map[string]domain.Ticket),
		tokens:   make(map[string]domain.TokenRecord),
		counters: make(map[string]int),
	}
}

// NextID returns the next prefix-scoped sequence ID, e.g. "ticket-0001".
// IDs are strictly increasing per prefix and never repeat, concurrent
// callers included.
func (s *Store) NextID(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextIDLocked(prefix)
}

func (s *Store) nextIDLocked(prefix string) string {
	s.counters[prefix]++
	return fmt.Sprintf("%s-%04d", prefix, s.counters[prefix])
}

// AddAudit appends an audit event with a fresh ID and the current
// timestamp, and returns it.
func (s *Store) AddAudit(action, actorID string, meta map[string]string) domain.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addAuditLocked(action, actorID, meta)
}

func (s *Store) addAuditLocked(action, actorID string, meta map[string]string) domain.AuditEvent {
	event := domain.AuditEvent{
		ID:        s.nextIDLocked("audit"),
		Action:    action,
		ActorID:   actorID,
		CreatedAt: s.clk.Now(),
		Meta:      meta,
	}
	s.audits = append(s.audits, event)
	return event
}

// PutUser stores or replaces a user. Users are seeded externally.
func (s *Store) PutUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// GetUser looks up a user; the second return reports presence.
func (s *Store) GetUser(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// PutToken stores an issued token record.
func (s *Store) PutToken(rec domain.TokenRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[rec.Token] = rec
}

// GetToken looks up a token record; the second return reports presence.
// Expiry is the caller's concern.
func (s *Store) GetToken(token string) (domain.TokenRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.tokens[token]
	return rec, ok
}

// GetTicket looks up a ticket; the second return reports presence.
func (s *Store) GetTicket(id string) (domain.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tickets[id]
	return t, ok
}

// OpenTicketsForUser returns every open ticket requested by the user, in
// arbitrary order.
func (s *Store) OpenTicketsForUser(userID string) []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var open []domain.Ticket
	for _, t := range s.tickets {
		if t.RequesterID == userID && t.Status == domain.TicketStatusOpen {
			open = append(open, t)
		}
	}
	return open
}

// InsertTicket assigns the ticket a fresh "ticket" sequence ID, stores it,
// and appends the audit event in the same critical section. The ticket ID
// is merged into the audit metadata under "ticket_id".
func (s *Store) InsertTicket(t domain.Ticket, action, actorID string, meta map[string]string) (domain.Ticket, domain.AuditEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextIDLocked("ticket")
	s.tickets[t.ID] = t
	event := s.addAuditLocked(action, actorID, withTicketID(meta, t.ID))
	return t, event
}

// UpdateTicket applies mutate to the stored ticket and appends the audit
// event atomically. Returns false without touching anything when the
// ticket is absent.
func (s *Store) UpdateTicket(id string, mutate func(*domain.Ticket), action, actorID string, meta map[string]string) (domain.Ticket, domain.AuditEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[id]
	if !ok {
		return domain.Ticket{}, domain.AuditEvent{}, false
	}
	mutate(&t)
	s.tickets[id] = t
	event := s.addAuditLocked(action, actorID, withTicketID(meta, id))
	return t, event, true
}

// AuditLog returns a copy of the audit trail in append order.
func (s *Store) AuditLog() []domain.AuditEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AuditEvent, len(s.audits))
	copy(out, s.audits)
	return out
}

func withTicketID(meta map[string]string, ticketID string) map[string]string {
	merged := make(map[string]string, len(meta)+1)
	for k, v := range meta {
		merged[k] = v
	}
	merged["ticket_id"] = ticketID
	return merged
}
