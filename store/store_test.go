package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/spec-kit/helpdesk-core/clock"
	"github.com/spec-kit/helpdesk-core/domain"
)

func newTestStore() (*Store, *clock.Manual) {
	clk := clock.NewManual(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	return New(clk), clk
}

func TestNextIDStrictlyIncreasingPerPrefix(t *testing.T) {
	s, _ := newTestStore()

	if got := s.NextID("ticket"); got != "ticket-0001" {
		t.Fatalf("expected ticket-0001, got %s", got)
	}
	if got := s.NextID("ticket"); got != "ticket-0002" {
		t.Fatalf("expected ticket-0002, got %s", got)
	}
	if got := s.NextID("audit"); got != "audit-0001" {
		t.Fatalf("expected audit counter independent of ticket prefix, got %s", got)
	}
}

func TestNextIDUniqueUnderConcurrency(t *testing.T) {
	s, _ := newTestStore()

	const workers = 8
	const perWorker = 200
	ids := make(chan string, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				ids <- s.NextID("ticket")
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, workers*perWorker)
	for id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d ids, got %d", workers*perWorker, len(seen))
	}
}

func TestAddAuditAppends(t *testing.T) {
	s, clk := newTestStore()

	event := s.AddAudit("ticket.open", "user-1", map[string]string{"ticket_id": "ticket-0001"})
	if event.ID != "audit-0001" {
		t.Fatalf("expected audit-0001, got %s", event.ID)
	}
	if !event.CreatedAt.Equal(clk.Now()) {
		t.Fatalf("expected audit timestamp from clock")
	}
	log := s.AuditLog()
	if len(log) != 1 {
		t.Fatalf("expected audit log length 1, got %d", len(log))
	}
	if log[0].Action != "ticket.open" || log[0].ActorID != "user-1" {
		t.Fatalf("unexpected audit entry %+v", log[0])
	}
}

func TestOpenTicketsForUserFiltersStatusAndOwner(t *testing.T) {
	s, clk := newTestStore()

	for i, status := range []domain.TicketStatus{domain.TicketStatusOpen, domain.TicketStatusClosed, domain.TicketStatusOpen} {
		s.InsertTicket(domain.Ticket{
			Title:       fmt.Sprintf("ticket %d", i),
			Status:      status,
			RequesterID: "user-1",
			CreatedAt:   clk.Now(),
		}, "ticket.open", "user-1", nil)
	}
	s.InsertTicket(domain.Ticket{
		Title:       "other user",
		Status:      domain.TicketStatusOpen,
		RequesterID: "user-2",
		CreatedAt:   clk.Now(),
	}, "ticket.open", "user-2", nil)

	open := s.OpenTicketsForUser("user-1")
	if len(open) != 2 {
		t.Fatalf("expected 2 open tickets for user-1, got %d", len(open))
	}
	for _, ticket := range open {
		if ticket.RequesterID != "user-1" || ticket.Status != domain.TicketStatusOpen {
			t.Fatalf("unexpected ticket in result %+v", ticket)
		}
	}
}

func TestInsertTicketAssignsIDAndAuditsAtomically(t *testing.T) {
	s, _ := newTestStore()

	ticket, event := s.InsertTicket(domain.Ticket{
		Title:       "printer on fire",
		Status:      domain.TicketStatusOpen,
		RequesterID: "user-1",
	}, "ticket.open", "user-1", map[string]string{"severity": "high"})

	if ticket.ID != "ticket-0001" {
		t.Fatalf("expected ticket-0001, got %s", ticket.ID)
	}
	if event.Meta["ticket_id"] != ticket.ID {
		t.Fatalf("expected audit meta ticket_id %s, got %s", ticket.ID, event.Meta["ticket_id"])
	}
	if event.Meta["severity"] != "high" {
		t.Fatalf("expected caller meta preserved, got %v", event.Meta)
	}
	if len(s.AuditLog()) != 1 {
		t.Fatalf("expected exactly one audit event")
	}
	if _, ok := s.GetTicket(ticket.ID); !ok {
		t.Fatalf("expected ticket retrievable after insert")
	}
}

func TestUpdateTicketMissingLeavesNoTrace(t *testing.T) {
	s, _ := newTestStore()

	_, _, ok := s.UpdateTicket("ticket-9999", func(t *domain.Ticket) {
		t.Status = domain.TicketStatusClosed
	}, "ticket.close", "user-1", nil)
	if ok {
		t.Fatalf("expected update of missing ticket to report absence")
	}
	if len(s.AuditLog()) != 0 {
		t.Fatalf("expected no audit record for failed update")
	}
}

func TestLookupsReportAbsence(t *testing.T) {
	s, _ := newTestStore()

	if _, ok := s.GetUser("user-1"); ok {
		t.Fatalf("expected missing user")
	}
	if _, ok := s.GetToken("tok"); ok {
		t.Fatalf("expected missing token")
	}
	if _, ok := s.GetTicket("ticket-0001"); ok {
		t.Fatalf("expected missing ticket")
	}

	s.PutUser(domain.User{ID: "user-1", Email: "u@example.com", Role: domain.RoleViewer, Active: true})
	if u, ok := s.GetUser("user-1"); !ok || u.Email != "u@example.com" {
		t.Fatalf("expected stored user, got %+v ok=%v", u, ok)
	}
}
