package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk-core/clock"
	"github.com/spec-kit/helpdesk-core/domain"
	"github.com/spec-kit/helpdesk-core/events"
	"github.com/spec-kit/helpdesk-core/notify"
	apperrors "github.com/spec-kit/helpdesk-core/pkg/util"
	"github.com/spec-kit/helpdesk-core/policy"
	"github.com/spec-kit/helpdesk-core/ratelimit"
	"github.com/spec-kit/helpdesk-core/store"
	"github.com/spec-kit/helpdesk-core/triage"
)

// TicketService coordinates ticket workflows. All validation runs before
// any store mutation, so a failed operation never leaves a ticket written
// without its audit record.
type TicketService struct {
	store      *store.Store
	limiter    *ratelimit.Limiter
	policy     policy.Policy
	triage     triage.Triage
	notifier   notify.Notifier
	clk        clock.Clock
	dispatcher events.Dispatcher
}

// Dependencies bundles collaborators for the ticket service.
type Dependencies struct {
	Store      *store.Store
	Limiter    *ratelimit.Limiter
	Policy     policy.Policy
	Triage     triage.Triage
	Notifier   notify.Notifier
	Clock      clock.Clock
	Dispatcher events.Dispatcher
}

// OpenInput describes ticket creation payload.
type OpenInput struct {
	Title       string
	Description string
	Tags        []string
}

// New constructs the service.
func New(deps Dependencies) *TicketService {
	return &TicketService{
		store:      deps.Store,
		limiter:    deps.Limiter,
		policy:     deps.Policy,
		triage:     deps.Triage,
		notifier:   deps.Notifier,
		clk:        deps.Clock,
		dispatcher: deps.Dispatcher,
	}
}

// OpenTicket creates a ticket for the requester. It consults the rate
// limiter first, resolves the requester, evaluates the open-ticket policy,
// classifies severity, and only then persists the ticket together with its
// ticket.open audit event.
func (s *TicketService) OpenTicket(ctx context.Context, requesterID string, input OpenInput) (domain.Ticket, error) {
	if err := s.limiter.Check(requesterID, s.clk.Now()); err != nil {
		return domain.Ticket{}, err
	}

	user, ok := s.store.GetUser(requesterID)
	if !ok {
		return domain.Ticket{}, apperrors.NewNotFound("user", map[string]any{"user_id": requesterID})
	}

	openCount := len(s.store.OpenTicketsForUser(requesterID))
	allowed, reason := s.policy.CanOpen(user, openCount)
	if !allowed {
		return domain.Ticket{}, apperrors.NewPolicyDenied(reason)
	}

	severity := s.triage.Classify(input.Title, input.Description)
	ticket := domain.Ticket{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Severity:    severity,
		Status:      domain.TicketStatusOpen,
		RequesterID: requesterID,
		Tags:        input.Tags,
		CreatedAt:   s.clk.Now(),
	}

	ticket, _ = s.store.InsertTicket(ticket, domain.AuditTicketOpen, requesterID, map[string]string{
		"severity": string(severity),
	})
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketOpened,
		TicketID: ticket.ID,
		ActorID:  requesterID,
		Payload: events.TicketOpenedPayload{
			Severity: ticket.Severity,
			Title:    ticket.Title,
		},
	})
	return ticket, nil
}

// AssignTicket selects the least-loaded candidate agent and sets it as the
// ticket's assignee, returning the assignment notice. Ties go to the first
// minimum in the supplied order. Assigning a closed ticket is accepted
// as-is.
func (s *TicketService) AssignTicket(ctx context.Context, ticketID string, agents []triage.Agent) (notify.AssignmentNotice, error) {
	if _, ok := s.store.GetTicket(ticketID); !ok {
		return notify.AssignmentNotice{}, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
	}

	agent, ok := s.triage.Assign(agents)
	if !ok {
		return notify.AssignmentNotice{}, apperrors.NewNotFound("agent", map[string]any{"candidates": len(agents)})
	}

	ticket, _, ok := s.store.UpdateTicket(ticketID, func(t *domain.Ticket) {
		t.AssigneeID = agent.ID
	}, domain.AuditTicketAssign, agent.ID, nil)
	if !ok {
		return notify.AssignmentNotice{}, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticket.ID,
		ActorID:  agent.ID,
		Payload: events.TicketAssignedPayload{
			AgentID:  agent.ID,
			Severity: ticket.Severity,
		},
	})
	return s.notifier.SendAssignmentNotice(ticket, agent.ID), nil
}

// CloseTicket sets the ticket status to closed unconditionally. Closed is
// terminal for the lifecycle, but a repeated close is accepted and appends
// its own ticket.close audit event.
func (s *TicketService) CloseTicket(ctx context.Context, ticketID, actorID string) (domain.Ticket, error) {
	ticket, _, ok := s.store.UpdateTicket(ticketID, func(t *domain.Ticket) {
		t.Status = domain.TicketStatusClosed
	}, domain.AuditTicketClose, actorID, nil)
	if !ok {
		return domain.Ticket{}, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketClosed,
		TicketID: ticket.ID,
		ActorID:  actorID,
		Payload: events.TicketClosedPayload{
			Severity: ticket.Severity,
		},
	})
	return ticket, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.clk.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
