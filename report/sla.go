package report

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk-core/domain"
	"github.com/spec-kit/helpdesk-core/events"
	"github.com/spec-kit/helpdesk-core/notify"
)

// Entry is one SLA report line for an open ticket past the threshold.
type Entry struct {
	TicketID  string          `json:"ticket_id"`
	HoursOpen float64         `json:"hours_open"`
	Severity  domain.Severity `json:"severity"`
}

// Scorer computes the priority score used to order report entries.
type Scorer interface {
	PriorityScore(severity domain.Severity, ageHours float64) float64
}

// Builder produces SLA reports and warnings. Only open tickets are
// considered; a ticket that was late but has since closed is skipped.
type Builder struct {
	thresholdHours float64
	scorer         Scorer
	notifier       notify.Notifier
	dispatcher     events.Dispatcher
}

// NewBuilder constructs a report builder. The dispatcher may be nil when
// warning events are not wanted.
func NewBuilder(thresholdHours float64, scorer Scorer, notifier notify.Notifier, dispatcher events.Dispatcher) *Builder {
	return &Builder{
		thresholdHours: thresholdHours,
		scorer:         scorer,
		notifier:       notifier,
		dispatcher:     dispatcher,
	}
}

// BuildSLAReport returns an entry for every open ticket whose age meets
// the threshold, ordered by priority score, highest first.
func (b *Builder) BuildSLAReport(tickets []domain.Ticket, now time.Time) []Entry {
	entries := []Entry{}
	for _, ticket := range tickets {
		age, late := b.lateness(ticket, now)
		if !late {
			continue
		}
		entries = append(entries, Entry{
			TicketID:  ticket.ID,
			HoursOpen: notify.Round2(age),
			Severity:  ticket.Severity,
		})
	}
	if b.scorer != nil {
		sort.SliceStable(entries, func(i, j int) bool {
			return b.scorer.PriorityScore(entries[i].Severity, entries[i].HoursOpen) >
				b.scorer.PriorityScore(entries[j].Severity, entries[j].HoursOpen)
		})
	}
	return entries
}

// BuildSLANotices emits an SLA warning for every open ticket past the
// threshold, publishing an sla.warning event per notice when a dispatcher
// is configured.
func (b *Builder) BuildSLANotices(ctx context.Context, tickets []domain.Ticket, now time.Time) []notify.SLAWarning {
	notices := []notify.SLAWarning{}
	for _, ticket := range tickets {
		age, late := b.lateness(ticket, now)
		if !late {
			continue
		}
		warning := b.notifier.SendSLAWarning(ticket, age)
		notices = append(notices, warning)
		if b.dispatcher != nil {
			_ = b.dispatcher.Publish(ctx, events.Event{
				ID:        uuid.NewString(),
				Type:      events.EventSLAWarning,
				TicketID:  ticket.ID,
				Timestamp: now,
				Payload: events.SLAWarningPayload{
					HoursOpen: warning.HoursOpen,
					Severity:  warning.Severity,
				},
			})
		}
	}
	return notices
}

func (b *Builder) lateness(ticket domain.Ticket, now time.Time) (float64, bool) {
	if ticket.Status != domain.TicketStatusOpen {
		return 0, false
	}
	age := now.Sub(ticket.CreatedAt).Hours()
	return age, age >= b.thresholdHours
}
