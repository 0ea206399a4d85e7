// Package helpdesk assembles the ticketing core: in-memory store, rate
// limiter, policy gate, triage, authenticator, notification wiring and the
// ticket service. Callers construct a Module per logical instance; there
// is no hidden global state.
package helpdesk

import (
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-core/auth"
	"github.com/spec-kit/helpdesk-core/clock"
	"github.com/spec-kit/helpdesk-core/config"
	"github.com/spec-kit/helpdesk-core/events"
	"github.com/spec-kit/helpdesk-core/notify"
	"github.com/spec-kit/helpdesk-core/observability"
	"github.com/spec-kit/helpdesk-core/policy"
	"github.com/spec-kit/helpdesk-core/ratelimit"
	"github.com/spec-kit/helpdesk-core/report"
	"github.com/spec-kit/helpdesk-core/service"
	"github.com/spec-kit/helpdesk-core/store"
	"github.com/spec-kit/helpdesk-core/triage"
)

// Module bundles a fully wired core instance.
type Module struct {
	Store         *store.Store
	Tickets       *service.TicketService
	Authenticator *auth.Authenticator
	Reports       *report.Builder
	Dispatcher    events.Dispatcher
	Clock         clock.Clock
	Logger        *zap.Logger
}

// Options override default collaborators.
type Options struct {
	Clock  clock.Clock
	Logger *zap.Logger
}

// New assembles a module from configuration. A nil clock defaults to the
// system clock; a nil logger is built from the config's logger settings.
func New(cfg config.Config, opts Options) (*Module, error) {
	clk := opts.Clock
	if clk == nil {
		clk = clock.System()
	}
	logger := opts.Logger
	if logger == nil {
		var err error
		logger, err = observability.NewLogger(cfg.Logger)
		if err != nil {
			return nil, err
		}
	}

	st := store.New(clk)
	dispatcher := events.NewInMemoryDispatcher()
	notify.NewService(dispatcher, logger).RegisterHandlers()

	keyword := triage.NewKeyword(cfg.Tickets.SeverityWeights)
	notifier := notify.NewPayloadNotifier()

	tickets := service.New(service.Dependencies{
		Store:      st,
		Limiter:    ratelimit.NewLimiter(cfg.Tickets.RateLimitPerMinute),
		Policy:     policy.New(cfg.Tickets.MaxOpenTickets),
		Triage:     keyword,
		Notifier:   notifier,
		Clock:      clk,
		Dispatcher: dispatcher,
	})

	return &Module{
		Store:         st,
		Tickets:       tickets,
		Authenticator: auth.NewAuthenticator(cfg, st, clk),
		Reports:       report.NewBuilder(cfg.Tickets.SLAThresholdHours, keyword, notifier, dispatcher),
		Dispatcher:    dispatcher,
		Clock:         clk,
		Logger:        logger,
	}, nil
}
