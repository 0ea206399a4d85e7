package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-core/events"
)

// Service subscribes to domain events and logs them as notification
// activity. Delivery to real channels is an external concern; this keeps
// the event flow observable.
type Service struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewService creates the service.
func NewService(dispatcher events.Dispatcher, logger *zap.Logger) *Service {
	return &Service{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *Service) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketOpened, n.handleTicketOpened)
	n.dispatcher.Subscribe(events.EventTicketAssigned, n.handleTicketAssigned)
	n.dispatcher.Subscribe(events.EventTicketClosed, n.handleTicketClosed)
	n.dispatcher.Subscribe(events.EventSLAWarning, n.handleSLAWarning)
}

func (n *Service) handleTicketOpened(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketOpened", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	return nil
}

func (n *Service) handleTicketAssigned(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketAssigned", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	return nil
}

func (n *Service) handleTicketClosed(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketClosed", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	return nil
}

func (n *Service) handleSLAWarning(ctx context.Context, event events.Event) error {
	n.logger.Warn("SLAWarning", zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
	return nil
}
