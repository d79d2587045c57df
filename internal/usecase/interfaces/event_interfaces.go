package interfaces

import "context"

// IEventPublisher announces domain events (mission.confirmed, payment.failed, ...)
// to whoever listens. Nothing in the flow depends on a listener existing.
type IEventPublisher interface {
	Publish(ctx context.Context, routingKey string, body any) error
}

// IProcessedEventStore remembers processor events that were fully handled so
// exact redeliveries can be acknowledged without touching the ledger again.
type IProcessedEventStore interface {
	Seen(ctx context.Context, eventKey string) (bool, error)
	MarkProcessed(ctx context.Context, eventKey string) error
}
