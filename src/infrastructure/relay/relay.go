package relay

import "context"

// Relay forwards a rendered notification text to an external channel.
type Relay interface {
	Relay(ctx context.Context, text string) error
}

// NoopRelay is used when no outbound channel is configured.
type NoopRelay struct{}

func (NoopRelay) Relay(context.Context, string) error {
	return nil
}
