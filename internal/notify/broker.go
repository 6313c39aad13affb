// Package notify carries "this node changed" signals from the process that
// mutated a node to every subscriber of that node. Signals carry no payload;
// subscribers re-read the node. Consecutive signals may be coalesced.
package notify

import "context"

// Broker publishes and subscribes to change signals keyed by topic.
type Broker interface {
	// Publish signals every current subscriber of topic.
	Publish(ctx context.Context, topic string) error
	// Subscribe returns a channel receiving one value per (coalesced)
	// change and a cancel func that releases the subscription and closes
	// the channel.
	Subscribe(ctx context.Context, topic string) (<-chan struct{}, func(), error)
	// Close releases broker resources.
	Close() error
}

// signal performs a non-blocking send. A pending unread signal already
// covers the new change.
func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
