package ports

import "github.com/coinfold-network/coinfold-daemon/internal/core/domain"

// EventBus broadcasts node push events to any number of subscribers. Each
// consumer holds its own subscription and filters by correlation uid, so
// concurrent operations never race over a shared ambient value.
type EventBus interface {
	// Subscribe registers a new subscriber. The returned cancel function
	// releases the subscription; it is safe to call more than once.
	Subscribe() (<-chan domain.NodeEvent, func())
	// Publish delivers an event to every current subscriber without
	// blocking on slow consumers.
	Publish(event domain.NodeEvent)
}
