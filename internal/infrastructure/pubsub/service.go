package pubsub

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/coinfold-network/coinfold-daemon/internal/core/domain"
	"github.com/coinfold-network/coinfold-daemon/internal/core/ports"
)

// subscriberBufferSize bounds how many undelivered events a subscriber may
// lag behind before events are dropped for it.
const subscriberBufferSize = 16

// Service is an in-process event bus broadcasting node push events to every
// subscriber. Each consumer filters its own subscription by correlation uid,
// which replaces a single shared event value racing multiple consumers.
type Service struct {
	mtx    sync.Mutex
	nextID int
	subs   map[int]chan domain.NodeEvent
	closed bool
}

// NewService returns a new idle event bus.
func NewService() *Service {
	return &Service{subs: make(map[int]chan domain.NodeEvent)}
}

// Run pumps events from the node notification channel into the bus until the
// context is canceled or the source channel is closed.
func (s *Service) Run(ctx context.Context, notification ports.NodeNotification) {
	defer s.close()
	events := notification.GetNodeEvents()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			s.Publish(event)
		}
	}
}

// Subscribe implements ports.EventBus.
func (s *Service) Subscribe() (<-chan domain.NodeEvent, func()) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan domain.NodeEvent, subscriberBufferSize)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mtx.Lock()
			defer s.mtx.Unlock()
			if _, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// Publish implements ports.EventBus. Slow subscribers with a full buffer
// miss the event instead of blocking the pump.
func (s *Service) Publish(event domain.NodeEvent) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for id, ch := range s.subs {
		select {
		case ch <- event:
		default:
			log.Warnf("pubsub: subscriber %d lagging, dropped event %s", id, event.Event)
		}
	}
}

func (s *Service) close() {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}
