package usecase

import "stadium-admin/internal/domain"

type EventKind int

const (
	EventAdded EventKind = iota
	EventStatusChanged
)

type OrderEvent struct {
	Kind  EventKind
	Order domain.Order
}

const feedBuffer = 64

// OrderFeed is a live view over the order collection. Events arrive on
// Events() until Unsubscribe is called; teardown must call Unsubscribe or
// the service keeps delivering into the buffer forever.
type OrderFeed struct {
	svc    *OrderService
	filter OrderFilter
	ch     chan OrderEvent
	done   chan struct{}
}

func (f *OrderFeed) Events() <-chan OrderEvent { return f.ch }

func (f *OrderFeed) Unsubscribe() {
	f.svc.mu.Lock()
	defer f.svc.mu.Unlock()
	if _, ok := f.svc.subs[f]; !ok {
		return
	}
	delete(f.svc.subs, f)
	close(f.done)
	close(f.ch)
}

// Subscribe registers a live feed for orders matching f. Writers never block
// on a slow consumer: when the buffer is full the oldest event is dropped.
func (s *OrderService) Subscribe(f OrderFilter) *OrderFeed {
	feed := &OrderFeed{
		svc:    s,
		filter: f,
		ch:     make(chan OrderEvent, feedBuffer),
		done:   make(chan struct{}),
	}
	s.mu.Lock()
	s.subs[feed] = struct{}{}
	s.mu.Unlock()
	return feed
}

func (s *OrderService) publish(ev OrderEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for feed := range s.subs {
		if !feed.filter.matches(&ev.Order) {
			continue
		}
		select {
		case feed.ch <- ev:
		default:
			select {
			case <-feed.ch:
			default:
			}
			select {
			case feed.ch <- ev:
			default:
			}
		}
	}
}
