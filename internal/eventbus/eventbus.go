package eventbus

import (
	"errors"
	"fmt"
	"log"
	"runtime/debug"
	"sort"
	"sync"

	"carousel/internal/carousel"
	"carousel/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSlideChanged = domain.EventSlideChanged
	EventDragStarted  = domain.EventDragStarted
	EventDragEnded    = domain.EventDragEnded
	EventEventIgnored = domain.EventEventIgnored
	EventConfigLoaded = domain.EventConfigLoaded
	EventConfigSaved  = domain.EventConfigSaved
)

// Routing errors
var (
	ErrCarouselNotFound  = errors.New("carousel not found")
	ErrDuplicateCarousel = errors.New("carousel already registered")
)

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus routes protocol tokens to registered carousels and publishes
// the resulting domain events to subscribers
type EventBus interface {
	Register(state carousel.State) error
	Unregister(id string)
	State(id string) (carousel.State, bool)
	IDs() []string
	Dispatch(token string, payload []byte) (carousel.State, error)
	Send(id string, event carousel.Event) (carousel.State, error)
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	carousels map[string]carousel.State
	handlers  map[EventType][]subscription
	nextSubID int
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		carousels: make(map[string]carousel.State),
		handlers:  make(map[EventType][]subscription),
	}
}

// Register adds a carousel under its id
func (b *bus) Register(state carousel.State) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.carousels[state.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCarousel, state.ID)
	}
	b.carousels[state.ID] = state
	return nil
}

// Unregister removes a carousel; tokens addressed to it are ignored afterwards
func (b *bus) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.carousels, id)
}

// State returns the current state of the carousel with the given id
func (b *bus) State(id string) (carousel.State, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.carousels[id]
	return s, ok
}

// IDs returns the registered carousel ids in sorted order
func (b *bus) IDs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ids := make([]string, 0, len(b.carousels))
	for id := range b.carousels {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Dispatch decodes a token, applies it to the addressed carousel and returns the new state.
// Undecodable tokens and unknown ids are reported as errors and published as EventIgnored.
func (b *bus) Dispatch(token string, payload []byte) (carousel.State, error) {
	id, event, err := carousel.Decode(token, payload)
	if err != nil {
		b.Publish(domain.EventIgnoredEvent{Token: token, Err: err})
		return carousel.State{}, err
	}

	s, err := b.Send(id, event)
	if err != nil {
		b.Publish(domain.EventIgnoredEvent{Token: token, Err: err})
	}
	return s, err
}

// Send applies an already decoded event to the carousel with the given id
func (b *bus) Send(id string, event carousel.Event) (carousel.State, error) {
	b.mu.Lock()
	before, ok := b.carousels[id]
	if !ok {
		b.mu.Unlock()
		return carousel.State{}, fmt.Errorf("%w: %q", ErrCarouselNotFound, id)
	}
	after := carousel.Apply(before, event)
	b.carousels[id] = after
	b.mu.Unlock()

	for _, e := range domain.StateEvents(before, after) {
		b.Publish(e)
	}
	return after, nil
}

// Publish delivers an event to all subscribers of its type
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventDragStarted, EventDragEnded:
		// Too frequent to log
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.call(sub.handler, event)
	}
}

// call runs a handler and recovers from panics so one subscriber cannot break routing
func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSubID++
	id := b.nextSubID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, sub := range subs {
			if sub.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}
