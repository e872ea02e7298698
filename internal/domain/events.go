package domain

import "carousel/internal/carousel"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlideChanged EventType = "SlideChanged"
	EventDragStarted  EventType = "DragStarted"
	EventDragEnded    EventType = "DragEnded"
	EventEventIgnored EventType = "EventIgnored"
	EventConfigLoaded EventType = "ConfigLoaded"
	EventConfigSaved  EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SlideChangedEvent is emitted when a carousel's active slide changes
type SlideChangedEvent struct {
	CarouselID string
	From       int
	To         int
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// DragStartedEvent is emitted when a carousel enters the dragging phase
type DragStartedEvent struct {
	CarouselID string
	StartX     float64
}

func (e DragStartedEvent) Type() EventType { return EventDragStarted }

// DragEndedEvent is emitted when a drag is finalized
type DragEndedEvent struct {
	CarouselID string
	OffsetPx   float64 // offset at the moment the drag ended
	Committed  bool    // whether the drag changed the slide
}

func (e DragEndedEvent) Type() EventType { return EventDragEnded }

// EventIgnoredEvent is emitted when a token could not be routed
type EventIgnoredEvent struct {
	Token string
	Err   error
}

func (e EventIgnoredEvent) Type() EventType { return EventEventIgnored }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path      string
	Carousels int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// StateEvents derives the domain events produced by moving from before to after
func StateEvents(before, after carousel.State) []DomainEvent {
	var events []DomainEvent
	if !before.IsDragging && after.IsDragging {
		events = append(events, DragStartedEvent{CarouselID: after.ID, StartX: after.StartX})
	}
	if before.IsDragging && !after.IsDragging {
		events = append(events, DragEndedEvent{
			CarouselID: after.ID,
			OffsetPx:   before.DragOffsetPx,
			Committed:  before.ActiveIndex != after.ActiveIndex,
		})
	}
	if before.ActiveIndex != after.ActiveIndex {
		events = append(events, SlideChangedEvent{
			CarouselID: after.ID,
			From:       before.ActiveIndex,
			To:         after.ActiveIndex,
		})
	}
	return events
}
