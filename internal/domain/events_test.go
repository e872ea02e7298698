package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel/internal/carousel"
)

func TestStateEvents(t *testing.T) {
	idle, err := carousel.New("games", carousel.DefaultConfig(), 3)
	require.NoError(t, err)

	dragging := carousel.Apply(idle, carousel.TouchStart{X: 300})
	assert.Equal(t, []DomainEvent{DragStartedEvent{CarouselID: "games", StartX: 300}}, StateEvents(idle, dragging))

	moved := carousel.Apply(dragging, carousel.TouchMove{X: 280})
	assert.Empty(t, StateEvents(dragging, moved))

	ended := carousel.Apply(moved, carousel.TouchEnd{X: 280})
	assert.Equal(t, []DomainEvent{DragEndedEvent{CarouselID: "games", OffsetPx: -20}}, StateEvents(moved, ended))

	next := carousel.Apply(ended, carousel.NextSlide{})
	assert.Equal(t, []DomainEvent{SlideChangedEvent{CarouselID: "games", From: 0, To: 1}}, StateEvents(ended, next))

	assert.Empty(t, StateEvents(next, carousel.Apply(next, carousel.GoToSlide{Index: 9})))
}
