package views

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel/internal/carousel"
	"carousel/internal/domain"
)

func TestSlideCells(t *testing.T) {
	assert.Equal(t, 76, slideCells(76, 100))
	assert.Equal(t, 38, slideCells(76, 50))
	assert.Equal(t, minCardWidth, slideCells(10, 10))
}

func TestTrackShift(t *testing.T) {
	tests := []struct {
		name       string
		index      int
		dragOffset float64
		want       int
	}{
		{"first slide", 0, 0, 0},
		{"second slide", 1, 0, 40},
		{"dragging left reveals the next slide", 1, -10, 50},
		{"dragging right reveals the previous slide", 1, 10, 30},
		{"clamped at the start", 0, 25, 0},
		{"clamped at the end", 2, -30, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trackShift(tt.index, 40, tt.dragOffset, 120, 40))
		})
	}
}

func TestRenderShowsActiveSlideAndControls(t *testing.T) {
	s, err := carousel.New("games", carousel.DefaultConfig(), 3)
	require.NoError(t, err)
	s = carousel.Apply(s, carousel.NextSlide{})

	out := NewRenderer().Render(ViewState{
		Width: 60,
		Carousels: []CarouselView{{
			Carousel: domain.Carousel{
				ID:    "games",
				Title: "Board games",
				Slides: []domain.Slide{
					{Title: "Chess"}, {Title: "Go"}, {Title: "Shogi"},
				},
			},
			View:    carousel.BuildView(s),
			Focused: true,
		}},
		StatusMessage: "games: slide 2 of 3",
	})

	assert.Contains(t, out, "Board games")
	assert.Contains(t, out, "Go")
	assert.NotContains(t, out, "Chess", "only the active slide fits a full-width viewport")
	assert.Contains(t, out, "‹ prev")
	assert.Contains(t, out, "next ›")
	assert.Contains(t, out, "translate3d(-100%, 0, 0)")
	assert.Contains(t, out, "transform 300ms ease-out")
	assert.Contains(t, out, "games: slide 2 of 3")
	assert.LessOrEqual(t, lipgloss.Width(out), 60)
}

func TestRenderWithoutNavigation(t *testing.T) {
	cfg := carousel.DefaultConfig()
	cfg.Navigation = false
	s, err := carousel.New("photos", cfg, 2)
	require.NoError(t, err)

	out := NewRenderer().Render(ViewState{
		Carousels: []CarouselView{{
			Carousel: domain.Carousel{ID: "photos", Slides: []domain.Slide{{Title: "A"}, {Title: "B"}}},
			View:     carousel.BuildView(s),
		}},
	})

	assert.Contains(t, out, "photos", "id is used when there is no title")
	assert.NotContains(t, out, "‹ prev")
	assert.Contains(t, out, "●")
}
