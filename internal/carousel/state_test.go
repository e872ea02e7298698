package carousel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReturnsInitialState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialSlide = 2

	s, err := New("games", cfg, 3)
	require.NoError(t, err)

	assert.Equal(t, "games", s.ID)
	assert.Equal(t, 2, s.ActiveIndex)
	assert.Equal(t, 3, s.SlideCount)
	assert.False(t, s.IsDragging)
	assert.Zero(t, s.StartX)
	assert.Zero(t, s.DragOffsetPx)
	assert.Equal(t, cfg, s.Config)
}

func TestNewValidation(t *testing.T) {
	valid := DefaultConfig()
	zeroWidth := DefaultConfig()
	zeroWidth.SlidesPerView = 0
	nanWidth := DefaultConfig()
	nanWidth.SlidesPerView = math.NaN()
	pastEnd := DefaultConfig()
	pastEnd.InitialSlide = 3
	negative := DefaultConfig()
	negative.InitialSlide = -1

	t.Run("id with delimiter", func(t *testing.T) {
		_, err := New("a|b", valid, 3)
		var idErr *InvalidCarouselIDError
		require.ErrorAs(t, err, &idErr)
		assert.Equal(t, "a|b", idErr.ID)
	})

	t.Run("no slides", func(t *testing.T) {
		_, err := New("games", valid, 0)
		require.ErrorIs(t, err, ErrNoSlides)
	})

	t.Run("negative slide count", func(t *testing.T) {
		_, err := New("games", valid, -2)
		require.ErrorIs(t, err, ErrNoSlides)
	})

	t.Run("zero slides per view", func(t *testing.T) {
		_, err := New("games", zeroWidth, 3)
		require.ErrorIs(t, err, ErrInvalidSlidesPerView)
	})

	t.Run("NaN slides per view", func(t *testing.T) {
		_, err := New("games", nanWidth, 3)
		require.ErrorIs(t, err, ErrInvalidSlidesPerView)
	})

	t.Run("initial slide past the end", func(t *testing.T) {
		_, err := New("games", pastEnd, 3)
		var boundsErr *InitialSlideOutOfBoundsError
		require.ErrorAs(t, err, &boundsErr)
		assert.Equal(t, 3, boundsErr.InitialSlide)
		assert.Equal(t, 3, boundsErr.SlideCount)
	})

	t.Run("negative initial slide", func(t *testing.T) {
		_, err := New("games", negative, 3)
		var boundsErr *InitialSlideOutOfBoundsError
		require.ErrorAs(t, err, &boundsErr)
	})
}

func TestNewValidationOrder(t *testing.T) {
	bad := DefaultConfig()
	bad.SlidesPerView = -1
	bad.InitialSlide = 10

	_, err := New("x|y", bad, 0)
	var idErr *InvalidCarouselIDError
	assert.ErrorAs(t, err, &idErr, "id is checked first")

	_, err = New("games", bad, 0)
	assert.ErrorIs(t, err, ErrNoSlides, "slide count is checked before slides per view")

	_, err = New("games", bad, 3)
	assert.ErrorIs(t, err, ErrInvalidSlidesPerView, "slides per view is checked before initial slide")
}

func TestInitErrorMessages(t *testing.T) {
	assert.Equal(t, `invalid carousel id "a|b": must not contain "|"`, (&InvalidCarouselIDError{ID: "a|b"}).Error())
	assert.Equal(t, "initial slide 5 is out of bounds for 3 slides",
		(&InitialSlideOutOfBoundsError{InitialSlide: 5, SlideCount: 3}).Error())
}
