package carousel

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter separates the fields of a protocol token. Carousel ids may not contain it.
const Delimiter = "|"

// Config holds the construction parameters of a carousel
type Config struct {
	SlidesPerView       float64 `toml:"slides_per_view"`
	InitialSlide        int     `toml:"initial_slide"`
	Navigation          bool    `toml:"navigation"`
	DragThresholdPx     int     `toml:"drag_threshold_px"`
	AnimationDurationMs int     `toml:"animation_duration_ms"`
}

// DefaultConfig returns a full-width, navigable carousel starting at the first slide
func DefaultConfig() Config {
	return Config{
		SlidesPerView:       1.0,
		InitialSlide:        0,
		Navigation:          true,
		DragThresholdPx:     50,
		AnimationDurationMs: 300,
	}
}

// State is the runtime state of one carousel instance.
// It is treated as a value: Apply returns a new State instead of mutating its argument.
type State struct {
	ID           string
	ActiveIndex  int
	SlideCount   int
	IsDragging   bool
	StartX       float64
	DragOffsetPx float64
	Config       Config
}

// Construction errors
var (
	ErrNoSlides             = errors.New("carousel must have at least one slide")
	ErrInvalidSlidesPerView = errors.New("slides per view must be greater than zero")
)

// InvalidCarouselIDError is returned when an id contains the token delimiter
type InvalidCarouselIDError struct {
	ID string
}

func (e *InvalidCarouselIDError) Error() string {
	return fmt.Sprintf("invalid carousel id %q: must not contain %q", e.ID, Delimiter)
}

// InitialSlideOutOfBoundsError is returned when the initial slide does not exist
type InitialSlideOutOfBoundsError struct {
	InitialSlide int
	SlideCount   int
}

func (e *InitialSlideOutOfBoundsError) Error() string {
	return fmt.Sprintf("initial slide %d is out of bounds for %d slides", e.InitialSlide, e.SlideCount)
}

// New validates the configuration and returns the initial state.
// Checks run in a fixed order and the first failure is returned.
func New(id string, cfg Config, slideCount int) (State, error) {
	if strings.Contains(id, Delimiter) {
		return State{}, &InvalidCarouselIDError{ID: id}
	}
	if slideCount <= 0 {
		return State{}, ErrNoSlides
	}
	// Negated so that NaN is rejected too
	if !(cfg.SlidesPerView > 0) {
		return State{}, ErrInvalidSlidesPerView
	}
	if cfg.InitialSlide < 0 || cfg.InitialSlide >= slideCount {
		return State{}, &InitialSlideOutOfBoundsError{
			InitialSlide: cfg.InitialSlide,
			SlideCount:   slideCount,
		}
	}

	return State{
		ID:          id,
		ActiveIndex: cfg.InitialSlide,
		SlideCount:  slideCount,
		Config:      cfg,
	}, nil
}

// LastIndex returns the index of the final slide
func (s State) LastIndex() int {
	return s.SlideCount - 1
}
