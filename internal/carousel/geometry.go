package carousel

import (
	"strconv"
)

// Button classes used by the renderer
const (
	PrevButtonClass     = "carousel-button carousel-prev"
	NextButtonClass     = "carousel-button carousel-next"
	DisabledButtonClass = "carousel-button-disabled"
)

// SlideWidthPercent returns the width of one slide as a percentage of the viewport
func SlideWidthPercent(slidesPerView float64) float64 {
	return 100 / slidesPerView
}

// Transform returns the CSS transform that positions the slide track.
// While dragging the pointer offset is added on top of the slide offset.
func Transform(activeIndex int, slidesPerView float64, isDragging bool, dragOffsetPx float64) string {
	base := -(float64(activeIndex) * SlideWidthPercent(slidesPerView))
	if isDragging {
		return "translate3d(calc(" + formatNumber(base) + "% + " + formatNumber(dragOffsetPx) + "px), 0, 0)"
	}
	return "translate3d(" + formatNumber(base) + "%, 0, 0)"
}

// TransitionStyle returns the CSS transition for the slide track.
// A drag tracks the pointer directly, so it is never animated.
func TransitionStyle(isDragging bool, animationDurationMs int) string {
	if isDragging {
		return "none"
	}
	return "transform " + strconv.Itoa(animationDurationMs) + "ms ease-out"
}

// NavButtonClass returns the class list for a navigation button
func NavButtonClass(baseClass string, isDisabled bool) string {
	if isDisabled {
		return baseClass + " " + DisabledButtonClass
	}
	return baseClass
}

// PrevDisabled reports whether the previous button should be disabled
func PrevDisabled(s State) bool {
	return s.ActiveIndex == 0
}

// NextDisabled reports whether the next button should be disabled
func NextDisabled(s State) bool {
	return s.ActiveIndex >= s.SlideCount-1
}

// formatNumber renders v in its shortest round-trip decimal form without an exponent.
// Negative zero keeps its sign.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
