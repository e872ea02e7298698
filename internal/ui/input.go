package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/carousel"
)

// mouseEvent translates a terminal mouse message into a carousel event.
// Cell coordinates stand in for pixels.
func mouseEvent(msg tea.MouseMsg) (carousel.Event, bool) {
	x, y := float64(msg.X), float64(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return carousel.MouseDown{X: x, Y: y}, true
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			return carousel.PrevSlide{}, true
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			return carousel.NextSlide{}, true
		}
	case tea.MouseActionMotion:
		return carousel.MouseMove{X: x, Y: y}, true
	case tea.MouseActionRelease:
		return carousel.MouseUp{X: x, Y: y}, true
	}
	return nil, false
}

// digitIndex returns the zero-based slide index for keys "1" through "9"
func digitIndex(msg tea.KeyMsg) (int, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
