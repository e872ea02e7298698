package state

// AppState contains the host's UI state. Carousel state lives on the event bus.
type AppState struct {
	Focus int // index of the carousel receiving input

	// UI state
	Width         int
	Height        int
	StatusMessage string // status bar message
	StatusIsError bool
	InPagerMode   bool // rendering is paused while the pager owns the terminal
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// SetStatus sets the status bar message
func (s *AppState) SetStatus(message string, isError bool) {
	s.StatusMessage = message
	s.StatusIsError = isError
}

// ClearStatus clears the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// CycleFocus moves focus forward or backward through count carousels, wrapping around
func (s *AppState) CycleFocus(count int, backwards bool) {
	if count <= 0 {
		s.Focus = 0
		return
	}
	step := 1
	if backwards {
		step = count - 1
	}
	s.Focus = (s.Focus + step) % count
}
