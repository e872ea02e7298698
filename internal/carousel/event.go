package carousel

// Event is an input to the transition engine.
// The set of implementations is closed; see the types below.
type Event interface {
	isEvent()
}

// TouchStart begins a touch drag at (X, Y)
type TouchStart struct{ X, Y float64 }

// TouchMove reports a touch position during a drag
type TouchMove struct{ X, Y float64 }

// TouchEnd ends a touch drag
type TouchEnd struct{ X, Y float64 }

// MouseDown begins a mouse drag at (X, Y)
type MouseDown struct{ X, Y float64 }

// MouseMove reports a pointer position during a drag
type MouseMove struct{ X, Y float64 }

// MouseUp ends a mouse drag
type MouseUp struct{ X, Y float64 }

// MouseLeave ends a drag because the pointer left the widget
type MouseLeave struct{}

// PrevSlide moves one slide back
type PrevSlide struct{}

// NextSlide moves one slide forward
type NextSlide struct{}

// GoToSlide jumps to Index
type GoToSlide struct {
	Index int
}

func (TouchStart) isEvent() {}
func (TouchMove) isEvent() {}
func (TouchEnd) isEvent() {}
func (MouseDown) isEvent() {}
func (MouseMove) isEvent() {}
func (MouseUp) isEvent() {}
func (MouseLeave) isEvent() {}
func (PrevSlide) isEvent() {}
func (NextSlide) isEvent() {}
func (GoToSlide) isEvent() {}
