package carousel

// Apply returns the state that results from feeding e to s.
// It never fails: events that do not apply in the current phase are ignored.
func Apply(s State, e Event) State {
	switch e := e.(type) {
	case TouchStart:
		return s.startDrag(e.X)
	case MouseDown:
		return s.startDrag(e.X)
	case TouchMove:
		return s.moveDrag(e.X)
	case MouseMove:
		return s.moveDrag(e.X)
	case TouchEnd, MouseUp, MouseLeave:
		return s.endDrag()
	case PrevSlide:
		if s.ActiveIndex > 0 {
			s.ActiveIndex--
		}
	case NextSlide:
		if s.ActiveIndex < s.LastIndex() {
			s.ActiveIndex++
		}
	case GoToSlide:
		if e.Index >= 0 && e.Index < s.SlideCount {
			s.ActiveIndex = e.Index
		}
	}
	return s
}

// ApplyAll folds events over s in order
func ApplyAll(s State, events ...Event) State {
	for _, e := range events {
		s = Apply(s, e)
	}
	return s
}

// startDrag anchors a new drag, replacing any drag already in progress
func (s State) startDrag(x float64) State {
	s.IsDragging = true
	s.StartX = x
	s.DragOffsetPx = 0
	return s
}

func (s State) moveDrag(x float64) State {
	if !s.IsDragging {
		return s
	}
	s.DragOffsetPx = x - s.StartX
	return s
}

func (s State) endDrag() State {
	if !s.IsDragging {
		return s
	}
	s = s.finalizeDrag()
	s.IsDragging = false
	s.DragOffsetPx = 0
	return s
}

// finalizeDrag commits a slide change when the drag went strictly past the threshold.
// Dragging left (negative offset) advances, dragging right retreats.
func (s State) finalizeDrag() State {
	threshold := float64(s.Config.DragThresholdPx)
	switch {
	case s.DragOffsetPx < -threshold && s.ActiveIndex < s.LastIndex():
		s.ActiveIndex++
	case s.DragOffsetPx > threshold && s.ActiveIndex > 0:
		s.ActiveIndex--
	}
	return s
}
