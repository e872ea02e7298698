package carousel

// View holds everything a renderer needs to draw a carousel
type View struct {
	ID                string
	ActiveIndex       int
	SlideCount        int
	SlideWidthPercent float64
	Transform         string
	Transition        string
	ShowNavigation    bool
	PrevDisabled      bool
	NextDisabled      bool
	PrevClass         string
	NextClass         string
	PrevToken         string
	NextToken         string
}

// BuildView derives the render parameters for s
func BuildView(s State) View {
	prevDisabled := PrevDisabled(s)
	nextDisabled := NextDisabled(s)

	return View{
		ID:                s.ID,
		ActiveIndex:       s.ActiveIndex,
		SlideCount:        s.SlideCount,
		SlideWidthPercent: SlideWidthPercent(s.Config.SlidesPerView),
		Transform:         Transform(s.ActiveIndex, s.Config.SlidesPerView, s.IsDragging, s.DragOffsetPx),
		Transition:        TransitionStyle(s.IsDragging, s.Config.AnimationDurationMs),
		ShowNavigation:    s.Config.Navigation,
		PrevDisabled:      prevDisabled,
		NextDisabled:      nextDisabled,
		PrevClass:         NavButtonClass(PrevButtonClass, prevDisabled),
		NextClass:         NavButtonClass(NextButtonClass, nextDisabled),
		PrevToken:         Encode(s.ID, PrevSlide{}),
		NextToken:         Encode(s.ID, NextSlide{}),
	}
}

// IndicatorTokens returns the GoToSlide token for each slide, in order
func IndicatorTokens(s State) []string {
	tokens := make([]string, s.SlideCount)
	for i := range tokens {
		tokens[i] = Encode(s.ID, GoToSlide{Index: i})
	}
	return tokens
}
