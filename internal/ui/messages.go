package ui

// pagerMsg contains the result of an external pager run
type pagerMsg struct {
	err error
}

// pauseRenderingMsg stops rendering while the pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg restarts rendering after the pager exits
type resumeRenderingMsg struct{}

// clearStatusMsg clears the status bar
type clearStatusMsg struct{}
