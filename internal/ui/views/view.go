package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"carousel/internal/carousel"
	"carousel/internal/domain"
)

const (
	defaultWidth = 80
	cardHeight   = 4
	minCardWidth = 6
)

// CarouselView is one carousel prepared for rendering
type CarouselView struct {
	Carousel     domain.Carousel
	View         carousel.View
	DragOffsetPx float64
	Focused      bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Carousels     []CarouselView
	StatusMessage string
	StatusIsError bool
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = defaultWidth
	}
	// Main has two columns of padding on each side
	inner := width - 4
	if inner < minCardWidth {
		inner = minCardWidth
	}

	sections := make([]string, 0, len(state.Carousels)+2)
	for _, cv := range state.Carousels {
		sections = append(sections, r.renderCarousel(cv, inner))
	}

	if state.StatusMessage != "" {
		status := r.styles.Status
		if state.StatusIsError {
			status = status.Inherit(r.styles.StatusError)
		}
		sections = append(sections, status.Render(state.StatusMessage))
	}
	if state.HelpView != "" {
		sections = append(sections, r.styles.Help.Render(state.HelpView))
	}

	return r.styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (r *Renderer) renderCarousel(cv CarouselView, width int) string {
	title := r.styles.Title
	marker := "  "
	if cv.Focused {
		title = r.styles.TitleFocused
		marker = "▸ "
	}
	name := cv.Carousel.Title
	if name == "" {
		name = cv.Carousel.ID
	}

	rows := []string{
		title.Render(marker + name),
		r.renderTrack(cv, width),
		r.renderControls(cv.View),
		r.styles.Dim.Render(cv.View.Transform + "  " + cv.View.Transition),
		"",
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderTrack draws every slide side by side and cuts out the visible window
func (r *Renderer) renderTrack(cv CarouselView, width int) string {
	cardWidth := slideCells(width, cv.View.SlideWidthPercent)

	cards := make([]string, len(cv.Carousel.Slides))
	for i, slide := range cv.Carousel.Slides {
		style := r.styles.Card
		if i == cv.View.ActiveIndex {
			style = r.styles.CardActive
		}
		content := r.styles.CardTitle.Render(slide.Title)
		if slide.Body != "" {
			content += "\n" + r.styles.CardBody.Render(slide.Body)
		}
		cards[i] = style.Width(cardWidth - 2).Height(cardHeight).Render(content)
	}
	track := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	shift := trackShift(cv.View.ActiveIndex, cardWidth, cv.DragOffsetPx, lipgloss.Width(track), width)
	lines := strings.Split(track, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, shift, shift+width)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderControls(v carousel.View) string {
	dots := make([]string, v.SlideCount)
	for i := range dots {
		if i == v.ActiveIndex {
			dots[i] = r.styles.DotActive.Render("●")
		} else {
			dots[i] = r.styles.Dot.Render("○")
		}
	}
	indicator := strings.Join(dots, " ")

	if !v.ShowNavigation {
		return indicator
	}
	prev := r.styles.ButtonStyle(v.PrevDisabled).Render("‹ prev")
	next := r.styles.ButtonStyle(v.NextDisabled).Render("next ›")
	return lipgloss.JoinHorizontal(lipgloss.Center, prev, " ", indicator, " ", next)
}

// slideCells converts a slide width percentage into terminal columns
func slideCells(width int, percent float64) int {
	cells := int(float64(width) * percent / 100)
	if cells < minCardWidth {
		return minCardWidth
	}
	return cells
}

// trackShift returns how many columns of the track lie left of the viewport.
// The drag offset moves the track with the pointer; the result stays within the track.
func trackShift(activeIndex, cardWidth int, dragOffset float64, trackWidth, width int) int {
	shift := activeIndex*cardWidth - int(math.Round(dragOffset))
	maxShift := trackWidth - width
	if shift > maxShift {
		shift = maxShift
	}
	if shift < 0 {
		shift = 0
	}
	return shift
}
