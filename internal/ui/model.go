package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/carousel"
	"carousel/internal/domain"
	"carousel/internal/eventbus"
	"carousel/internal/ui/state"
	"carousel/internal/ui/viewmodels"
	"carousel/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model is the Bubble Tea host for a set of carousels.
// Every input is encoded into a protocol token and routed through the bus,
// the same path a DOM host would take.
type Model struct {
	bus       eventbus.EventBus
	carousels []domain.Carousel
	state     *state.AppState // host UI state

	help help.Model
	keys keyMap

	// Handlers
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	helpRenderer *HelpRenderer
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. Each carousel must already be registered on the bus.
func NewModel(bus eventbus.EventBus, carousels []domain.Carousel) *Model {
	appState := state.NewAppState()

	m := &Model{
		bus:          bus,
		carousels:    carousels,
		state:        appState,
		help:         help.New(),
		keys:         newKeyMap(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		pager:        NewPagerOps(nil),
	}

	m.viewModel = viewmodels.NewViewModel(appState, bus, carousels)
	m.viewModel.SetHelp(m.help, m.keys)

	bus.Subscribe(eventbus.EventSlideChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.SlideChangedEvent); ok {
			m.state.SetStatus(fmt.Sprintf("%s: slide %d", event.CarouselID, event.To+1), false)
		}
	})
	bus.Subscribe(eventbus.EventEventIgnored, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.EventIgnoredEvent); ok {
			log.Printf("Ignored token %q: %v", event.Token, event.Err)
		}
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if event, ok := mouseEvent(msg); ok {
			m.send(event)
		}
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			m.state.SetStatus("Could not open pager", true)
			return m, m.clearStatusLater()
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.ClearStatus()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current, ok := m.focusedState()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Focus):
		m.cycleFocus(msg.String() == "shift+tab")
		return m, nil

	case key.Matches(msg, m.keys.Help):
		return m, m.showInPager(m.helpRenderer.RenderHelpContent())

	case !ok:
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.dispatch(carousel.BuildView(current).PrevToken, nil)

	case key.Matches(msg, m.keys.Next):
		m.dispatch(carousel.BuildView(current).NextToken, nil)

	case key.Matches(msg, m.keys.GoTo):
		index, _ := digitIndex(msg)
		tokens := carousel.IndicatorTokens(current)
		if index < len(tokens) {
			m.dispatch(tokens[index], nil)
		} else {
			m.state.SetStatus(fmt.Sprintf("%s has only %d slides", current.ID, current.SlideCount), true)
			return m, m.clearStatusLater()
		}

	case key.Matches(msg, m.keys.Open):
		c := m.carousels[m.state.Focus]
		return m, m.showInPager(m.helpRenderer.RenderSlide(c, current.ActiveIndex))
	}

	return m, nil
}

// cycleFocus moves focus to the next or previous carousel.
// A drag in progress on the old carousel ends as if the pointer left it.
func (m *Model) cycleFocus(backwards bool) {
	if len(m.carousels) == 0 {
		return
	}
	if current, ok := m.focusedState(); ok && current.IsDragging {
		m.send(carousel.MouseLeave{})
	}
	m.state.CycleFocus(len(m.carousels), backwards)
}

// send encodes event for the focused carousel and dispatches it
func (m *Model) send(event carousel.Event) {
	if len(m.carousels) == 0 {
		return
	}
	id := m.carousels[m.state.Focus].ID
	m.dispatch(carousel.Encode(id, event), carousel.Payload(event))
}

func (m *Model) dispatch(token string, payload []byte) {
	if _, err := m.bus.Dispatch(token, payload); err != nil {
		var unknown *carousel.UnknownEventError
		if errors.As(err, &unknown) || errors.Is(err, eventbus.ErrCarouselNotFound) {
			return
		}
		log.Printf("Dispatch %q failed: %v", token, err)
	}
}

func (m *Model) focusedState() (carousel.State, bool) {
	if len(m.carousels) == 0 {
		return carousel.State{}, false
	}
	return m.bus.State(m.carousels[m.state.Focus].ID)
}

// FocusedID returns the id of the carousel receiving input
func (m *Model) FocusedID() string {
	if len(m.carousels) == 0 {
		return ""
	}
	return m.carousels[m.state.Focus].ID
}

func (m *Model) clearStatusLater() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// showInPager returns a command that shows content in the ov pager
func (m *Model) showInPager(content string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.ShowInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{err: err}
	}
}

// View renders the carousels
func (m *Model) View() string {
	if m.state.InPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewModel.BuildViewState())
}
