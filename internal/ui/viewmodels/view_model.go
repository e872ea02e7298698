package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"carousel/internal/carousel"
	"carousel/internal/domain"
	"carousel/internal/eventbus"
	"carousel/internal/ui/state"
	"carousel/internal/ui/views"
)

// StateSource provides the current state of a carousel by id
type StateSource interface {
	State(id string) (carousel.State, bool)
}

// Compile-time check that the bus can back a view model
var _ StateSource = (eventbus.EventBus)(nil)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	source    StateSource
	carousels []domain.Carousel
	help      help.Model
	keys      help.KeyMap
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, source StateSource, carousels []domain.Carousel) *ViewModel {
	return &ViewModel{
		state:     appState,
		source:    source,
		carousels: carousels,
		help:      help.New(),
	}
}

// SetHelp sets the help model and the bindings it renders
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         vm.state.Width,
		Height:        vm.state.Height,
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
	}
	if vm.keys != nil {
		vm.help.Width = vm.state.Width
		vs.HelpView = vm.help.View(vm.keys)
	}

	for i, c := range vm.carousels {
		s, ok := vm.source.State(c.ID)
		if !ok {
			continue
		}
		vs.Carousels = append(vs.Carousels, views.CarouselView{
			Carousel:     c,
			View:         carousel.BuildView(s),
			DragOffsetPx: s.DragOffsetPx,
			Focused:      i == vm.state.Focus,
		})
	}
	return vs
}
