package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"carousel/internal/domain"
)

// HelpRenderer renders the long-form help and slide details shown in the pager
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

func (r *HelpRenderer) line(b *strings.Builder, keys, desc string) {
	b.WriteString(fmt.Sprintf("  %-12s %s\n", r.key.Render(keys), r.desc.Render(desc)))
}

// RenderHelpContent generates the help page
func (r *HelpRenderer) RenderHelpContent() string {
	var help strings.Builder

	help.WriteString(r.title.Render("Carousel Help"))
	help.WriteString("\n")

	help.WriteString(r.section.Render("Slides"))
	help.WriteString("\n")
	r.line(&help, "←/h", "Previous slide")
	r.line(&help, "→/l", "Next slide")
	r.line(&help, "1-9", "Go to slide")
	r.line(&help, "wheel", "Scroll through slides")
	r.line(&help, "drag", "Drag the track left or right past the threshold to change slide")
	help.WriteString("\n")

	help.WriteString(r.section.Render("Carousels"))
	help.WriteString("\n")
	r.line(&help, "tab", "Switch carousel (ends any drag in progress)")
	r.line(&help, "enter", "Open the active slide")
	help.WriteString("\n")

	help.WriteString(r.section.Render("Other"))
	help.WriteString("\n")
	r.line(&help, "?", "Show this help")
	r.line(&help, "q", "Quit")

	return help.String()
}

// RenderSlide generates the detail page for one slide
func (r *HelpRenderer) RenderSlide(c domain.Carousel, index int) string {
	var b strings.Builder
	slide := c.Slides[index]

	b.WriteString(r.title.Render(slide.Title))
	b.WriteString("\n")
	b.WriteString(r.section.Render(fmt.Sprintf("%s · slide %d of %d", c.Title, index+1, len(c.Slides))))
	b.WriteString("\n\n")
	if slide.Body == "" {
		b.WriteString(r.desc.Render("(no description)"))
	} else {
		b.WriteString(r.desc.Render(slide.Body))
	}
	b.WriteString("\n")
	return b.String()
}

// PagerOps runs content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// ShowInPager hands the terminal to ov until the user closes it
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov time to exit before taking the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	configureVimKeyBindings(&config)

	root.SetConfig(config)

	return root.Run()
}

// configureVimKeyBindings sets movement keys for the pager, keeping the arrow keys
func configureVimKeyBindings(config *oviewer.Config) {
	if config.Keybind == nil {
		config.Keybind = make(map[string][]string)
	}
	config.Keybind["down"] = []string{"Enter", "Down", "ctrl+n", "j"}
	config.Keybind["up"] = []string{"Up", "ctrl+p", "k"}
	config.Keybind["top"] = []string{"Home", "g"}
	config.Keybind["bottom"] = []string{"End", "G"}
	config.Keybind["exit"] = []string{"Escape", "q"}
}
