package cmd

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"carousel/internal/config"
	"carousel/internal/domain"
	"carousel/internal/eventbus"
	"carousel/internal/ui"
)

var (
	configPath string
	logPath    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "carousel",
	Short: "Browse slide carousels in the terminal",
	Long: `Browse one or more slide carousels defined in a TOML config file.

Use the arrow keys, the mouse wheel, or drag the track with the mouse to change
slides. Tab switches between carousels. A default config is written when none exists.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.FileName, "Path to the carousel config file")
	rootCmd.Flags().StringVar(&logPath, "log", "carousel.log", "Path to the log file")
}

func run() error {
	// The terminal belongs to the UI, so logs go to a file
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	bus := eventbus.New()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Printf("Loaded %d carousels from %s", len(cfg.Carousels), configPath)

	carousels, err := register(bus, cfg)
	if err != nil {
		return err
	}

	bus.Subscribe(eventbus.EventDragEnded, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.DragEndedEvent); ok {
			log.Printf("Drag ended on %s at %.0fpx (committed: %t)", event.CarouselID, event.OffsetPx, event.Committed)
		}
	})

	uiModel := ui.NewModel(bus, carousels)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	uiModel.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}

// register builds the initial state of every configured carousel and adds it to the bus
func register(bus eventbus.EventBus, cfg *config.Config) ([]domain.Carousel, error) {
	carousels := make([]domain.Carousel, 0, len(cfg.Carousels))
	for _, cc := range cfg.Carousels {
		state, err := cc.State()
		if err != nil {
			return nil, err
		}
		if err := bus.Register(state); err != nil {
			return nil, err
		}
		carousels = append(carousels, cc.Carousel())
	}
	return carousels, nil
}
