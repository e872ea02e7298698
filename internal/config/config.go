package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"carousel/internal/carousel"
	"carousel/internal/domain"
)

// FileName is the default config file name looked up in the working directory
const FileName = ".carousel.toml"

// Config represents the application configuration
type Config struct {
	Version   int              `toml:"version"`
	Carousels []CarouselConfig `toml:"carousels"`
}

// CarouselConfig is one [[carousels]] table
type CarouselConfig struct {
	ID      string         `toml:"id"`
	Title   string         `toml:"title,omitempty"`
	Options Options        `toml:"options"`
	Slides  []domain.Slide `toml:"slides"`
}

// Options mirrors carousel.Config with every field optional.
// Unset fields fall back to carousel.DefaultConfig.
type Options struct {
	SlidesPerView       *float64 `toml:"slides_per_view,omitempty"`
	InitialSlide        *int     `toml:"initial_slide,omitempty"`
	Navigation          *bool    `toml:"navigation,omitempty"`
	DragThresholdPx     *int     `toml:"drag_threshold_px,omitempty"`
	AnimationDurationMs *int     `toml:"animation_duration_ms,omitempty"`
}

// Resolve returns the carousel configuration with defaults applied
func (o Options) Resolve() carousel.Config {
	cfg := carousel.DefaultConfig()
	if o.SlidesPerView != nil {
		cfg.SlidesPerView = *o.SlidesPerView
	}
	if o.InitialSlide != nil {
		cfg.InitialSlide = *o.InitialSlide
	}
	if o.Navigation != nil {
		cfg.Navigation = *o.Navigation
	}
	if o.DragThresholdPx != nil {
		cfg.DragThresholdPx = *o.DragThresholdPx
	}
	if o.AnimationDurationMs != nil {
		cfg.AnimationDurationMs = *o.AnimationDurationMs
	}
	return cfg
}

// OptionsFrom returns fully populated options for cfg
func OptionsFrom(cfg carousel.Config) Options {
	return Options{
		SlidesPerView:       &cfg.SlidesPerView,
		InitialSlide:        &cfg.InitialSlide,
		Navigation:          &cfg.Navigation,
		DragThresholdPx:     &cfg.DragThresholdPx,
		AnimationDurationMs: &cfg.AnimationDurationMs,
	}
}

// Carousel returns the domain model for this table
func (c CarouselConfig) Carousel() domain.Carousel {
	return domain.Carousel{
		ID:     c.ID,
		Title:  c.Title,
		Slides: c.Slides,
	}
}

// State validates the table and builds the initial carousel state
func (c CarouselConfig) State() (carousel.State, error) {
	s, err := carousel.New(c.ID, c.Options.Resolve(), len(c.Slides))
	if err != nil {
		return carousel.State{}, fmt.Errorf("carousel %q: %w", c.ID, err)
	}
	return s, nil
}

// EventPublisher receives config lifecycle events
type EventPublisher interface {
	Publish(event domain.DomainEvent)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      EventPublisher
	filePath string
}

// NewConfigService creates a config service bound to path
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = FileName
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service that publishes load and save events
func NewConfigServiceWithBus(path string, bus EventPublisher) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the service's file.
// A missing file yields DefaultConfig, which is written back so the user can edit it.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("No config at %s, writing defaults", cs.filePath)
		cfg = DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			log.Printf("Failed to save default config: %v", err)
		}
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigLoadedEvent{
			Path:      cs.filePath,
			Carousels: len(cfg.Carousels),
		})
	}

	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that every carousel can be constructed and that ids are unique
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Carousels))
	for _, cc := range c.Carousels {
		if seen[cc.ID] {
			return fmt.Errorf("duplicate carousel id %q", cc.ID)
		}
		seen[cc.ID] = true
		if _, err := cc.State(); err != nil {
			return err
		}
	}
	return nil
}

// DefaultConfig returns a demo configuration with two carousels
func DefaultConfig() *Config {
	games := carousel.DefaultConfig()
	games.DragThresholdPx = 4

	photos := carousel.DefaultConfig()
	photos.SlidesPerView = 2
	photos.DragThresholdPx = 4
	photos.AnimationDurationMs = 150

	return &Config{
		Version: 1,
		Carousels: []CarouselConfig{
			{
				ID:      "games",
				Title:   "Board games",
				Options: OptionsFrom(games),
				Slides: []domain.Slide{
					{Title: "Chess", Body: "Sixty-four squares, thirty-two pieces."},
					{Title: "Go", Body: "Black and white stones on a 19x19 grid."},
					{Title: "Shogi", Body: "Captured pieces return to the board."},
				},
			},
			{
				ID:      "photos",
				Title:   "Photos",
				Options: OptionsFrom(photos),
				Slides: []domain.Slide{
					{Title: "Harbour"},
					{Title: "Lighthouse"},
					{Title: "Dunes"},
					{Title: "Pier"},
				},
			},
		},
	}
}
