package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel/internal/config"
	"carousel/internal/eventbus"
)

func TestRegisterDefaultConfig(t *testing.T) {
	bus := eventbus.New()

	carousels, err := register(bus, config.DefaultConfig())
	require.NoError(t, err)

	require.Len(t, carousels, 2)
	assert.Equal(t, "games", carousels[0].ID)
	assert.Equal(t, []string{"games", "photos"}, bus.IDs())

	photos, ok := bus.State("photos")
	require.True(t, ok)
	assert.Equal(t, 4, photos.SlideCount)
	assert.Equal(t, 2.0, photos.Config.SlidesPerView)
}

func TestRegisterRejectsDuplicateIDs(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Carousels = append(cfg.Carousels, cfg.Carousels[0])

	_, err := register(eventbus.New(), cfg)
	require.ErrorIs(t, err, eventbus.ErrDuplicateCarousel)
}

func TestRootFlags(t *testing.T) {
	flag := rootCmd.Flags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, config.FileName, flag.DefValue)
	assert.Equal(t, "c", flag.Shorthand)
}
