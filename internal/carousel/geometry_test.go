package carousel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlideWidthPercent(t *testing.T) {
	assert.Equal(t, 100.0, SlideWidthPercent(1))
	assert.Equal(t, 50.0, SlideWidthPercent(2))
	assert.Equal(t, 40.0, SlideWidthPercent(2.5))
}

func TestTransform(t *testing.T) {
	assert.Equal(t, "translate3d(-0%, 0, 0)", Transform(0, 1, false, 0), "negative zero keeps its sign")
	assert.Equal(t, "translate3d(-200%, 0, 0)", Transform(2, 1, false, 0))
	assert.Equal(t, "translate3d(-50%, 0, 0)", Transform(1, 2, false, 0))
	assert.Equal(t, "translate3d(-33.333333333333336%, 0, 0)", Transform(1, 3, false, 0))
	assert.Equal(t, "translate3d(calc(-100% + -30px), 0, 0)", Transform(1, 1, true, -30))
	assert.Equal(t, "translate3d(calc(-0% + 12.5px), 0, 0)", Transform(0, 1, true, 12.5))
}

func TestTransformIgnoresOffsetWhenIdle(t *testing.T) {
	assert.Equal(t, Transform(1, 1, false, 0), Transform(1, 1, false, 99))
}

func TestFormatNumberAvoidsExponent(t *testing.T) {
	assert.Equal(t, "1000000000000000000000", formatNumber(1e21))
	assert.Equal(t, "0.0000001", formatNumber(1e-7))
	assert.Equal(t, "-0", formatNumber(math.Copysign(0, -1)))
}

func TestTransitionStyle(t *testing.T) {
	assert.Equal(t, "none", TransitionStyle(true, 300))
	assert.Equal(t, "transform 300ms ease-out", TransitionStyle(false, 300))
	assert.Equal(t, "transform 0ms ease-out", TransitionStyle(false, 0))
}

func TestNavButtonClass(t *testing.T) {
	assert.Equal(t, "carousel-button", NavButtonClass("carousel-button", false))
	assert.Equal(t, "carousel-button carousel-button-disabled", NavButtonClass("carousel-button", true))
}

func TestButtonDisabledState(t *testing.T) {
	s := newTestState(t, 3)
	assert.True(t, PrevDisabled(s))
	assert.False(t, NextDisabled(s))

	s.ActiveIndex = 1
	assert.False(t, PrevDisabled(s))
	assert.False(t, NextDisabled(s))

	s.ActiveIndex = 2
	assert.False(t, PrevDisabled(s))
	assert.True(t, NextDisabled(s))

	single := newTestState(t, 1)
	assert.True(t, PrevDisabled(single))
	assert.True(t, NextDisabled(single))
}

func TestBuildView(t *testing.T) {
	s := newTestState(t, 3)
	s = ApplyAll(s, NextSlide{}, MouseDown{X: 100}, MouseMove{X: 80})

	v := BuildView(s)

	assert.Equal(t, "games", v.ID)
	assert.Equal(t, 1, v.ActiveIndex)
	assert.Equal(t, 100.0, v.SlideWidthPercent)
	assert.Equal(t, "translate3d(calc(-100% + -20px), 0, 0)", v.Transform)
	assert.Equal(t, "none", v.Transition)
	assert.True(t, v.ShowNavigation)
	assert.Equal(t, PrevButtonClass, v.PrevClass)
	assert.Equal(t, NextButtonClass, v.NextClass)
	assert.Equal(t, "Carousel|games|PrevSlide", v.PrevToken)
	assert.Equal(t, "Carousel|games|NextSlide", v.NextToken)

	s = Apply(s, MouseUp{})
	v = BuildView(s)
	assert.Equal(t, "transform 300ms ease-out", v.Transition)
	assert.Equal(t, PrevButtonClass+" "+DisabledButtonClass, BuildView(Apply(s, PrevSlide{})).PrevClass)
}

func TestIndicatorTokens(t *testing.T) {
	s := newTestState(t, 3)
	tokens := IndicatorTokens(s)
	require.Len(t, tokens, 3)
	assert.Equal(t, "Carousel|games|GoToSlide|0", tokens[0])
	assert.Equal(t, "Carousel|games|GoToSlide|2", tokens[2])
}
