package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycleFocusWraps(t *testing.T) {
	s := NewAppState()

	s.CycleFocus(3, false)
	s.CycleFocus(3, false)
	assert.Equal(t, 2, s.Focus)

	s.CycleFocus(3, false)
	assert.Equal(t, 0, s.Focus)

	s.CycleFocus(3, true)
	assert.Equal(t, 2, s.Focus)

	s.CycleFocus(0, false)
	assert.Equal(t, 0, s.Focus)
}

func TestStatus(t *testing.T) {
	s := NewAppState()
	s.SetStatus("oops", true)
	assert.Equal(t, "oops", s.StatusMessage)
	assert.True(t, s.StatusIsError)

	s.ClearStatus()
	assert.Empty(t, s.StatusMessage)
	assert.False(t, s.StatusIsError)
}
