package stopwatch

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	mouseZone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sw "github.com/cloudposse/stopwatch/pkg/stopwatch"
)

var (
	keySpace    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyS        = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}
	keyR        = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	keyQ        = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyCtrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

// liveHandle returns the handle the last scheduled tick carries.
func liveHandle(t *testing.T, m Model) sw.TickHandle {
	t.Helper()
	h, ok := m.watch.Handle()
	require.True(t, ok, "expected a live tick source")
	return h
}

// deliverTicks feeds n ticks for the live handle, checking that each one
// schedules its successor.
func deliverTicks(t *testing.T, m Model, n int) Model {
	t.Helper()
	h := liveHandle(t, m)
	for i := 0; i < n; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg{Handle: h})
		require.NotNil(t, cmd, "tick %d should schedule the next one", i+1)
	}
	return m
}

func view(m Model) string {
	return ansi.Strip(m.View())
}

func TestNew(t *testing.T) {
	m := New()

	assert.Nil(t, m.Init())
	assert.Equal(t, 0, m.Elapsed())
	assert.False(t, m.Running())
	assert.Equal(t, "00:00", m.Display())
	assert.Equal(t, "Start", m.StartStopLabel())
	assert.False(t, m.ResetEnabled())
	assert.False(t, m.keys.Reset.Enabled())
}

func TestModel_StartStop(t *testing.T) {
	t.Run("space starts and schedules a tick", func(t *testing.T) {
		m, cmd := update(t, New(), keySpace)

		assert.NotNil(t, cmd)
		assert.True(t, m.Running())
		assert.Equal(t, "Stop", m.StartStopLabel())
		assert.Equal(t, stopHelp, m.keys.StartStop.Help().Desc)
	})

	t.Run("s stops without scheduling", func(t *testing.T) {
		m, _ := update(t, New(), keyS)
		m = deliverTicks(t, m, 2)

		m, cmd := update(t, m, keyS)

		assert.Nil(t, cmd)
		assert.False(t, m.Running())
		assert.Equal(t, 2, m.Elapsed())
		assert.Equal(t, "Start", m.StartStopLabel())
	})

	t.Run("enter presses the focused button", func(t *testing.T) {
		m, cmd := update(t, New(), keyEnter)
		assert.NotNil(t, cmd)
		assert.True(t, m.Running())
	})
}

func TestModel_Tick(t *testing.T) {
	t.Run("stale ticks are dropped", func(t *testing.T) {
		m, _ := update(t, New(), keySpace)
		old := liveHandle(t, m)
		m, _ = update(t, m, keySpace)
		m, _ = update(t, m, keySpace)

		m, cmd := update(t, m, TickMsg{Handle: old})

		assert.Nil(t, cmd, "a stale tick must not start a second chain")
		assert.Equal(t, 0, m.Elapsed())
	})

	t.Run("restart within one interval keeps a single chain", func(t *testing.T) {
		m, first := update(t, New(), keySpace)
		require.NotNil(t, first)
		old := liveHandle(t, m)
		m, _ = update(t, m, keySpace)
		m, second := update(t, m, keySpace)
		require.NotNil(t, second)
		current := liveHandle(t, m)

		// Both timers fire; only the one from the latest start counts.
		m, cmd := update(t, m, TickMsg{Handle: old})
		assert.Nil(t, cmd)
		m, cmd = update(t, m, TickMsg{Handle: current})
		assert.NotNil(t, cmd)

		assert.Equal(t, 1, m.Elapsed())
	})

	t.Run("ticks while idle are dropped", func(t *testing.T) {
		m, cmd := update(t, New(), TickMsg{})
		assert.Nil(t, cmd)
		assert.Equal(t, 0, m.Elapsed())
	})

	t.Run("first tick enables reset", func(t *testing.T) {
		m, _ := update(t, New(), keySpace)
		m = deliverTicks(t, m, 1)
		assert.True(t, m.ResetEnabled())
		assert.True(t, m.keys.Reset.Enabled())
	})
}

func TestModel_Reset(t *testing.T) {
	t.Run("disabled at zero", func(t *testing.T) {
		m, _ := update(t, New(), keySpace)
		m, cmd := update(t, m, keyR)

		assert.Nil(t, cmd)
		assert.True(t, m.Running(), "reset is not offered before the first second")
	})

	t.Run("from running", func(t *testing.T) {
		m, _ := update(t, New(), keySpace)
		m = deliverTicks(t, m, 5)
		h := liveHandle(t, m)

		m, _ = update(t, m, keyR)

		assert.Equal(t, "00:00", m.Display())
		assert.False(t, m.Running())
		assert.False(t, m.ResetEnabled())
		assert.Equal(t, "Start", m.StartStopLabel())

		m, cmd := update(t, m, TickMsg{Handle: h})
		assert.Nil(t, cmd)
		assert.Equal(t, 0, m.Elapsed())
	})

	t.Run("enter on the focused reset button", func(t *testing.T) {
		m, _ := update(t, New(), keySpace)
		m = deliverTicks(t, m, 3)
		m, _ = update(t, m, keySpace)
		m, _ = update(t, m, keyTab)

		m, cmd := update(t, m, keyEnter)

		assert.Nil(t, cmd)
		assert.Equal(t, 0, m.Elapsed())
	})

	t.Run("enter on a disabled reset button does nothing", func(t *testing.T) {
		m, _ := update(t, New(), keyTab)
		m, cmd := update(t, m, keyEnter)

		assert.Nil(t, cmd)
		assert.False(t, m.Running())
		assert.Equal(t, resetButton, m.focus)
	})
}

func TestModel_Focus(t *testing.T) {
	m, _ := update(t, New(), keyTab)
	assert.Equal(t, resetButton, m.focus)

	m, _ = update(t, m, keyTab)
	assert.Equal(t, startStopButton, m.focus)

	m, _ = update(t, m, keyShiftTab)
	assert.Equal(t, resetButton, m.focus)
}

func TestModel_Quit(t *testing.T) {
	for name, msg := range map[string]tea.KeyMsg{"q": keyQ, "ctrl+c": keyCtrlC} {
		t.Run(name, func(t *testing.T) {
			m, _ := update(t, New(), keySpace)
			m = deliverTicks(t, m, 2)
			h := liveHandle(t, m)

			m, cmd := update(t, m, msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.True(t, m.Closed())
			assert.False(t, m.Running())

			m, cmd = update(t, m, TickMsg{Handle: h})
			assert.Nil(t, cmd, "no tick may be scheduled after teardown")
			assert.Equal(t, 2, m.Elapsed())

			m, cmd = update(t, m, keySpace)
			assert.Nil(t, cmd)
			assert.False(t, m.Running())
		})
	}
}

func TestModel_View(t *testing.T) {
	t.Run("initial", func(t *testing.T) {
		v := view(New())

		assert.Contains(t, v, "Stopwatch")
		assert.Contains(t, v, "00:00")
		assert.Contains(t, v, "Start")
		assert.Contains(t, v, "Reset")
		assert.NotContains(t, v, "reset", "disabled bindings are hidden from help")
	})

	t.Run("three ticks", func(t *testing.T) {
		m, _ := update(t, New(), keySpace)
		m = deliverTicks(t, m, 3)

		v := view(m)
		assert.Contains(t, v, "00:03")
		assert.Contains(t, v, "Stop")
		assert.Contains(t, v, "r reset")
	})

	t.Run("resumes across stop and start", func(t *testing.T) {
		m, _ := update(t, New(), keySpace)
		m, _ = update(t, m, keySpace)
		m, _ = update(t, m, keySpace)
		m = deliverTicks(t, m, 2)

		assert.Contains(t, view(m), "00:02")
	})

	t.Run("sixty five seconds", func(t *testing.T) {
		m, _ := update(t, New(), keySpace)
		m = deliverTicks(t, m, 65)

		assert.Contains(t, view(m), "01:05")
	})

	t.Run("after quit", func(t *testing.T) {
		m, _ := update(t, New(), keyQ)
		assert.Equal(t, "Stopwatch 00:00\n", view(m))
	})
}

func TestModel_WindowSize(t *testing.T) {
	m, cmd := update(t, New(), tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Nil(t, cmd)
	assert.Equal(t, 40, m.help.Width)
}

func TestModel_Mouse(t *testing.T) {
	click := func(z *mouseZone.ZoneInfo, action tea.MouseAction) tea.MouseMsg {
		return tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: action, Button: tea.MouseButtonLeft}
	}

	zoneOf := func(t *testing.T, zones *mouseZone.Manager, m Model, b button) *mouseZone.ZoneInfo {
		t.Helper()
		m.View()
		var z *mouseZone.ZoneInfo
		require.Eventually(t, func() bool {
			z = zones.Get(m.zoneID(b))
			return z != nil
		}, time.Second, 10*time.Millisecond)
		return z
	}

	t.Run("click start and stop", func(t *testing.T) {
		zones := mouseZone.New()
		t.Cleanup(zones.Close)
		m := New(WithMouseZones(zones))
		z := zoneOf(t, zones, m, startStopButton)

		m, cmd := update(t, m, click(z, tea.MouseActionPress))
		require.NotNil(t, cmd)
		assert.True(t, m.Running())

		m, cmd = update(t, m, click(z, tea.MouseActionRelease))
		assert.Nil(t, cmd)
		assert.True(t, m.Running(), "release does not toggle")

		m, cmd = update(t, m, click(z, tea.MouseActionPress))
		assert.Nil(t, cmd)
		assert.False(t, m.Running())
	})

	t.Run("click disabled reset", func(t *testing.T) {
		zones := mouseZone.New()
		t.Cleanup(zones.Close)
		m := New(WithMouseZones(zones))
		z := zoneOf(t, zones, m, resetButton)

		m, cmd := update(t, m, click(z, tea.MouseActionPress))
		assert.Nil(t, cmd)
		assert.Equal(t, resetButton, m.focus)
		assert.Equal(t, 0, m.Elapsed())
		assert.False(t, m.Running())
	})

	t.Run("click enabled reset", func(t *testing.T) {
		zones := mouseZone.New()
		t.Cleanup(zones.Close)
		m, _ := update(t, New(WithMouseZones(zones)), keySpace)
		m = deliverTicks(t, m, 3)
		require.True(t, m.ResetEnabled())
		z := zoneOf(t, zones, m, resetButton)

		m, cmd := update(t, m, click(z, tea.MouseActionPress))
		assert.Nil(t, cmd)
		assert.Equal(t, 0, m.Elapsed())
		assert.False(t, m.Running())
		assert.False(t, m.ResetEnabled())
		assert.Equal(t, "00:00", m.Display())
	})

	t.Run("ignored without zones", func(t *testing.T) {
		m, cmd := update(t, New(), tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		assert.Nil(t, cmd)
		assert.False(t, m.Running())
	})
}
