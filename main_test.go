package main

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel(t *testing.T, cfg *Config) (model, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	if cfg == nil {
		cfg = defaultConfig()
	}
	return initialModel(cfg, logger), hook
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	require.True(t, ok)
	return nm, cmd
}

func TestInitialModel(t *testing.T) {
	m, hook := testModel(t, nil)

	assert.Equal(t, 4, m.state.Board.Len())
	assert.Equal(t, 0, m.state.Board.Limit())
	assert.Equal(t, InputState{Mode: ModePaint}, m.state.Input)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Canvas ready", hook.LastEntry().Message)
	assert.Equal(t, "board", hook.LastEntry().Data["component"])
	assert.NotNil(t, m.Init())
}

func TestUpdate_FrameSchedulesNextFrame(t *testing.T) {
	m, _ := testModel(t, nil)
	m, cmd := update(t, m, frameMsg(time.Now()))

	assert.NotNil(t, cmd)
	assert.Equal(t, 4, m.state.Board.Len())
}

func TestUpdate_DragPaintsOncePerFrame(t *testing.T) {
	m, _ := testModel(t, nil)

	m, _ = update(t, m, tea.MouseMsg{X: 20, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, frameMsg(time.Now()))
	m, _ = update(t, m, tea.MouseMsg{X: 22, Y: 11, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 24, Y: 11, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, frameMsg(time.Now()))
	m, _ = update(t, m, tea.MouseMsg{X: 24, Y: 11, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, frameMsg(time.Now()))

	squares := m.state.Board.Squares()
	require.Len(t, squares, 6)
	assert.Equal(t, NewPixelSquare(PaintColor, 100, 100), squares[4])
	assert.Equal(t, NewPixelSquare(PaintColor, 120, 100), squares[5])
	assert.False(t, m.state.Input.Held)
}

func TestUpdate_WindowSizeOnlyCrops(t *testing.T) {
	m, _ := testModel(t, nil)
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})

	assert.Nil(t, cmd)
	assert.Equal(t, 40, m.width)
	assert.Equal(t, 10, m.height)
	assert.Equal(t, 4, m.state.Board.Len())
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	} {
		m, hook := testModel(t, nil)
		_, cmd := update(t, m, key)
		require.NotNil(t, cmd, key.String())
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.Equal(t, "Quit requested", hook.LastEntry().Message)
		assert.Equal(t, 4, hook.LastEntry().Data["squares"])
	}
}

func TestUpdate_OtherKeysIgnored(t *testing.T) {
	m, _ := testModel(t, nil)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
}

func TestUpdate_LogsModeChange(t *testing.T) {
	m, hook := testModel(t, nil)
	update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, ModeErase, entry.Data["mode"])
}

func TestUpdate_CapWarnsOnce(t *testing.T) {
	cfg := defaultConfig()
	cfg.MaxSquares = 5
	m, hook := testModel(t, cfg)

	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	for i := 0; i < 4; i++ {
		m, _ = update(t, m, frameMsg(time.Now()))
	}

	assert.Equal(t, 5, m.state.Board.Len())
	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	assert.Equal(t, 1, warnings)
}

func TestNewLogger_DiscardsWithoutFile(t *testing.T) {
	logger := newLogger(defaultConfig())
	assert.Equal(t, io.Discard, logger.Out)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestNewLogger_WritesToFile(t *testing.T) {
	cfg := defaultConfig()
	cfg.LogFile = t.TempDir() + "/paint.log"
	cfg.LogLevel = logrus.WarnLevel
	cfg.Warnings = []string{"bad line"}

	logger := newLogger(cfg)
	assert.NotEqual(t, io.Discard, logger.Out)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.FileExists(t, cfg.LogFile)
}
