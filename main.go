package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := loadConfig()
	logger := newLogger(cfg)

	p := tea.NewProgram(
		initialModel(cfg, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.WithError(err).Error("Program failed")
		logrus.Fatalf("Failed to start %s: %v", windowTitle, err)
	}
}

func initialModel(cfg *Config, logger *logrus.Logger) model {
	state := newAppState(seedSquares()...)
	state.Board.SetLimit(cfg.MaxSquares)

	log := logger.WithField("component", "board")
	log.WithFields(logrus.Fields{
		"width":       canvasWidth,
		"height":      canvasHeight,
		"squares":     state.Board.Len(),
		"max_squares": cfg.MaxSquares,
	}).Info("Canvas ready")

	return model{
		state:   state,
		surface: newRasterSurface(canvasWidth, canvasHeight),
		log:     log,
	}
}

func (m model) Init() tea.Cmd {
	return nextFrame()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	m = m.dispatch(eventsFromMsg(msg, m.state.Input))

	if _, ok := msg.(frameMsg); ok {
		return m, nextFrame()
	}
	return m, nil
}

// dispatch feeds events to HandleEvent in order and logs what changed.
func (m model) dispatch(events []Event) model {
	for _, ev := range events {
		prev := m.state.Input
		m.state = HandleEvent(m.state, ev)

		if m.state.Input.Mode != prev.Mode {
			m.log.WithField("mode", m.state.Input.Mode).Debug("Mode changed")
		}
		if ev.Kind == EventRender && m.state.Input.Held && m.state.Board.Full() && !m.capHit {
			m.capHit = true
			m.log.WithField("max_squares", m.state.Board.Limit()).Warn("Square cap reached, further painting is ignored")
		}
	}
	return m
}
