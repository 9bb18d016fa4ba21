package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg is the per-frame render notification.
type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// cellToCanvas maps a terminal cell to canvas units. Rows above the canvas
// map to negative y.
func cellToCanvas(col, row int) (float64, float64) {
	return float64(col * columnUnits), float64((row - headerRows) * rowUnits)
}

func buttonFromMouse(b tea.MouseButton) MouseButton {
	switch b {
	case tea.MouseButtonLeft:
		return ButtonLeft
	case tea.MouseButtonMiddle:
		return ButtonMiddle
	case tea.MouseButtonRight:
		return ButtonRight
	default:
		return ButtonUnknown
	}
}

// eventsFromMouse turns one terminal mouse report into events. Reports carry
// a position, so every press and release is preceded by a pointer move.
func eventsFromMouse(msg tea.MouseMsg, in InputState) []Event {
	x, y := cellToCanvas(msg.X, msg.Y)
	move := PointerMove(x, y)

	if tea.MouseEvent(msg).IsWheel() {
		return []Event{move}
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		return []Event{move}
	case tea.MouseActionPress:
		return []Event{move, Press(buttonFromMouse(msg.Button))}
	case tea.MouseActionRelease:
		b := buttonFromMouse(msg.Button)
		if msg.Button == tea.MouseButtonNone {
			// X10 reports do not say which button was released.
			b = heldButton(in)
		}
		return []Event{move, Release(b)}
	}
	return []Event{move}
}

func heldButton(in InputState) MouseButton {
	if in.Mode == ModeErase {
		return ButtonRight
	}
	return ButtonLeft
}

// eventsFromMsg maps any message the program receives onto the event stream.
func eventsFromMsg(msg tea.Msg, in InputState) []Event {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return eventsFromMouse(msg, in)
	case frameMsg:
		return []Event{Render()}
	default:
		return []Event{{Kind: EventOther}}
	}
}
