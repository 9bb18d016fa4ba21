package main

import "image/color"

// HandleEvent applies one event and returns the next state. Events must be
// fed in arrival order; a render event sees every earlier event's effect.
// The returned state may share storage with s, so s should not be used again.
func HandleEvent(s AppState, ev Event) AppState {
	switch ev.Kind {
	case EventPointerMove:
		s.Input.X = ev.X
		s.Input.Y = ev.Y
	case EventButton:
		s.Input = handleButton(s.Input, ev.Button, ev.Pressed)
	case EventRender:
		if s.Input.Held {
			s.Board.Append(NewPixelSquare(s.Input.Mode.Color(), s.Input.X, s.Input.Y))
		}
	}
	return s
}

func handleButton(in InputState, b MouseButton, pressed bool) InputState {
	switch b {
	case ButtonLeft:
		if pressed {
			in.Mode = ModePaint
		}
	case ButtonRight:
		if pressed {
			in.Mode = ModeErase
		}
	default:
		return in
	}
	in.Held = pressed
	return in
}

// Color is the color a new square gets while m is active.
func (m Mode) Color() color.RGBA {
	if m == ModeErase {
		return EraseColor
	}
	return PaintColor
}

func (m Mode) String() string {
	switch m {
	case ModePaint:
		return "PAINT"
	case ModeErase:
		return "ERASE"
	default:
		return "UNKNOWN"
	}
}
