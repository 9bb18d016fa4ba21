package main

import (
	"github.com/sirupsen/logrus"
)

// InputState is what the dispatcher remembers between events.
type InputState struct {
	X, Y float64
	Held bool
	Mode Mode
}

// AppState is everything HandleEvent reads and produces.
type AppState struct {
	Input InputState
	Board Canvas
}

func newAppState(seed ...PixelSquare) AppState {
	return AppState{
		Input: InputState{Mode: ModePaint},
		Board: *NewCanvas(seed...),
	}
}

// Event is one notification from the event stream. Which fields are
// meaningful depends on Kind.
type Event struct {
	Kind    EventKind
	X, Y    float64
	Button  MouseButton
	Pressed bool
}

func PointerMove(x, y float64) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

func Press(b MouseButton) Event {
	return Event{Kind: EventButton, Button: b, Pressed: true}
}

func Release(b MouseButton) Event {
	return Event{Kind: EventButton, Button: b}
}

func Render() Event {
	return Event{Kind: EventRender}
}

type model struct {
	width   int
	height  int
	state   AppState
	surface *rasterSurface
	log     *logrus.Entry
	capHit  bool
}
