package main

import (
	"image/color"
	"time"
)

type Mode int

const (
	ModePaint Mode = iota
	ModeErase
)

type MouseButton int

const (
	ButtonUnknown MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

type EventKind int

const (
	EventOther EventKind = iota
	EventPointerMove
	EventButton
	EventRender
)

const (
	windowTitle  = "Drawing App"
	canvasWidth  = 500
	canvasHeight = 500

	// SquareSize is the side length of every PixelSquare in canvas units.
	SquareSize = 10

	// One terminal column covers columnUnits canvas units; one row covers
	// rowUnits and shows two raster pixels stacked with a half block.
	columnUnits = 5
	rowUnits    = 10
	headerRows  = 1

	frameInterval = time.Second / 60
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	PaintColor      = color.RGBA{0, 0, 0, 255}
	EraseColor      = BackgroundColor
)
