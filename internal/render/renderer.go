package render

import (
	"image/color"
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error

	AddDecoration(col, row int, content string, frames int)

	// RenderLoop drives the frame scheduler. frameDelta is the wall time
	// since the previous frame, render returns false to stop.
	RenderLoop(render func(now time.Time, frameDelta time.Duration) bool)

	Fill(row, column int, message string)
	FillColor(row, column int, c color.RGBA, message string)
}
