package theme

import "image/color"

type Theme interface {
	RenderNote(index uint8, layer uint8) string
	RenderHitField(index uint8) string

	NoteColor(index uint8) color.RGBA
	HealthColor(health float64) color.RGBA

	GoodLabel() string
	OkLabel() string
	MissLabel() string
}
