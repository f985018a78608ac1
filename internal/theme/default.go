package theme

import (
	"fmt"
	"image/color"
)

type DefaultTheme struct{}

const (
	barSym = "-"
)

var (
	// Left hand red, right hand blue, per column
	handColors = [...]color.RGBA{
		{R: 236, G: 30, B: 0},
		{R: 236, G: 90, B: 60},
		{R: 60, G: 130, B: 236},
		{R: 0, G: 118, B: 236},
	}
	layerSyms = [...]string{"⬤", "◆", "▲"}
)

func (t *DefaultTheme) NoteColor(index uint8) color.RGBA {
	return handColors[index%4]
}

func (t *DefaultTheme) RenderNote(index uint8, layer uint8) string {
	c := t.NoteColor(index)
	sym := layerSyms[layer%3]
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, sym)
}

func (t *DefaultTheme) RenderHitField(index uint8) string {
	return barSym
}

func (t *DefaultTheme) HealthColor(health float64) color.RGBA {
	switch {
	case health > 60:
		return color.RGBA{R: 0, G: 236, B: 128}
	case health > 25:
		return color.RGBA{R: 236, G: 195, B: 0}
	}
	return color.RGBA{R: 236, G: 30, B: 0}
}

func (t *DefaultTheme) GoodLabel() string {
	return "\033[1;32mGood\033[0m"
}

func (t *DefaultTheme) OkLabel() string {
	return "\033[1;33mOkay\033[0m"
}

func (t *DefaultTheme) MissLabel() string {
	return "\033[1;31mMiss\033[0m"
}
