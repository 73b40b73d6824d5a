package daynight

import "image/color"

// Display buffer values: the cell state itself, or an entity marker offset
// by its type.
const (
	displayDay         = 0
	displayNight       = 1
	displayEntityBase  = 2
	displayDayEntity   = displayEntityBase + 0
	displayNightEntity = displayEntityBase + 1
)

var daynightPalette = []color.RGBA{
	displayDay:         {R: 17, G: 74, B: 88, A: 255},
	displayNight:       {R: 216, G: 231, B: 226, A: 255},
	displayDayEntity:   {R: 216, G: 231, B: 226, A: 255},
	displayNightEntity: {R: 17, G: 74, B: 88, A: 255},
}

// Palette exposes the color palette used for rendering the world. Entities
// carry the color of their own territory, so each runner stands out against
// the opposing half it erodes.
func (w *World) Palette() []color.RGBA {
	return daynightPalette
}

// Cells renders the grid plus entity markers into the display buffer.
func (w *World) Cells() []uint8 {
	cells := w.grid.Cells()
	for i, c := range cells {
		w.display[i] = uint8(c)
	}
	for _, e := range w.entities {
		w.display[w.grid.Index(e.X, e.Y)] = displayEntityBase + uint8(e.Type)
	}
	return w.display
}
