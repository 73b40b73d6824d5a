//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"daynight/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type entityLister interface {
	EntityPositions() []core.Point
}

// Overlay draws optional debugging visuals on top of the base simulation:
// grid lines (G), per-cell coordinate labels (C) and a state read-out (D).
type Overlay struct {
	sim   core.Sim
	scale int

	showGrid   bool
	showCoords bool
	showDebug  bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.RGBA{R: 90, G: 90, B: 90, A: 140})
	return o
}

// Update toggles the overlay layers from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showCoords = !o.showCoords
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showDebug = !o.showDebug
	}
}

// Draw renders the enabled overlay layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	if o.showGrid {
		o.drawGridLines(screen, size, scale)
	}
	if o.showCoords && scale >= 16 {
		o.drawCoordinates(screen, size, scale)
	}
	if o.showDebug {
		o.drawDebug(screen)
	}
}

func (o *Overlay) drawGridLines(screen *ebiten.Image, size core.Size, scale int) {
	for x := 1; x < size.W; x++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1, float64(size.H*scale))
		op.GeoM.Translate(float64(x*scale), 0)
		screen.DrawImage(o.pixel, op)
	}
	for y := 1; y < size.H; y++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(size.W*scale), 1)
		op.GeoM.Translate(0, float64(y*scale))
		screen.DrawImage(o.pixel, op)
	}
}

func (o *Overlay) drawCoordinates(screen *ebiten.Image, size core.Size, scale int) {
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d,%d", x, y), x*scale+1, y*scale+1)
		}
	}
}

func (o *Overlay) drawDebug(screen *ebiten.Image) {
	msg := "sim " + o.sim.Name()
	if stepper, ok := o.sim.(core.Stepper); ok {
		msg += fmt.Sprintf("  step %d", stepper.StepCount())
	}
	if counter, ok := o.sim.(core.Counter); ok {
		day, night := counter.Counts()
		msg += fmt.Sprintf("\nday %d | night %d", day, night)
	}
	if lister, ok := o.sim.(entityLister); ok {
		for i, p := range lister.EntityPositions() {
			if i >= 8 {
				msg += "\n..."
				break
			}
			msg += fmt.Sprintf("\nentity %d at (%d,%d)", i, p.X, p.Y)
		}
	}
	ebitenutil.DebugPrint(screen, msg)
}
