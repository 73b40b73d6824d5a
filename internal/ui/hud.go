//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"daynight/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPanelWidth = 200
	hudPadding    = 8
	hudLineHeight = 14
)

// HUD renders a togglable panel (Tab) showing the live cell counts and the
// configuration the simulation was built with.
type HUD struct {
	sim     core.Sim
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.RGBA{R: 16, G: 16, B: 24, A: 210})
	return h
}

// Update toggles panel visibility from keyboard input.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.visible = !h.visible
	}
}

// Draw renders the panel in the top-right corner of the screen.
func (h *HUD) Draw(screen *ebiten.Image, useBatch bool) {
	if !h.visible {
		return
	}

	lines := h.buildLines(useBatch)
	height := len(lines)*hudLineHeight + 2*hudPadding

	bounds := screen.Bounds()
	originX := bounds.Dx() - hudPanelWidth
	if originX < 0 {
		originX = 0
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(hudPanelWidth), float64(height))
	op.GeoM.Translate(float64(originX), 0)
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	y := hudPadding + hudLineHeight - 2
	for _, line := range lines {
		text.Draw(screen, line, face, originX+hudPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += hudLineHeight
	}
}

func (h *HUD) buildLines(useBatch bool) []string {
	lines := []string{h.sim.Name()}

	if counter, ok := h.sim.(core.Counter); ok {
		day, night := counter.Counts()
		lines = append(lines, fmt.Sprintf("day   %d", day), fmt.Sprintf("night %d", night))
	}
	if stepper, ok := h.sim.(core.Stepper); ok {
		lines = append(lines, fmt.Sprintf("step  %d", stepper.StepCount()))
	}
	path := "path  per-entity"
	if useBatch {
		path = "path  batch"
	}
	lines = append(lines, path)

	if provider, ok := h.sim.(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			lines = append(lines, "", "["+group.Name+"]")
			for _, p := range group.Params {
				lines = append(lines, fmt.Sprintf("%s = %s", p.Label, p.Value))
			}
		}
	}
	return lines
}
