//go:build ebiten

package ui

import (
	"image/color"
	"time"

	"life-table/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 4
	hudLineHeight = 14
)

// HUD draws a status line with the generation count, population and speed in
// the top-left corner of the simulation view.
type HUD struct {
	sim     core.Sim
	stats   *core.Stats
	visible bool
	paused  bool
	last    time.Time
	lastGen int
	line    string
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim, stats: core.NewStats(), visible: true, lastGen: -1}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() { h.visible = !h.visible }

// SetPaused marks the status line as paused.
func (h *HUD) SetPaused(paused bool) { h.paused = paused }

// Update refreshes the status line when the simulation has advanced.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	gen := h.sim.Generation()
	if gen != h.lastGen {
		now := time.Now()
		var d time.Duration
		if !h.last.IsZero() {
			d = now.Sub(h.last)
		}
		h.stats.Update(gen, h.sim.Population(), d)
		h.last = now
		h.lastGen = gen
	}
	h.line = statusLine(h.stats, h.paused)
}

// Draw renders the status line over dst.
func (h *HUD) Draw(dst *ebiten.Image) {
	if h == nil || !h.visible || h.line == "" {
		return
	}
	face := basicfont.Face7x13
	w := len(h.line)*face.Advance + 2*hudPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(hudLineHeight+hudPadding))
	op.ColorScale.Scale(0, 0, 0, 0.6)
	dst.DrawImage(h.pixel, op)

	text.Draw(dst, h.line, face, hudPadding, hudLineHeight, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
