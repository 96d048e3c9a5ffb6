//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"ca-lab/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type generationProvider interface {
	Generation() int
}

// HUD draws a one-line status banner over the simulation view: the sim name,
// any parameters the sim exposes (the rule number for the 1-D automaton) and
// the generation counter.
type HUD struct {
	sim     core.Sim
	visible bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, visible: true}
}

// Update handles the visibility toggle.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Title builds the banner text.
func (h *HUD) Title() string {
	var b strings.Builder
	b.WriteString(h.sim.Name())
	if pp, ok := h.sim.(core.ParameterProvider); ok {
		for _, p := range pp.Parameters().Params {
			fmt.Fprintf(&b, "  %s %s", p.Label, p.Value)
		}
	}
	if gp, ok := h.sim.(generationProvider); ok {
		fmt.Fprintf(&b, "  gen %d", gp.Generation())
	}
	return b.String()
}

// Draw renders the banner onto the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible {
		return
	}
	text.Draw(screen, h.Title(), basicfont.Face7x13, 5, 14, color.White)
}
