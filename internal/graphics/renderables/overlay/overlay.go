// Package overlay renders the toggleable stats text: FPS, animation time and
// a PAUSED banner. Glyphs come from the embedded Go Regular face, so no font
// asset ships with the demo.
package overlay

import (
	"fmt"
	"sync"

	"kinetic-sculpture/internal/graphics"
	renderer "kinetic-sculpture/internal/graphics/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/goregular"
)

const fontPixels = 28

// Overlay implements the stats text feature
type Overlay struct {
	font *graphics.FontRenderer

	viewportW int
	viewportH int

	mu      sync.Mutex
	visible bool
	fps     int
}

// NewOverlay creates the overlay; it starts visible
func NewOverlay(width, height int) *Overlay {
	return &Overlay{visible: true, viewportW: width, viewportH: height}
}

// Init bakes the glyph atlas and builds the text renderer
func (o *Overlay) Init() error {
	atlas, err := graphics.BuildFontAtlas(goregular.TTF, fontPixels)
	if err != nil {
		return fmt.Errorf("overlay font: %w", err)
	}
	o.font, err = graphics.NewFontRenderer(atlas, o.viewportW, o.viewportH)
	return err
}

// Toggle flips overlay visibility
func (o *Overlay) Toggle() {
	o.mu.Lock()
	o.visible = !o.visible
	o.mu.Unlock()
}

// SetFPS records the frame count of the last one-second window
func (o *Overlay) SetFPS(fps int) {
	o.mu.Lock()
	o.fps = fps
	o.mu.Unlock()
}

// Render draws the stats lines and, while paused, a centered banner
func (o *Overlay) Render(ctx renderer.RenderContext) {
	o.mu.Lock()
	visible := o.visible
	fps := o.fps
	o.mu.Unlock()

	paused := ctx.Scene.Clock.Paused()
	if paused {
		label := "PAUSED"
		scale := float32(1.5)
		tw, th := o.font.Measure(label, scale)
		x := (float32(o.viewportW) - tw) / 2
		y := (float32(o.viewportH) + th) / 2
		o.font.Render(label, x, y, scale, mgl32.Vec3{1, 0.85, 0.3})
	}

	if !visible {
		return
	}

	white := mgl32.Vec3{1, 1, 1}
	o.font.Render(fmt.Sprintf("FPS: %d", fps), 12, 30, 0.8, white)
	o.font.Render(fmt.Sprintf("t = %.1fs", ctx.AnimTime), 12, 56, 0.8, white)
}

// Dispose releases the font renderer and its atlas texture
func (o *Overlay) Dispose() {
	if o.font != nil {
		o.font.Dispose()
	}
}

// SetViewport updates the pixel-space projection after a resize
func (o *Overlay) SetViewport(width, height int) {
	o.viewportW = width
	o.viewportH = height
	if o.font != nil {
		o.font.SetViewport(width, height)
	}
}
