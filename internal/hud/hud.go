// Package hud draws the 2D overlay: the content drawer for the current
// selection, the diagnostics hover indicator, and the FPS counter. It is
// display-only; all state arrives through the explorer's outbound events.
package hud

import (
	"fmt"
	"runtime"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	drawerWidth    = 320
	drawerPadding  = 16
	titleFontSize  = 24
	bodyFontSize   = 18
	bodyLineHeight = bodyFontSize + 6
	hoverFontSize  = 16
	hoverOffsetY   = 18
	fpsFontSize    = 18
	fpsPadding     = 10

	// memStats is sampled every memSampleFrames frames; reading it each
	// frame is needless work.
	memSampleFrames = 30
)

var (
	panelColor = rl.NewColor(16, 18, 24, 230)
	titleColor = rl.NewColor(255, 204, 64, 255)
	bodyColor  = rl.NewColor(220, 220, 220, 255)
	hintColor  = rl.NewColor(160, 160, 160, 255)
	hoverColor = rl.NewColor(120, 200, 255, 255)
)

// HUD holds the overlay state. All of it is driven by explorer events; the
// HUD itself never picks or selects anything.
type HUD struct {
	ShowFPS bool

	drawerOpen bool
	title      string
	body       []string // pre-wrapped lines

	hoverActive bool
	hoverText   string
	hoverPos    mgl32.Vec2

	introVisible bool

	frame     int
	heapAlloc uint64
}

// New returns a HUD showing the intro hint until the first interaction.
func New() *HUD {
	return &HUD{introVisible: true}
}

// ShowEntry opens the drawer with the given title and description.
func (h *HUD) ShowEntry(title, description string) {
	h.drawerOpen = true
	h.title = title
	h.body = wrap(description, drawerWidth-2*drawerPadding, bodyFontSize)
}

// Hide closes the drawer.
func (h *HUD) Hide() {
	h.drawerOpen = false
}

// SetHover places the diagnostics hover indicator.
func (h *HUD) SetHover(text string, pos mgl32.Vec2) {
	h.hoverActive = true
	h.hoverText = text
	h.hoverPos = pos
}

// ClearHover removes the hover indicator.
func (h *HUD) ClearHover() {
	h.hoverActive = false
}

// DismissIntro hides the intro hint; wired to the first-interaction event.
func (h *HUD) DismissIntro() {
	h.introVisible = false
}

// Draw renders the overlay. Call after the 3D scene in the draw loop.
func (h *HUD) Draw() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	if h.introVisible {
		hint := "Click a structure to inspect it. Drag to orbit, scroll to zoom, ESC to reset."
		w := rl.MeasureText(hint, bodyFontSize)
		rl.DrawText(hint, (screenW-w)/2, screenH-2*bodyLineHeight, bodyFontSize, hintColor)
	}

	if h.drawerOpen {
		x := screenW - drawerWidth
		rl.DrawRectangle(x, 0, drawerWidth, screenH, panelColor)
		tx := x + drawerPadding
		y := int32(drawerPadding)
		rl.DrawText(h.title, tx, y, titleFontSize, titleColor)
		y += titleFontSize + drawerPadding
		for _, line := range h.body {
			rl.DrawText(line, tx, y, bodyFontSize, bodyColor)
			y += bodyLineHeight
		}
	}

	if h.hoverActive {
		label := h.hoverText
		x := int32(h.hoverPos.X())
		y := int32(h.hoverPos.Y()) - hoverOffsetY
		rl.DrawText(label, x+1, y+1, hoverFontSize, rl.Black)
		rl.DrawText(label, x, y, hoverFontSize, hoverColor)
	}

	if h.ShowFPS {
		if h.frame%memSampleFrames == 0 {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			h.heapAlloc = m.HeapAlloc
		}
		h.frame++

		right := screenW - fpsPadding
		if h.drawerOpen {
			right -= drawerWidth
		}
		text := fmt.Sprintf("FPS: %d", rl.GetFPS())
		rl.DrawText(text, right-rl.MeasureText(text, fpsFontSize), fpsPadding, fpsFontSize, rl.Green)
		text = fmt.Sprintf("Heap: %.1f MB", float64(h.heapAlloc)/(1024*1024))
		rl.DrawText(text, right-rl.MeasureText(text, fpsFontSize), fpsPadding+fpsFontSize+4, fpsFontSize, rl.Green)
	}
}

// wrap splits text into lines that fit maxWidth at the given font size.
func wrap(text string, maxWidth int32, fontSize int32) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		candidate := word
		if cur.Len() > 0 {
			candidate = cur.String() + " " + word
		}
		if rl.MeasureText(candidate, fontSize) > maxWidth && cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			continue
		}
		cur.Reset()
		cur.WriteString(candidate)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
