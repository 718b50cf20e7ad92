// Package explore owns the selection state machine and turns raw pointer
// input into picks, selection changes, camera focus requests, and outbound
// UI events. It never touches the renderer directly: the scene arrives as an
// injected pick.Scene capability and the camera through the focus animator.
package explore

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/joeshenouda/mouth-explorer/internal/focus"
	"github.com/joeshenouda/mouth-explorer/internal/pick"
)

// UnnamedSurface is the display label for surfaces with no name of their own.
const UnnamedSurface = "Unnamed structure"

// DisplayName returns the surface's name, or the generic label when absent.
func DisplayName(s pick.Surface) string {
	if s == nil {
		return ""
	}
	if n := s.Name(); n != "" {
		return n
	}
	return UnnamedSurface
}

// Selection is the current selection. It is exactly one of empty or
// populated; a populated selection always refers to a reachable node of the
// live scene graph (SetScene clears it on a swap).
type Selection struct {
	ID      string
	Name    string
	Surface pick.Surface
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return s.Surface == nil
}

// Events are the outbound callbacks consumed by the content drawer and the
// diagnostics panel. Nil callbacks are skipped. Screen positions are in
// client-area coordinates.
type Events struct {
	OnSelect           func(s pick.Surface, screen mgl32.Vec2)
	OnMiss             func()
	OnHover            func(name string, screen mgl32.Vec2)
	OnHoverLeave       func()
	OnFirstInteraction func()
}

// Explorer is the interaction controller: pointer-down events run the
// picking engine and drive the selection state machine, pointer-move events
// drive the hover probe when diagnostics mode is on, and Tick advances the
// camera transition. All methods are called from the single frame-driving
// goroutine; events are handled strictly in dispatch order.
type Explorer struct {
	events Events
	anim   *focus.Animator
	scene  pick.Scene

	// render surface rectangle within the client area, for pointer
	// normalization
	origin mgl32.Vec2
	size   mgl32.Vec2

	diagnostics bool
	sel         Selection
	hovering    bool
	interacted  bool
}

// New returns an explorer with an empty selection.
func New(anim *focus.Animator, events Events) *Explorer {
	return &Explorer{events: events, anim: anim}
}

// SetViewport sets the render surface origin and size used to normalize
// pointer coordinates. Call whenever the window geometry changes.
func (ex *Explorer) SetViewport(origin, size mgl32.Vec2) {
	ex.origin = origin
	ex.size = size
}

// SetDiagnostics enables or disables the hover probe. Disabling it also
// clears any active hover indicator.
func (ex *Explorer) SetDiagnostics(on bool) {
	ex.diagnostics = on
	if !on {
		ex.hoverLeave()
	}
}

// Diagnostics reports whether the hover probe is active.
func (ex *Explorer) Diagnostics() bool {
	return ex.diagnostics
}

// SetScene swaps the pickable scene root. Any current selection refers to
// the outgoing graph, so it is cleared; reselection is required after a
// swap. A nil scene makes every pick a miss.
func (ex *Explorer) SetScene(sc pick.Scene) {
	ex.clearSelection()
	ex.hoverLeave()
	ex.scene = sc
}

// Selection returns the current selection.
func (ex *Explorer) Selection() Selection {
	return ex.sel
}

// PointerDown handles a pointer-down event at the given client-area
// position. Mouse, touch, and stylus are treated identically. A hit replaces
// the selection, re-applies the highlight, and starts a camera transition;
// re-selecting the current surface intentionally re-runs the transition. A
// miss clears the selection.
func (ex *Explorer) PointerDown(pos mgl32.Vec2, now time.Time) {
	ex.firstInteraction()
	res := pick.Pick(ex.scene, pos.Sub(ex.origin), ex.size)
	if res.Surface == nil {
		ex.clearSelection()
		if ex.events.OnMiss != nil {
			ex.events.OnMiss()
		}
		return
	}
	ex.setSelected(res.Surface, pos, now)
}

// PointerMove feeds the hover probe. It runs a single ray (no offset
// fallback), reports hover or leave to the diagnostics layer, and never
// mutates the selection. It is a no-op unless diagnostics mode is on.
func (ex *Explorer) PointerMove(pos mgl32.Vec2) {
	if !ex.diagnostics {
		return
	}
	local := pos.Sub(ex.origin)
	if local.X() < 0 || local.Y() < 0 || local.X() > ex.size.X() || local.Y() > ex.size.Y() {
		ex.hoverLeave()
		return
	}
	res := pick.Probe(ex.scene, local, ex.size)
	if res.Surface == nil {
		ex.hoverLeave()
		return
	}
	ex.hovering = true
	if ex.events.OnHover != nil {
		ex.events.OnHover(DisplayName(res.Surface), pos)
	}
}

// PointerLeave reports the pointer exiting the render surface.
func (ex *Explorer) PointerLeave() {
	ex.hoverLeave()
}

// Reset clears the selection and returns the camera to the default pose.
func (ex *Explorer) Reset(now time.Time) {
	ex.clearSelection()
	ex.anim.Reset(now)
}

// Tick advances the camera transition and reports whether the animator wrote
// the pose this frame; user camera controls must stay off while it does.
func (ex *Explorer) Tick(now time.Time) bool {
	return ex.anim.Tick(now)
}

// Close withdraws any in-flight transition. Call on teardown, before the
// render surface goes away.
func (ex *Explorer) Close() {
	ex.anim.Cancel()
}

// setSelected is the only transition into Selected: the previous highlight
// is removed before the new one is applied, so at most one surface is ever
// highlighted.
func (ex *Explorer) setSelected(s pick.Surface, screen mgl32.Vec2, now time.Time) {
	if ex.sel.Surface != nil {
		ex.sel.Surface.SetHighlight(false)
	}
	s.SetHighlight(true)
	ex.sel = Selection{ID: s.ID(), Name: DisplayName(s), Surface: s}
	ex.anim.FocusOn(s.Center(), now)
	if ex.events.OnSelect != nil {
		ex.events.OnSelect(s, screen)
	}
}

func (ex *Explorer) clearSelection() {
	if ex.sel.Surface != nil {
		ex.sel.Surface.SetHighlight(false)
	}
	ex.sel = Selection{}
}

func (ex *Explorer) hoverLeave() {
	if !ex.hovering {
		return
	}
	ex.hovering = false
	if ex.events.OnHoverLeave != nil {
		ex.events.OnHoverLeave()
	}
}

func (ex *Explorer) firstInteraction() {
	if ex.interacted {
		return
	}
	ex.interacted = true
	if ex.events.OnFirstInteraction != nil {
		ex.events.OnFirstInteraction()
	}
}
