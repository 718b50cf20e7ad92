// Package pick resolves 2D pointer positions to 3D surfaces by ray casting
// against an injected scene capability. It owns no scene state of its own,
// so it runs against the live raylib scene and against synthetic scenes in
// tests alike.
package pick

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Surface is one pickable unit of the scene graph (e.g. a single tooth mesh).
// The handle returned by ID is stable for the session; Name may be empty, in
// which case the UI falls back to a generic label.
type Surface interface {
	ID() string
	Name() string
	// Center is the world-space center of the surface's bounding volume,
	// used as the camera framing target.
	Center() mgl32.Vec3
	// SetHighlight mutates the surface's appearance slot. The scene owner
	// must clone a shared appearance before the first mutation.
	SetHighlight(on bool)
}

// Hit is a single ray/surface intersection. Distance is measured along the
// ray so overlapping surfaces resolve to the nearest one.
type Hit struct {
	Surface  Surface
	Distance float32
}

// Scene is the injected picking capability: cast a ray, given in normalized
// device coordinates, and return intersections with pickable surfaces
// ordered nearest first. Non-pickable nodes (backdrop, grid) are never
// reported.
type Scene interface {
	Cast(ndc mgl32.Vec2) []Hit
}

// Result of a pick or probe. Surface is nil on a miss. Screen is the pointer
// position the result was produced for, in render-surface coordinates.
type Result struct {
	Surface Surface
	Screen  mgl32.Vec2
}

// Offset sample radii in device-independent pixels. Fine anatomical geometry
// can be only a few pixels wide, so a single ray frequently misses the
// intended surface; the extra samples catch near-misses around the pointer.
const (
	axisRadius = 6
	diagRadius = 8
)

// sampleOffsets are tried strictly in order: the exact pointer first, then
// axis-aligned offsets, then larger diagonal ones. The first offset that
// yields any hit wins, which keeps picking deterministic and biased toward
// the user's literal tap position.
var sampleOffsets = [9]mgl32.Vec2{
	{0, 0},
	{axisRadius, 0}, {-axisRadius, 0}, {0, axisRadius}, {0, -axisRadius},
	{diagComp, diagComp}, {diagComp, -diagComp}, {-diagComp, diagComp}, {-diagComp, -diagComp},
}

var diagComp = diagRadius * math32.Sqrt(0.5)

// ToNDC maps a render-surface position to normalized device coordinates in
// [-1, 1], Y up.
func ToNDC(pos, size mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		2*pos.X()/size.X() - 1,
		1 - 2*pos.Y()/size.Y(),
	}
}

// Pick resolves a pointer-down position to the surface under it, trying each
// sample offset in order and stopping at the first one that intersects
// anything. Among intersections at one offset the nearest along the ray is
// chosen. A nil scene (model not yet loaded) or degenerate size is a miss,
// not an error.
func Pick(sc Scene, pos, size mgl32.Vec2) Result {
	res := Result{Screen: pos}
	if sc == nil || size.X() <= 0 || size.Y() <= 0 {
		return res
	}
	for _, off := range sampleOffsets {
		hits := sc.Cast(ToNDC(pos.Add(off), size))
		if len(hits) == 0 {
			continue
		}
		res.Surface = nearest(hits).Surface
		return res
	}
	return res
}

// Probe is the hover variant of Pick: a single ray at the exact pointer
// position, no offset fallback. Pointer movement is continuous, so a minor
// miss self-corrects on the next sample.
func Probe(sc Scene, pos, size mgl32.Vec2) Result {
	res := Result{Screen: pos}
	if sc == nil || size.X() <= 0 || size.Y() <= 0 {
		return res
	}
	if hits := sc.Cast(ToNDC(pos, size)); len(hits) > 0 {
		res.Surface = nearest(hits).Surface
	}
	return res
}

func nearest(hits []Hit) Hit {
	best := hits[0]
	for _, h := range hits[1:] {
		if h.Distance < best.Distance {
			best = h
		}
	}
	return best
}
