// Package scene is the raylib side of the viewer: it holds the camera and
// the registry of pickable surfaces, draws the 3D view, answers the picking
// engine's ray casts, and runs the user orbit/pan/zoom controls whenever the
// focus animator is not driving the camera.
package scene

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/joeshenouda/mouth-explorer/internal/focus"
	"github.com/joeshenouda/mouth-explorer/internal/pick"
)

const (
	fovY          = 45
	orbitDegPerPx = 0.35
	panPerPx      = 0.002
	zoomPerNotch  = 0.1
	minZoomDist   = 0.5
)

// Scene owns the live camera and draws the registry. It implements
// pick.Scene (ray casting in NDC) and focus.Camera (the live pose handle).
type Scene struct {
	Camera      rl.Camera3D
	Registry    *Registry
	GridVisible bool
}

// New returns a scene with a perspective camera at the given default pose,
// Y up. Grid is visible by default.
func New(reg *Registry, home focus.Pose) *Scene {
	s := &Scene{Registry: reg, GridVisible: true}
	s.Camera.Position = toRl(home.Position)
	s.Camera.Target = toRl(home.Target)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = fovY
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// Pose returns the live camera pose.
func (s *Scene) Pose() focus.Pose {
	return focus.Pose{Position: toMgl(s.Camera.Position), Target: toMgl(s.Camera.Target)}
}

// SetPose writes the live camera pose. Called by the focus animator while a
// transition is active; nothing else may write the pose in those frames.
func (s *Scene) SetPose(p focus.Pose) {
	s.Camera.Position = toRl(p.Position)
	s.Camera.Target = toRl(p.Target)
}

// Cast builds a world ray from the normalized device coordinates through the
// camera and intersects it with every pickable surface, nearest first. The
// grid and other decoration are not surfaces and can never be hit.
func (s *Scene) Cast(ndc mgl32.Vec2) []pick.Hit {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	screen := rl.NewVector2((ndc.X()+1)/2*w, (1-ndc.Y())/2*h)
	ray := rl.GetScreenToWorldRay(screen, s.Camera)

	var hits []pick.Hit
	for _, sf := range s.Registry.Surfaces() {
		// box test first; the mesh test walks every triangle
		if !rl.GetRayCollisionBox(ray, sf.bounds).Hit {
			continue
		}
		col := rl.GetRayCollisionMesh(ray, sf.mesh, sf.transform)
		if !col.Hit {
			continue
		}
		hits = append(hits, pick.Hit{Surface: sf, Distance: col.Distance})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// Update runs the user camera controls for one frame: left-drag orbits the
// target, right-drag pans, the wheel zooms. It must not run in frames where
// the focus animator wrote the pose, so the two never fight over the camera.
func (s *Scene) Update(animating bool) {
	if animating {
		return
	}
	del := rl.GetMouseDelta()
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) && (del.X != 0 || del.Y != 0) {
		s.orbit(-del.X*orbitDegPerPx, -del.Y*orbitDegPerPx)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) && (del.X != 0 || del.Y != 0) {
		s.pan(del.X, del.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.zoom(-wheel * zoomPerNotch)
	}
}

// orbit rotates the camera around the target by the given degrees,
// left/right around the up axis and up/down around the view-right axis,
// keeping the distance to the target.
func (s *Scene) orbit(degX, degY float32) {
	view := rl.Vector3Subtract(s.Camera.Position, s.Camera.Target)
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(s.Camera.Up, view))
	view = rl.Vector3RotateByAxisAngle(view, s.Camera.Up, degX*rl.Deg2rad)
	view = rl.Vector3RotateByAxisAngle(view, right, degY*rl.Deg2rad)
	s.Camera.Position = rl.Vector3Add(s.Camera.Target, view)
}

// pan shifts the camera and its target together in the view plane, scaled by
// the distance to the target so the motion feels constant on screen.
func (s *Scene) pan(delX, delY float32) {
	view := rl.Vector3Subtract(s.Camera.Target, s.Camera.Position)
	dist := rl.Vector3Length(view)
	forward := rl.Vector3Normalize(view)
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, s.Camera.Up))
	up := rl.Vector3CrossProduct(right, forward)

	shift := rl.Vector3Add(
		rl.Vector3Scale(right, -delX*panPerPx*dist),
		rl.Vector3Scale(up, delY*panPerPx*dist),
	)
	s.Camera.Position = rl.Vector3Add(s.Camera.Position, shift)
	s.Camera.Target = rl.Vector3Add(s.Camera.Target, shift)
}

// zoom moves along the view vector by pct of the current distance; positive
// moves away. Zooming in stops short of the target.
func (s *Scene) zoom(pct float32) {
	view := rl.Vector3Subtract(s.Camera.Position, s.Camera.Target)
	dist := rl.Vector3Length(view)
	if pct < 0 && dist*(1+pct) < minZoomDist {
		return
	}
	s.Camera.Position = rl.Vector3Add(s.Camera.Position, rl.Vector3Scale(view, pct))
}

// Draw renders the 3D view: reference grid, then every surface with its own
// appearance color, plus an outline box around the highlighted one.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawReferenceGrid()
	}
	for _, sf := range s.Registry.Surfaces() {
		mat := sf.ap.Material
		// the material may be shared between surfaces; the per-surface
		// color lives in the appearance and is applied just before the draw
		mat.Maps.Color = sf.ap.Color
		rl.DrawMesh(sf.mesh, mat, sf.transform)
		if sf.highlighted {
			rl.DrawBoundingBox(sf.bounds, HighlightColor)
		}
	}
	rl.EndMode3D()
}

const (
	gridExtent     = 6
	gridStep       = 1
	gridMinorAlpha = 40
	gridMajorAlpha = 90
)

// drawReferenceGrid draws a soft grid on the XZ plane under the model, with
// a brighter line every 5 steps.
func drawReferenceGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridStep {
		c := minor
		if x%5 == 0 {
			c = major
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridStep {
		c := minor
		if z%5 == 0 {
			c = major
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}
}

func toRl(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

func toMgl(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}
