package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
)

// HighlightColor is the diffuse tint applied to the selected surface.
var HighlightColor = rl.NewColor(255, 204, 64, 255)

// Appearance is a surface's drawable appearance: the raylib material plus
// the diffuse color it is currently drawn with. Loaded models share one
// Appearance per material slot; Shared marks a handle that must be cloned
// before its first highlight mutation so sibling surfaces keep their look.
type Appearance struct {
	Material rl.Material
	Color    rl.Color
	// Base is the color restored when a highlight is removed.
	Base   rl.Color
	Shared bool
}

// Surface is one pickable mesh of the model. It implements pick.Surface.
type Surface struct {
	id          string
	name        string
	mesh        rl.Mesh
	transform   rl.Matrix
	bounds      rl.BoundingBox
	ap          *Appearance
	highlighted bool
}

// ID returns the surface's per-session handle.
func (s *Surface) ID() string { return s.id }

// Name returns the display name, possibly empty.
func (s *Surface) Name() string { return s.name }

// Highlighted reports whether the highlight is currently applied.
func (s *Surface) Highlighted() bool { return s.highlighted }

// Center is the world-space bounding box center, the camera framing target.
func (s *Surface) Center() mgl32.Vec3 {
	return mgl32.Vec3{
		(s.bounds.Min.X + s.bounds.Max.X) / 2,
		(s.bounds.Min.Y + s.bounds.Max.Y) / 2,
		(s.bounds.Min.Z + s.bounds.Max.Z) / 2,
	}
}

// SetHighlight applies or removes the highlight tint. A shared appearance is
// cloned to a private copy before the first mutation; the clone happens once
// and is reused for the rest of the session.
func (s *Surface) SetHighlight(on bool) {
	if s.highlighted == on {
		return
	}
	s.highlighted = on
	if s.ap.Shared {
		private := &Appearance{}
		if err := copier.Copy(private, s.ap); err != nil {
			return
		}
		private.Shared = false
		s.ap = private
	}
	if on {
		s.ap.Color = HighlightColor
	} else {
		s.ap.Color = s.ap.Base
	}
}

// transformedBounds returns the mesh's AABB with the given transform applied
// to all eight corners.
func transformedBounds(mesh rl.Mesh, transform rl.Matrix) rl.BoundingBox {
	local := rl.GetMeshBoundingBox(mesh)
	corners := [8]rl.Vector3{
		{X: local.Min.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Max.Z},
	}
	out := rl.BoundingBox{}
	for i, c := range corners {
		w := rl.Vector3Transform(c, transform)
		if i == 0 {
			out.Min, out.Max = w, w
			continue
		}
		out.Min.X = min(out.Min.X, w.X)
		out.Min.Y = min(out.Min.Y, w.Y)
		out.Min.Z = min(out.Min.Z, w.Z)
		out.Max.X = max(out.Max.X, w.X)
		out.Max.Y = max(out.Max.Y, w.Y)
		out.Max.Z = max(out.Max.Z, w.Z)
	}
	return out
}
