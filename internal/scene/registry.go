package scene

import (
	"fmt"
	"unsafe"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry holds the loaded scene graph root and exposes its pickable
// surfaces. The explorer core only reads it; loading, swapping, and
// unloading are the host application's business.
type Registry struct {
	model     rl.Model
	ownsModel bool
	surfaces  []*Surface
	log       *zap.SugaredLogger
}

// Surfaces returns all pickable surfaces.
func (r *Registry) Surfaces() []*Surface { return r.surfaces }

// Load reads a model file (GLB, OBJ, ...) and registers one pickable surface
// per mesh. names labels meshes in load order; meshes past the end of the
// list stay unnamed and the UI shows a generic label for them. Meshes that
// share a material slot share an appearance, which the highlight rule clones
// on first mutation. Must be called after the window exists.
func Load(path string, names []string, log *zap.SugaredLogger) (*Registry, error) {
	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		return nil, fmt.Errorf("scene: no meshes in %s", path)
	}
	r := &Registry{model: model, ownsModel: true, log: log}

	meshes := unsafe.Slice(model.Meshes, int(model.MeshCount))
	materials := unsafe.Slice(model.Materials, int(model.MaterialCount))
	meshMaterial := unsafe.Slice(model.MeshMaterial, int(model.MeshCount))

	// One appearance per material slot, marked shared when more than one
	// mesh uses the slot.
	uses := make([]int, len(materials))
	for _, mi := range meshMaterial {
		uses[mi]++
	}
	appearances := make([]*Appearance, len(materials))
	for i := range materials {
		appearances[i] = &Appearance{
			Material: materials[i],
			Color:    rl.White,
			Base:     rl.White,
			Shared:   uses[i] > 1,
		}
	}

	for i := range meshes {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		r.surfaces = append(r.surfaces, &Surface{
			id:        uuid.NewString(),
			name:      name,
			mesh:      meshes[i],
			transform: model.Transform,
			bounds:    transformedBounds(meshes[i], model.Transform),
			ap:        appearances[meshMaterial[i]],
		})
	}
	log.Infow("model loaded", "path", path, "surfaces", len(r.surfaces), "materials", len(materials))
	return r, nil
}

// Placeholder dimensions: a horseshoe arch of tooth boxes over a gum slab.
const (
	placeholderTeeth = 12
	archRadius       = float32(2.2)
	toothSize        = float32(0.45)
	toothHeight      = float32(0.8)
	gumThickness     = float32(0.35)
)

// Placeholder builds a procedural stand-in jaw so the viewer (and picking)
// stays usable without a model file. All teeth share one enamel appearance,
// exercising the same clone-on-write path as a loaded model. Must be called
// after the window exists (mesh generation uploads to the GPU).
func Placeholder(log *zap.SugaredLogger) *Registry {
	r := &Registry{log: log}

	enamel := &Appearance{
		Material: rl.LoadMaterialDefault(),
		Color:    rl.NewColor(240, 238, 228, 255),
		Base:     rl.NewColor(240, 238, 228, 255),
		Shared:   true,
	}
	gum := &Appearance{
		Material: rl.LoadMaterialDefault(),
		Color:    rl.NewColor(214, 120, 124, 255),
		Base:     rl.NewColor(214, 120, 124, 255),
		Shared:   false,
	}

	// Teeth on a half circle, named "Tooth 1".."Tooth N" left to right.
	for i := 0; i < placeholderTeeth; i++ {
		angle := rl.Pi * float32(i) / float32(placeholderTeeth-1)
		x := archRadius * math32.Cos(angle)
		z := -archRadius * math32.Sin(angle)
		mesh := rl.GenMeshCube(toothSize, toothHeight, toothSize)
		transform := rl.MatrixTranslate(x, toothHeight/2, z)
		r.surfaces = append(r.surfaces, &Surface{
			id:        uuid.NewString(),
			name:      fmt.Sprintf("Tooth %d", i+1),
			mesh:      mesh,
			transform: transform,
			bounds:    transformedBounds(mesh, transform),
			ap:        enamel,
		})
	}

	gumMesh := rl.GenMeshCube(2*archRadius+toothSize, gumThickness, archRadius+toothSize)
	gumTransform := rl.MatrixTranslate(0, -gumThickness/2, -archRadius/2)
	r.surfaces = append(r.surfaces, &Surface{
		id:        uuid.NewString(),
		name:      "Gums",
		mesh:      gumMesh,
		transform: gumTransform,
		bounds:    transformedBounds(gumMesh, gumTransform),
		ap:        gum,
	})

	log.Infow("placeholder model built", "surfaces", len(r.surfaces))
	return r
}

// Unload releases GPU resources. The registry is unusable afterwards.
func (r *Registry) Unload() {
	if r.ownsModel {
		rl.UnloadModel(r.model)
		r.surfaces = nil
		return
	}
	for _, s := range r.surfaces {
		rl.UnloadMesh(&s.mesh)
	}
	r.surfaces = nil
}
