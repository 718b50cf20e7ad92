package explore

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeshenouda/mouth-explorer/internal/focus"
	"github.com/joeshenouda/mouth-explorer/internal/pick"
)

// fakeSurface records highlight changes into a shared log so tests can check
// ordering across surfaces.
type fakeSurface struct {
	id          string
	name        string
	center      mgl32.Vec3
	highlighted bool
	log         *[]string
}

func (s *fakeSurface) ID() string         { return s.id }
func (s *fakeSurface) Name() string       { return s.name }
func (s *fakeSurface) Center() mgl32.Vec3 { return s.center }
func (s *fakeSurface) SetHighlight(on bool) {
	s.highlighted = on
	if s.log != nil {
		*s.log = append(*s.log, fmt.Sprintf("%s=%v", s.id, on))
	}
}

// hitScene reports the same hits for every ray.
type hitScene struct {
	hits []pick.Hit
}

func (f *hitScene) Cast(mgl32.Vec2) []pick.Hit { return f.hits }

type missScene struct{}

func (missScene) Cast(mgl32.Vec2) []pick.Hit { return nil }

// queueScene returns one queued response per cast, repeating the last.
type queueScene struct {
	responses [][]pick.Hit
	i         int
}

func (q *queueScene) Cast(mgl32.Vec2) []pick.Hit {
	r := q.responses[q.i]
	if q.i < len(q.responses)-1 {
		q.i++
	}
	return r
}

type fakeCamera struct {
	pose focus.Pose
}

func (c *fakeCamera) Pose() focus.Pose     { return c.pose }
func (c *fakeCamera) SetPose(p focus.Pose) { c.pose = p }

var home = focus.Pose{
	Position: mgl32.Vec3{0, 1, 6},
	Target:   mgl32.Vec3{0, 0, 0},
}

type fixture struct {
	ex  *Explorer
	cam *fakeCamera

	selected   []string
	misses     int
	hovers     []string
	leaves     int
	firstInter int
}

func newFixture() *fixture {
	f := &fixture{cam: &fakeCamera{pose: home}}
	anim := focus.NewAnimator(home)
	anim.SetCamera(f.cam)
	f.ex = New(anim, Events{
		OnSelect: func(s pick.Surface, _ mgl32.Vec2) {
			f.selected = append(f.selected, DisplayName(s))
		},
		OnMiss:             func() { f.misses++ },
		OnHover:            func(name string, _ mgl32.Vec2) { f.hovers = append(f.hovers, name) },
		OnHoverLeave:       func() { f.leaves++ },
		OnFirstInteraction: func() { f.firstInter++ },
	})
	f.ex.SetViewport(mgl32.Vec2{0, 0}, mgl32.Vec2{800, 600})
	return f
}

func TestSelectTransitionEndToEnd(t *testing.T) {
	f := newFixture()
	molar := &fakeSurface{id: "m1", name: "Molar", center: mgl32.Vec3{2, 0.5, -1}}
	f.ex.SetScene(&hitScene{hits: []pick.Hit{{Surface: molar, Distance: 3}}})

	t0 := time.Unix(0, 0)
	f.ex.PointerDown(mgl32.Vec2{100, 100}, t0)

	require.Equal(t, []string{"Molar"}, f.selected)
	sel := f.ex.Selection()
	assert.False(t, sel.Empty())
	assert.Equal(t, "Molar", sel.Name)
	assert.Equal(t, "m1", sel.ID)
	assert.True(t, molar.highlighted)

	// Camera transition runs to completion; the live pose lands exactly on
	// the end pose with the view offset preserved.
	for i := 1; i <= 6; i++ {
		f.ex.Tick(t0.Add(focus.Duration * time.Duration(i) / 6))
	}
	assert.Equal(t, molar.center, f.cam.pose.Target)
	wantPos := molar.center.Add(home.Position.Sub(home.Target))
	assert.Equal(t, wantPos, f.cam.pose.Position)
	assert.False(t, f.ex.Tick(t0.Add(2*focus.Duration)), "animator must relinquish the camera after completion")
}

func TestMissClearsSelection(t *testing.T) {
	f := newFixture()
	tooth := &fakeSurface{id: "t", name: "Incisor"}
	f.ex.SetScene(&hitScene{hits: []pick.Hit{{Surface: tooth, Distance: 1}}})
	f.ex.PointerDown(mgl32.Vec2{10, 10}, time.Unix(0, 0))
	require.False(t, f.ex.Selection().Empty())

	f.ex.SetScene(missScene{})
	f.ex.PointerDown(mgl32.Vec2{10, 10}, time.Unix(1, 0))
	assert.True(t, f.ex.Selection().Empty())
	assert.Equal(t, 1, f.misses)
	assert.False(t, tooth.highlighted)
}

func TestExclusiveHighlightOrdering(t *testing.T) {
	f := newFixture()
	var log []string
	a := &fakeSurface{id: "a", name: "A", log: &log}
	b := &fakeSurface{id: "b", name: "B", log: &log}

	f.ex.SetScene(&queueScene{responses: [][]pick.Hit{
		{{Surface: a, Distance: 1}},
		{{Surface: b, Distance: 1}},
	}})
	f.ex.PointerDown(mgl32.Vec2{5, 5}, time.Unix(0, 0))
	f.ex.PointerDown(mgl32.Vec2{5, 5}, time.Unix(1, 0))

	// The old highlight comes off before the new one goes on.
	assert.Equal(t, []string{"a=true", "a=false", "b=true"}, log)
	assert.False(t, a.highlighted)
	assert.True(t, b.highlighted)
}

func TestReselectionRestartsTransition(t *testing.T) {
	f := newFixture()
	s := &fakeSurface{id: "s", name: "Cuspid", center: mgl32.Vec3{1, 0, 0}}
	f.ex.SetScene(&hitScene{hits: []pick.Hit{{Surface: s, Distance: 1}}})

	t0 := time.Unix(0, 0)
	f.ex.PointerDown(mgl32.Vec2{5, 5}, t0)
	f.ex.Tick(t0.Add(focus.Duration))
	require.False(t, f.ex.Tick(t0.Add(focus.Duration+time.Millisecond)))

	// Selecting the selected surface again still yields a full transition.
	t1 := t0.Add(time.Second)
	f.ex.PointerDown(mgl32.Vec2{5, 5}, t1)
	assert.True(t, f.ex.Tick(t1.Add(focus.Duration/2)))
	assert.Equal(t, []string{"Cuspid", "Cuspid"}, f.selected)
}

func TestResetScenario(t *testing.T) {
	f := newFixture()
	molar := &fakeSurface{id: "m", name: "Molar", center: mgl32.Vec3{3, 1, 2}}
	f.ex.SetScene(&hitScene{hits: []pick.Hit{{Surface: molar, Distance: 1}}})

	t0 := time.Unix(0, 0)
	f.ex.PointerDown(mgl32.Vec2{5, 5}, t0)
	f.ex.Tick(t0.Add(focus.Duration))

	t1 := t0.Add(time.Second)
	f.ex.Reset(t1)
	assert.True(t, f.ex.Selection().Empty())
	assert.False(t, molar.highlighted)
	f.ex.Tick(t1.Add(focus.Duration))
	assert.Equal(t, home, f.cam.pose)
}

func TestStaleSurfaceClearedOnSceneSwap(t *testing.T) {
	f := newFixture()
	old := &fakeSurface{id: "old", name: "Old"}
	f.ex.SetScene(&hitScene{hits: []pick.Hit{{Surface: old, Distance: 1}}})
	f.ex.PointerDown(mgl32.Vec2{5, 5}, time.Unix(0, 0))
	require.False(t, f.ex.Selection().Empty())

	f.ex.SetScene(&hitScene{})
	assert.True(t, f.ex.Selection().Empty(), "reselection is required after a scene swap")
	assert.False(t, old.highlighted)
}

func TestHoverProbeDiagnosticsOnly(t *testing.T) {
	f := newFixture()
	s := &fakeSurface{id: "h", name: "Gingiva"}
	f.ex.SetScene(&hitScene{hits: []pick.Hit{{Surface: s, Distance: 1}}})

	f.ex.PointerMove(mgl32.Vec2{50, 50})
	assert.Empty(t, f.hovers, "probe is inert while diagnostics mode is off")

	f.ex.SetDiagnostics(true)
	f.ex.PointerMove(mgl32.Vec2{50, 50})
	assert.Equal(t, []string{"Gingiva"}, f.hovers)
	assert.True(t, f.ex.Selection().Empty(), "hover must not mutate the selection")

	// Leaving the render surface emits a single leave signal.
	f.ex.PointerMove(mgl32.Vec2{5000, 50})
	f.ex.PointerMove(mgl32.Vec2{5000, 50})
	assert.Equal(t, 1, f.leaves)
}

func TestHoverLeaveOnMiss(t *testing.T) {
	f := newFixture()
	f.ex.SetDiagnostics(true)
	s := &fakeSurface{id: "h", name: "Molar"}
	f.ex.SetScene(&hitScene{hits: []pick.Hit{{Surface: s, Distance: 1}}})
	f.ex.PointerMove(mgl32.Vec2{50, 50})

	f.ex.SetScene(missScene{})
	f.ex.PointerMove(mgl32.Vec2{50, 50})
	assert.Equal(t, 1, f.leaves)

	f.ex.PointerLeave()
	assert.Equal(t, 1, f.leaves, "no leave signal while nothing is hovered")
}

func TestUnnamedSurfaceFallback(t *testing.T) {
	f := newFixture()
	anon := &fakeSurface{id: "x"}
	f.ex.SetScene(&hitScene{hits: []pick.Hit{{Surface: anon, Distance: 1}}})
	f.ex.PointerDown(mgl32.Vec2{5, 5}, time.Unix(0, 0))
	assert.Equal(t, UnnamedSurface, f.ex.Selection().Name)
}

func TestFirstInteractionFiresOnce(t *testing.T) {
	f := newFixture()
	f.ex.SetScene(missScene{})
	f.ex.PointerDown(mgl32.Vec2{1, 1}, time.Unix(0, 0))
	f.ex.PointerDown(mgl32.Vec2{2, 2}, time.Unix(1, 0))
	assert.Equal(t, 1, f.firstInter)
}

func TestPickWithoutSceneIsMiss(t *testing.T) {
	f := newFixture()
	f.ex.PointerDown(mgl32.Vec2{1, 1}, time.Unix(0, 0))
	assert.True(t, f.ex.Selection().Empty())
	assert.Equal(t, 1, f.misses)
}
