// Package focus tweens the camera between view poses. The animator is
// advanced by an explicit Tick(now) from the host's frame driver, so it has
// no timers or goroutines of its own and is testable with synthetic
// timestamps.
package focus

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is a camera position plus the point it orbits around.
type Pose struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// Camera is the live camera handle supplied by the host rendering
// environment. While a transition is active the animator is the only writer
// of the pose; the instant it finishes, user orbit controls regain authority.
type Camera interface {
	Pose() Pose
	SetPose(Pose)
}

// Duration of one focus transition.
const Duration = 600 * time.Millisecond

type request struct {
	center mgl32.Vec3
	reset  bool
}

// Animator runs at most one pose transition at a time. A new request
// supersedes a running one, starting from the current mid-flight pose rather
// than snapping back, so interruptions never cause a visible jump.
type Animator struct {
	cam  Camera
	home Pose

	active  bool
	start   Pose
	end     Pose
	startAt time.Time

	// request held while no camera handle exists yet; applied on the first
	// Tick after one is attached.
	pending *request
}

// NewAnimator returns an idle animator. home is the immutable default pose
// captured at startup, restored by Reset.
func NewAnimator(home Pose) *Animator {
	return &Animator{home: home}
}

// SetCamera attaches the live camera handle. Requests made before a handle
// exists are deferred silently, not dropped.
func (a *Animator) SetCamera(c Camera) {
	a.cam = c
}

// HomePose returns the default pose.
func (a *Animator) HomePose() Pose {
	return a.home
}

// FocusOn starts a transition that recenters the orbit target on center.
// The camera keeps its current distance and angle offset from the previous
// target, sliding over to look at the new center instead of snapping to a
// fixed framing, so the user's chosen viewing angle survives reselection.
// Calling it for the already-focused center still runs a full transition.
func (a *Animator) FocusOn(center mgl32.Vec3, now time.Time) {
	if a.cam == nil {
		a.pending = &request{center: center}
		return
	}
	cur := a.poseNow(now)
	offset := cur.Position.Sub(cur.Target)
	a.begin(cur, Pose{Position: center.Add(offset), Target: center}, now)
}

// Reset starts a transition back to the default pose.
func (a *Animator) Reset(now time.Time) {
	if a.cam == nil {
		a.pending = &request{reset: true}
		return
	}
	a.begin(a.poseNow(now), a.home, now)
}

// Cancel withdraws any active or pending transition without touching the
// camera. Call on teardown so no tick operates on a stale camera handle.
func (a *Animator) Cancel() {
	a.active = false
	a.pending = nil
}

// Active reports whether a transition is in flight or pending.
func (a *Animator) Active() bool {
	return a.active || a.pending != nil
}

// Tick advances the transition one frame and reports whether the animator
// wrote the camera pose. The host must keep user camera controls disabled
// for any frame where Tick returns true. Without a camera handle Tick is a
// no-op.
func (a *Animator) Tick(now time.Time) bool {
	if a.cam == nil {
		return false
	}
	if a.pending != nil {
		r := *a.pending
		a.pending = nil
		if r.reset {
			a.Reset(now)
		} else {
			a.FocusOn(r.center, now)
		}
	}
	if !a.active {
		return false
	}
	a.cam.SetPose(a.poseAt(now))
	if now.Sub(a.startAt) >= Duration {
		a.active = false
	}
	return true
}

func (a *Animator) begin(start, end Pose, now time.Time) {
	a.pending = nil
	a.start = start
	a.end = end
	a.startAt = now
	a.active = true
}

// poseNow is the current live pose: the mid-flight interpolation when a
// transition is active, otherwise whatever the user controls left behind.
func (a *Animator) poseNow(now time.Time) Pose {
	if a.active {
		return a.poseAt(now)
	}
	return a.cam.Pose()
}

func (a *Animator) poseAt(now time.Time) Pose {
	t := float32(now.Sub(a.startAt)) / float32(Duration)
	if t <= 0 {
		return a.start
	}
	if t >= 1 {
		return a.end
	}
	e := easeInOutCubic(t)
	return Pose{
		Position: lerp(a.start.Position, a.end.Position, e),
		Target:   lerp(a.start.Target, a.end.Target, e),
	}
}

// easeInOutCubic is the symmetric cubic ease: 4t³ below the midpoint,
// 1-(-2t+2)³/2 above it.
func easeInOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math32.Pow(-2*t+2, 3)/2
}

func lerp(a, b mgl32.Vec3, f float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(f))
}
