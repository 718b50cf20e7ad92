package main

import (
	"errors"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/joeshenouda/mouth-explorer/internal/anatomy"
	"github.com/joeshenouda/mouth-explorer/internal/assets"
	"github.com/joeshenouda/mouth-explorer/internal/config"
	"github.com/joeshenouda/mouth-explorer/internal/explore"
	"github.com/joeshenouda/mouth-explorer/internal/focus"
	"github.com/joeshenouda/mouth-explorer/internal/graphics"
	"github.com/joeshenouda/mouth-explorer/internal/hud"
	"github.com/joeshenouda/mouth-explorer/internal/logger"
	"github.com/joeshenouda/mouth-explorer/internal/pick"
	"github.com/joeshenouda/mouth-explorer/internal/scene"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(logger.Options{
		Path:       cfg.Log.Path,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Debug:      cfg.Log.Debug,
	})
	defer log.Sync()

	table, err := anatomy.Load(cfg.AnatomyPath)
	if err != nil {
		log.Warnw("anatomy table unavailable, using built-in", "path", cfg.AnatomyPath, "error", err)
		table = anatomy.Builtin()
	}

	home := focus.Pose{
		Position: mgl32.Vec3(cfg.Camera.Position),
		Target:   mgl32.Vec3(cfg.Camera.Target),
	}

	graphics.Run(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title,
		func() (update, draw, shutdown func()) {
			reg := loadRegistry(cfg, table, log)
			view := scene.New(reg, home)
			view.GridVisible = cfg.Grid

			anim := focus.NewAnimator(home)
			anim.SetCamera(view)

			overlay := hud.New()
			overlay.ShowFPS = cfg.Diagnostics

			ex := explore.New(anim, explore.Events{
				OnSelect: func(s pick.Surface, screen mgl32.Vec2) {
					name := explore.DisplayName(s)
					entry := table.Lookup(name)
					overlay.ShowEntry(entry.Title, entry.Description)
					log.Infow("selected", "id", s.ID(), "name", name, "screen", screen)
				},
				OnMiss: func() {
					overlay.Hide()
					log.Debugw("selection cleared")
				},
				OnHover: func(name string, screen mgl32.Vec2) {
					overlay.SetHover(name, screen)
				},
				OnHoverLeave:       overlay.ClearHover,
				OnFirstInteraction: overlay.DismissIntro,
			})
			ex.SetScene(view)
			ex.SetDiagnostics(cfg.Diagnostics)

			update = func() {
				now := time.Now()
				ex.SetViewport(mgl32.Vec2{0, 0},
					mgl32.Vec2{float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())})

				mouse := rl.GetMousePosition()
				if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
					ex.PointerDown(mgl32.Vec2{mouse.X, mouse.Y}, now)
				}
				if rl.IsCursorOnScreen() {
					ex.PointerMove(mgl32.Vec2{mouse.X, mouse.Y})
				} else {
					ex.PointerLeave()
				}

				if rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyEscape) {
					ex.Reset(now)
					overlay.Hide()
				}
				if rl.IsKeyPressed(rl.KeyF1) {
					on := !ex.Diagnostics()
					ex.SetDiagnostics(on)
					overlay.ShowFPS = on
				}
				if rl.IsKeyPressed(rl.KeyG) {
					view.GridVisible = !view.GridVisible
				}

				animating := ex.Tick(now)
				view.Update(animating)
			}
			draw = func() {
				view.Draw()
				overlay.Draw()
			}
			shutdown = func() {
				ex.Close()
				view.Registry.Unload()
			}
			return update, draw, shutdown
		})
}

// loadRegistry resolves the mouth model, fetching it on first run when a URL
// is configured, and falls back to the built-in placeholder arch when no
// model can be had.
func loadRegistry(cfg config.Config, table *anatomy.Table, log *zap.SugaredLogger) *scene.Registry {
	path, err := assets.EnsureModel(cfg.Model.Path, cfg.Model.URL)
	if err != nil {
		if !errors.Is(err, assets.ErrNoModel) {
			log.Warnw("model fetch failed", "url", cfg.Model.URL, "error", err)
		}
		log.Infow("using placeholder model")
		return scene.Placeholder(log)
	}
	reg, err := scene.Load(path, table.Surfaces, log)
	if err != nil {
		log.Warnw("model load failed, using placeholder", "path", path, "error", err)
		return scene.Placeholder(log)
	}
	return reg
}
