package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// backgroundColor is a dark neutral so the model reads well.
var backgroundColor = rl.NewColor(24, 26, 32, 255)

// Run opens the window and drives the main loop. setup runs once after the
// window (and GL context) exists — model loading and mesh generation need
// that — and returns the per-frame update and draw callbacks plus a shutdown
// hook that runs before the window closes, so pending frame work can be
// withdrawn while the render surface is still alive.
func Run(width, height int32, title string, setup func() (update, draw, shutdown func())) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC resets the view, it does not quit; close via window button
	rl.SetTargetFPS(60)

	update, draw, shutdown := setup()
	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		draw()
		rl.EndDrawing()
	}
	if shutdown != nil {
		shutdown()
	}
}
