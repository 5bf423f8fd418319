package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the viewer window.
type Window struct {
	Title      string
	Width      int32
	Height     int32
	TargetFPS  int32
	Background func() rl.Color // clear colour, asked every frame; nil = black
}

// DefaultWindow is a resizable 1280x800 window at 60 FPS.
func DefaultWindow(title string) Window {
	return Window{Title: title, Width: 1280, Height: 800, TargetFPS: 60}
}

// Run opens the window and runs the main loop. Each frame it calls update (input, animation),
// then clears the screen and calls draw. ESC is left to the console; close via the window button.
// onClose, when set, runs before the window is destroyed so GPU resources can be released.
func Run(w Window, update, draw, onClose func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable | rl.FlagVsyncHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(w.TargetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		bg := rl.Black
		if w.Background != nil {
			bg = w.Background()
		}
		rl.ClearBackground(bg)
		draw()
		rl.EndDrawing()
	}
	if onClose != nil {
		onClose()
	}
}
