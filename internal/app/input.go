package app

import rl "github.com/gen2brain/raylib-go/raylib"

// QuitRequested polls the window: true once the window was closed or
// Escape is held.
func (d *raylibDisplay) QuitRequested() bool {
	return rl.WindowShouldClose() || rl.IsKeyDown(rl.KeyEscape)
}
