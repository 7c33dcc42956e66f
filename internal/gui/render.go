package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/spaceengine/internal/config"
	"github.com/san-kum/spaceengine/internal/physics"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.inMenu {
		a.drawMenu()
	} else {
		a.drawSim()
		a.DrawHUD()
	}

	rl.EndDrawing()
}

func (a *App) drawSim() {
	rl.BeginMode3D(a.raylibCamera())

	rl.DrawGrid(a.gridSlices, a.gridStep)

	bodies := a.sim.Bodies()
	if a.showTrails {
		for i, trail := range a.trails {
			col := rl.ColorAlpha(bodyColor(bodies[i].Color()), 0.5)
			for j := 1; j < len(trail); j++ {
				rl.DrawLine3D(trail[j-1], trail[j], col)
			}
		}
	}

	rings, slices := int32(a.cfg.Window.SphereRings), int32(a.cfg.Window.SphereSlices)
	for _, b := range bodies {
		rl.DrawSphereEx(toRl(b.RenderPosition(a.cfg.Physics.Scale)), a.drawRadius(b), rings, slices, bodyColor(b.Color()))
	}

	rl.EndMode3D()
}

// drawRadius is the render radius, widened for bodies that would shrink
// below a few pixels at the current eye distance.
func (a *App) drawRadius(b *physics.Body) float32 {
	scale := a.cfg.Physics.Scale
	r := b.RenderRadius(scale)
	floor := a.cam.Eye().Distance(b.RenderPosition(scale)) * minAngularSize
	return float32(max(r, floor))
}

func bodyColor(c colorful.Color) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, 255)
}

func (a *App) DrawHUD() {
	rl.DrawFPS(10, 10)

	eye := a.cam.Eye()
	rl.DrawText(fmt.Sprintf("x: %.2f  y: %.2f  z: %.2f", eye.X, eye.Y, eye.Z), 10, 36, 20, ColSelect)
	rl.DrawText(fmt.Sprintf("%s  t = %.1f d  speed %.2f (%s)", a.scene, a.sim.Time()/86400, a.cam.Speed(), a.cam.Mode()), 10, 60, 16, ColText)

	status, col := "RUNNING", ColSelect
	if !a.running {
		status, col = "PAUSED", ColTextDim
	}
	w := int32(a.cfg.Window.Width)
	h := int32(a.cfg.Window.Height)
	rl.DrawText(status, w-rl.MeasureText(status, 16)-10, 10, 16, col)

	y := int32(84)
	for _, b := range a.sim.Bodies() {
		rl.DrawCircle(18, y+7, 5, bodyColor(b.Color()))
		rl.DrawText(b.Name(), 30, y, 14, ColText)
		y += 18
	}

	if a.stepErrors > 0 {
		rl.DrawText(fmt.Sprintf("%d step errors: %s", a.stepErrors, a.lastErr), 10, h-60, 14, ColError)
	}

	a.DrawTelemetry()

	hint := "[WASD] MOVE  [SPACE/SHIFT] UP/DOWN  [CTRL/ALT] FAST/SLOW  [P] PAUSE  [R] RESET  [T] TRAILS  [ESC] "
	if a.menu {
		hint += "MENU"
	} else {
		hint += "QUIT"
	}
	rl.DrawText(hint, 10, h-20, 10, ColTextDim)
}

// DrawTelemetry plots total energy over the recent frames.
func (a *App) DrawTelemetry() {
	if len(a.telemetry) < 2 {
		return
	}

	h := int32(a.cfg.Window.Height)
	rectX, rectY := int32(10), h-140
	width, height := int32(300), int32(60)

	minVal, maxVal := a.telemetry[0], a.telemetry[0]
	for _, v := range a.telemetry {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.telemetry))
	for i, val := range a.telemetry {
		px := float32(rectX) + (float32(i)/float32(len(a.telemetry)))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	rl.DrawText(fmt.Sprintf("E: %.3e J", a.telemetry[len(a.telemetry)-1]), rectX+width+10, rectY+height-10, 14, ColText)
}

func (a *App) energy() float64 {
	return physics.TotalEnergy(a.sim.Bodies(), a.cfg.Physics.G)
}

func (a *App) drawMenu() {
	rl.DrawText("Space engine", 50, 50, 40, ColSelect)
	rl.DrawText("Select scene", 50, 100, 16, ColTextDim)

	y := int32(160)
	for i, name := range a.scenes {
		desc := config.Scenes[name].Description
		if i == a.selected {
			rl.DrawText(fmt.Sprintf("> %-8s %s", name, desc), 50, y, 20, ColSelect)
		} else {
			rl.DrawText(fmt.Sprintf("  %-8s %s", name, desc), 50, y, 20, ColText)
		}
		y += 28
	}

	h := int32(a.cfg.Window.Height)
	rl.DrawText("ARROWS: NAVIGATE  ENTER: SELECT  Q: QUIT", 50, h-30, 14, ColTextDim)
}
