package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles/engine"
)

var (
	colorBackground = color.RGBA{20, 25, 35, 255}
	colorPanel      = color.RGBA{45, 52, 70, 255}
	colorWall       = color.RGBA{65, 75, 95, 255}
	colorAccent     = color.RGBA{100, 200, 255, 255}
	colorDanger     = color.RGBA{255, 87, 87, 160}
	colorGuide      = color.RGBA{255, 255, 255, 110}
	colorShade      = color.RGBA{0, 0, 0, 170}
)

// Draw renders the session snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	eng := a.session.Engine()
	cfg := eng.Config()
	snap := a.session.Snapshot()
	r := float32(cfg.Diameter / 2)

	screen.Fill(colorBackground)
	w, h := float32(cfg.Width), float32(cfg.Height)
	vector.DrawFilledRect(screen, 0, 0, w, float32(cfg.Ceiling), colorPanel, false)
	vector.DrawFilledRect(screen, 0, 0, float32(cfg.WallMargin), h, colorWall, false)
	vector.DrawFilledRect(screen, w-float32(cfg.WallMargin), 0, float32(cfg.WallMargin), h, colorWall, false)
	vector.StrokeLine(screen, float32(cfg.WallMargin), float32(cfg.OverflowY), w-float32(cfg.WallMargin), float32(cfg.OverflowY), 1, colorDanger, false)

	running := !snap.Cleared && !snap.Overflowed
	if a.showGuide && running && !snap.InFlight {
		a.drawGuide(screen, r)
	}

	for _, b := range snap.Bubbles {
		drawBubble(screen, b.Pos, r, b.Color)
	}
	if snap.InFlight {
		drawBubble(screen, snap.Projectile.Pos, r, snap.Projectile.Color)
	}

	// Launcher barrel, loaded bubble and preview
	l := eng.Launcher()
	if d := a.aim.Sub(l); d.Len() > 0 && d.Y < 0 {
		tip := l.Add(d.Scale(cfg.Diameter * 1.5 / d.Len()))
		vector.StrokeLine(screen, float32(l.X), float32(l.Y), float32(tip.X), float32(tip.Y), 4, colorAccent, true)
	}
	if !snap.InFlight {
		drawBubble(screen, l, r, snap.Current)
	}
	p := eng.Preview()
	drawBubble(screen, p, r*0.7, snap.Next)
	ebitenutil.DebugPrintAt(screen, "NEXT", int(p.X)-12, int(p.Y)+int(r))

	a.drawPopups(screen)
	a.drawHUD(screen, snap)

	switch {
	case snap.Overflowed:
		a.drawBanner(screen, "GAME OVER", fmt.Sprintf("Final score %d - click to play again", snap.Score))
	case snap.Cleared:
		a.drawBanner(screen, fmt.Sprintf("LEVEL %d CLEARED", snap.Level), "Click for the next level")
	case a.paused:
		a.drawBanner(screen, "PAUSED", "Press P to resume")
	}
}

func drawBubble(screen *ebiten.Image, at engine.Vec, r float32, c engine.Color) {
	fill := BubbleColor(c)
	vector.DrawFilledCircle(screen, float32(at.X), float32(at.Y), r-1, fill, true)
	vector.StrokeCircle(screen, float32(at.X), float32(at.Y), r-1, 1.5, color.RGBA{255, 255, 255, 90}, true)
	vector.DrawFilledCircle(screen, float32(at.X-float64(r)/3), float32(at.Y-float64(r)/3), r/4, color.RGBA{255, 255, 255, 120}, true)
}

func (a *App) drawGuide(screen *ebiten.Image, r float32) {
	pts := a.session.Trajectory(a.aim)
	for i, pt := range pts {
		if i%3 != 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pt.X), float32(pt.Y), 2, colorGuide, true)
	}
	if cell, ok := a.session.Landing(a.aim); ok {
		at := a.session.Engine().Geometry().ToPosition(cell)
		c := BubbleColor(a.session.State().Current.Color)
		vector.StrokeCircle(screen, float32(at.X), float32(at.Y), r-1, 2, c, true)
	}
}

func (a *App) drawPopups(screen *ebiten.Image) {
	for _, p := range a.session.Popups() {
		y := p.At.Y - float64(p.Age)*a.display.PopupRise
		label := fmt.Sprintf("+%d", p.Points)
		ebitenutil.DebugPrintAt(screen, label, int(p.At.X)-len(label)*3, int(y))
	}
}

func (a *App) drawHUD(screen *ebiten.Image, snap engine.Snapshot) {
	cfg := a.session.Engine().Config()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Score), 30, 20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d", snap.Level), 30, 40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BUBBLES %d", snap.Remaining), 200, 20)

	// Progress bar
	bx, by, bw, bh := float32(cfg.Width)-250, float32(25), float32(200), float32(12)
	vector.DrawFilledRect(screen, bx, by, bw, bh, colorWall, false)
	vector.DrawFilledRect(screen, bx, by, bw*float32(snap.Progress), bh, colorAccent, false)
	ebitenutil.DebugPrintAt(screen, "PROGRESS", int(bx), int(by+bh)+4)
	ebitenutil.DebugPrintAt(screen, "click: fire  G: guide  P: pause  R: restart", 200, 40)
}

func (a *App) drawBanner(screen *ebiten.Image, title, hint string) {
	cfg := a.session.Engine().Config()
	w := float32(cfg.Width)
	cy := float32(cfg.Height) / 2
	vector.DrawFilledRect(screen, 0, cy-40, w, 80, colorShade, false)
	ebitenutil.DebugPrintAt(screen, title, int(w)/2-len(title)*3, int(cy)-20)
	ebitenutil.DebugPrintAt(screen, hint, int(w)/2-len(hint)*3, int(cy)+4)
}
