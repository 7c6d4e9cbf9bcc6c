package stressbuster

import (
	"fmt"

	"github.com/vovakirdan/stressbuster/internal/config"
	"github.com/vovakirdan/stressbuster/internal/core"
)

// On-screen messages.
const (
	MsgWaiting  = "Press SPACE to play"
	MsgGameOver = "G A M E  O V E R"
	MsgRestart  = "Press SPACE to restart"
)

// Animation periods, in ticks.
const (
	legFrameTicks  = 8
	wingFrameTicks = 12
)

var (
	hudStyle     = core.TextStyle{Size: 12, Color: core.ColorText, Align: core.AlignRight}
	bestStyle    = core.TextStyle{Size: 12, Color: core.ColorAccent, Align: core.AlignRight}
	titleStyle   = core.TextStyle{Size: 16, Color: core.ColorText, Align: core.AlignCenter}
	messageStyle = core.TextStyle{Size: 12, Color: core.ColorText, Align: core.AlignCenter}
)

// Render draws a snapshot onto dst in world units. It reads nothing but its
// arguments, so any surface of the viewport's logical size can be used.
func Render(snap Snapshot, cfg *config.GameConfig, dst core.Surface) {
	w, h := cfg.Viewport.Width, cfg.Viewport.Height
	dst.FillRect(0, 0, w, h, core.ColorBackground)

	for _, c := range snap.Clouds {
		drawCloud(dst, c)
	}
	drawGround(dst, cfg.Viewport, snap.GroundX)
	for _, o := range snap.Obstacles {
		switch o.Kind {
		case KindGround:
			drawCactus(dst, o)
		case KindAirborne:
			drawPtero(dst, o, snap.Tick)
		}
	}
	drawPlayer(dst, snap, cfg.Player)
	drawHUD(dst, snap, w)

	switch snap.Phase {
	case PhaseWaiting:
		dst.DrawText(w/2, h/2, MsgWaiting, titleStyle)
	case PhaseGameOver:
		dst.DrawText(w/2, h/2, MsgGameOver, titleStyle)
		dst.DrawText(w/2, h/2+20, MsgRestart, messageStyle)
	}
}

func drawHUD(dst core.Surface, snap Snapshot, w float64) {
	if snap.HighScore > 0 {
		dst.DrawText(w-10, 25, fmt.Sprintf("HI %05d", snap.HighScore), hudStyle)
	}
	style := hudStyle
	if snap.Phase == PhasePlaying && snap.Score > 0 && snap.Score == snap.HighScore {
		style = bestStyle
	}
	dst.DrawText(w-10, 45, fmt.Sprintf("%05d", snap.Score), style)
}

func drawGround(dst core.Surface, vp config.Viewport, offset float64) {
	dst.FillRect(0, vp.GroundLine, vp.Width, 2, core.ColorInk)
	if vp.GroundTile <= 0 {
		return
	}
	// Dots on every other tile; the offset makes the pattern scroll.
	for i, x := 0, offset; x < vp.Width+vp.GroundTile; i, x = i+1, x+vp.GroundTile {
		if i%2 == 0 {
			dst.FillRect(x, vp.GroundLine+3, 2, 2, core.ColorInk)
		}
	}
}

func drawCloud(dst core.Surface, c Cloud) {
	sx, sy := c.W/46, c.H/14
	dst.FillRect(c.X, c.Y, c.W, c.H, core.ColorCloud)
	dst.FillRect(c.X+10*sx, c.Y-4*sy, 26*sx, 8*sy, core.ColorCloud)
	dst.FillRect(c.X+16*sx, c.Y-8*sy, 14*sx, 8*sy, core.ColorCloud)
}

func drawCactus(dst core.Surface, o Obstacle) {
	trunk := o.W * 12 / 17
	arm := o.W * 6 / 17
	dst.FillRect(o.X, o.Y, trunk, o.H, core.ColorInk)
	dst.FillRect(o.X-arm, o.Y+o.H*10/35, arm, o.H*15/35, core.ColorInk)
	dst.FillRect(o.X+trunk, o.Y+o.H*5/35, arm, o.H*20/35, core.ColorInk)
}

func drawPtero(dst core.Surface, o Obstacle, tick int) {
	sx, sy := o.W/46, o.H/20
	x, y := o.X, o.Y
	dst.FillRect(x+8*sx, y+8*sy, 15*sx, 8*sy, core.ColorInk)  // body
	dst.FillRect(x+21*sx, y+5*sy, 8*sx, 8*sy, core.ColorInk)  // head
	dst.FillRect(x+29*sx, y+8*sy, 4*sx, 3*sy, core.ColorInk)  // beak
	if (tick/wingFrameTicks)%2 == 0 {
		dst.FillRect(x, y, 15*sx, 4*sy, core.ColorInk)
		dst.FillRect(x, y+16*sy, 15*sx, 4*sy, core.ColorInk)
	} else {
		dst.FillRect(x+2*sx, y+2*sy, 12*sx, 4*sy, core.ColorInk)
		dst.FillRect(x+2*sx, y+14*sy, 12*sx, 4*sy, core.ColorInk)
	}
}

func drawPlayer(dst core.Surface, snap Snapshot, pc config.Player) {
	p := snap.Player
	x, y := p.X, p.Y

	// Legs alternate only while running on the ground.
	leg := 0.0
	if snap.Phase == PhasePlaying && !p.Jumping && (snap.Tick/legFrameTicks)%2 == 1 {
		leg = 2
	}

	if p.Ducking {
		dst.FillRect(x, y+20, pc.Width+15, pc.Height-20, core.ColorInk)
		dst.FillCircle(x+14, y+27, 2, core.ColorEye)
		dst.FillRect(x+45-leg, y+40, 6, 7, core.ColorInk)
		dst.FillRect(x+35+leg, y+40, 6, 7, core.ColorInk)
		return
	}

	dst.FillRect(x, y, 25, 25, core.ColorInk)
	dst.FillRect(x+25, y+5, pc.Width-25, 19, core.ColorInk)
	dst.FillRect(x+6, y-6, 6, 6, core.ColorInk)
	dst.FillRect(x+12, y-8, 13, 8, core.ColorInk)
	dst.FillCircle(x+17, y-4, 2, core.ColorEye)
	dst.FillRect(x+2+leg, y+25, 6, pc.Height-33, core.ColorInk)
	dst.FillRect(x+15-leg, y+25, 6, pc.Height-33, core.ColorInk)
	dst.FillRect(x+30, y+10, 8, 4, core.ColorInk) // arm
	dst.FillRect(x-6, y+8, 6, 4, core.ColorInk)   // tail
}
