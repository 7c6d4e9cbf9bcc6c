package stressbuster

import (
	"strings"
	"testing"

	"github.com/vovakirdan/stressbuster/internal/core"
)

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func renderTexts(t *testing.T, snap Snapshot) []string {
	t.Helper()
	cfg := testConfig()
	rec := core.NewRecorder(cfg.Viewport.Width, cfg.Viewport.Height)
	Render(snap, cfg, rec)
	return rec.Texts()
}

func TestRenderWaiting(t *testing.T) {
	snap := NewSession(testConfig(), 0).Snapshot()
	texts := renderTexts(t, snap)

	if !contains(texts, MsgWaiting) {
		t.Errorf("waiting screen texts %v missing %q", texts, MsgWaiting)
	}
	if !contains(texts, "00000") {
		t.Errorf("score readout missing from %v", texts)
	}
	for _, s := range texts {
		if strings.HasPrefix(s, "HI ") {
			t.Errorf("HI shown without a best score: %q", s)
		}
	}
}

func TestRenderHighScore(t *testing.T) {
	cfg := testConfig()
	s := NewSession(cfg, 42)
	s.start(cfg)
	s.Score = 7
	texts := renderTexts(t, s.Snapshot())

	if !contains(texts, "HI 00042") || !contains(texts, "00007") {
		t.Errorf("texts = %v", texts)
	}
	if contains(texts, MsgWaiting) || contains(texts, MsgGameOver) {
		t.Errorf("playing screen shows a status message: %v", texts)
	}
}

func TestRenderGameOver(t *testing.T) {
	cfg := testConfig()
	s := NewSession(cfg, 0)
	s.Phase = PhaseGameOver
	texts := renderTexts(t, s.Snapshot())

	if !contains(texts, MsgGameOver) || !contains(texts, MsgRestart) {
		t.Errorf("game over texts = %v", texts)
	}
}

func TestRenderNewBestAccent(t *testing.T) {
	cfg := testConfig()
	s := NewSession(cfg, 0)
	s.start(cfg)
	s.Score, s.HighScore = 12, 12

	rec := core.NewRecorder(cfg.Viewport.Width, cfg.Viewport.Height)
	Render(s.Snapshot(), cfg, rec)
	for _, p := range rec.Prims {
		if p.Kind == core.PrimText && p.Text == "00012" && p.Color != core.ColorAccent {
			t.Errorf("new best should be highlighted, color = %v", p.Color)
		}
	}
}

func TestRenderEntities(t *testing.T) {
	cfg := testConfig()
	s := NewSession(cfg, 0)
	s.start(cfg)
	s.Obstacles = append(s.Obstacles,
		Obstacle{Kind: KindGround, X: 400, Y: 165, W: 17, H: 35},
		Obstacle{Kind: KindAirborne, X: 600, Y: 130, W: 46, H: 20},
	)
	s.Clouds = append(s.Clouds, Cloud{X: 300, Y: 40, W: 46, H: 14})

	rec := core.NewRecorder(cfg.Viewport.Width, cfg.Viewport.Height)
	Render(s.Snapshot(), cfg, rec)

	var cactus, ptero, cloud, eye bool
	for _, p := range rec.Prims {
		switch {
		case p.Kind == core.PrimRect && p.X == 400 && p.Y == 165:
			cactus = true
		case p.Kind == core.PrimRect && p.Color == core.ColorInk && p.X >= 600 && p.X < 646:
			ptero = true
		case p.Kind == core.PrimRect && p.Color == core.ColorCloud && p.X == 300:
			cloud = true
		case p.Kind == core.PrimCircle && p.Color == core.ColorEye:
			eye = true
		}
	}
	if !cactus || !ptero || !cloud || !eye {
		t.Errorf("missing primitives: cactus=%v ptero=%v cloud=%v eye=%v", cactus, ptero, cloud, eye)
	}
	if first := rec.Prims[0]; first.Kind != core.PrimRect || first.Color != core.ColorBackground {
		t.Errorf("first primitive should clear the background, got %+v", first)
	}
}

func TestRenderDuckingPosture(t *testing.T) {
	cfg := testConfig()
	s := NewSession(cfg, 0)
	s.start(cfg)
	s.Player.SetDucking(true)

	rec := core.NewRecorder(cfg.Viewport.Width, cfg.Viewport.Height)
	Render(s.Snapshot(), cfg, rec)

	for _, p := range rec.Prims {
		if p.Kind == core.PrimRect && p.Color == core.ColorInk && p.X == s.Player.X && p.Y < s.Player.Y+20 {
			t.Errorf("ducking sprite drew above its crouch line: %+v", p)
		}
	}
}

func TestRenderOntoCells(t *testing.T) {
	cfg := testConfig()
	s := NewSession(cfg, 0)
	scr := core.NewScreen(80, 20)
	Render(s.Snapshot(), cfg, core.NewCellSurface(scr, cfg.Viewport.Width, cfg.Viewport.Height))

	if !strings.Contains(scr.String(), MsgWaiting) {
		t.Errorf("cell rendering missing prompt:\n%s", scr.String())
	}
}
