package slippable

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// SetUpdateFunc sets a callback that Run invokes once per tick after the
// list has been updated. A non-nil error stops the game loop.
func (l *List) SetUpdateFunc(fn func() error) {
	l.updateFunc = fn
}

// game adapts a List to ebiten.Game.
type game struct {
	list *List
	cfg  RunConfig
}

func (g *game) Update() error {
	g.list.Update()
	if g.list.updateFunc != nil {
		return g.list.updateFunc()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.list.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives l until the window is closed or the update
// func returns an error. The window height also bounds the list's visible
// area.
func Run(l *List, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("slippable: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	l.Container.WindowHeight = float64(cfg.Height)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{list: l, cfg: cfg})
}
