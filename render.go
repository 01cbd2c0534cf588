package slippable

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image scaled and tinted for every filled rect.
// Created on first draw so that building a List never touches the GPU.
var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Draw renders the list into its viewport on screen. Rows outside the visible
// area are skipped and the row under an active session is drawn last.
func (l *List) Draw(screen *ebiten.Image) {
	l.draw(screen)
	l.flushScreenshots(screen)
}

func (l *List) draw(screen *ebiten.Image) {
	c := l.Container
	vp := c.Viewport
	clip := image.Rect(
		int(vp.X), int(vp.Y),
		int(vp.Right()), int(math.Min(vp.Bottom(), c.VisibleBottom())),
	)
	dst, ok := screen.SubImage(clip).(*ebiten.Image)
	if !ok || clip.Empty() {
		return
	}

	if l.ClearColor.A > 0 {
		fillRect(dst, vp, l.ClearColor, 1)
	}

	var lifted *Row
	if s := l.gestures.session; s != nil {
		lifted = s.Row
	}
	for _, r := range l.Rows() {
		if r != lifted {
			l.drawRow(dst, r)
		}
	}
	if lifted != nil && lifted.list == l {
		l.drawRow(dst, lifted)
	}
}

// drawRow draws the panels behind a row, then the row itself shifted by its
// swipe translation.
func (l *List) drawRow(dst *ebiten.Image, r *Row) {
	c := l.Container
	y := c.ContentToScreen(r.layoutY + r.shownY)
	if y > c.VisibleBottom() || y+r.Height < c.Viewport.Y {
		return
	}
	slot := Rect{X: c.Viewport.X, Y: y, Width: r.Width, Height: r.Height}

	if r.LeftPanel != nil {
		fillRect(dst, slot, r.LeftPanel.Color, clamp01(r.LeftPanel.Opacity))
	}
	if r.RightPanel != nil {
		fillRect(dst, slot, r.RightPanel.Color, clamp01(r.RightPanel.Opacity))
	}

	body := slot
	body.X += r.TranslateX
	tint := r.Color
	if r.Presentation == PresentationReordering {
		tint.R *= 0.9
		tint.G *= 0.9
		tint.B *= 0.9
	}
	fillRect(dst, body, tint, 1)

	if l.OnDrawRow != nil {
		l.OnDrawRow(dst, r, body)
	}
}

// fillRect draws r filled with c at the given extra opacity.
func fillRect(dst *ebiten.Image, r Rect, c Color, alpha float64) {
	a := c.A * alpha
	if a <= 0 || r.Width <= 0 || r.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	// ColorScale is premultiplied.
	op.ColorScale.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
	dst.DrawImage(pixel(), &op)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
