package main

import (
	"math"

	"github.com/gogpu/xd2d"
	"github.com/gogpu/xd2d/app"
)

// demo lays out a grid of cells, each holding a rectangle that pulses in
// size. Every cell is clipped to itself and cleared to its own hue before
// the rectangles are drawn in a single batch.
type demo struct {
	cols  int
	rects []xd2d.Rect
	cells []xd2d.Rect
}

func (d *demo) Init(c *app.Context) {
	xd2d.Logger().Info("demo: started", "cols", d.cols, "device", c.Settings.Device.Name)
}

func (d *demo) Update(c *app.Context) {
	w, h := float32(c.Width), float32(c.Height)
	cell := w / float32(d.cols)
	rows := max(int(h/cell), 1)

	d.cells = d.cells[:0]
	d.rects = d.rects[:0]
	t := float64(c.Frame) / 60
	for row := 0; row < rows; row++ {
		for col := 0; col < d.cols; col++ {
			r := xd2d.Rect{X: float32(col) * cell, Y: float32(row) * cell, W: cell, H: cell}
			d.cells = append(d.cells, r)

			phase := t + float64(row*d.cols+col)*0.15
			scale := float32(0.55 + 0.35*math.Sin(phase*2*math.Pi/3))
			d.rects = append(d.rects, r.Expand(-r.W*(1-scale)/2))
		}
	}
}

func (d *demo) Draw(c *app.Context) {
	p := c.Painter
	step := 360 / float32(len(d.cells))
	for i, r := range d.cells {
		p.Clip(r)
		h := math.Mod(float64(c.Frame)+float64(i)*float64(step), 360)
		p.Clear(xd2d.ColorFromHSL(float32(h), 0.6, 0.3))
	}
	p.Clip(xd2d.Rect{W: float32(c.Width), H: float32(c.Height)})

	// Sway the grid horizontally.
	sway := float32(math.Sin(float64(c.Frame)/30)) * 2
	p.SetTransform(xd2d.Translate(sway, 0))
	p.FilledRects(d.rects)
}
