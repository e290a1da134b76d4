// Package grid holds an editable RGBA pixel matrix and the channel traversal order
// used to map payload values onto it.
package grid

import (
	"image"
	"image/color"

	"github.com/yyyoichi/lsbsteg/internal/channel"
)

// Pixel is a non-premultiplied RGBA color.
type Pixel struct {
	R, G, B, A uint8
}

// Value returns the 8-bit value of channel c.
func (p Pixel) Value(c Channel) uint8 {
	switch c {
	case Red:
		return p.R
	case Green:
		return p.G
	default:
		return p.B
	}
}

// Grid is a width x height matrix of pixels stored row-major.
// Coordinates are relative to the top-left pixel, regardless of the source bounds.
type Grid struct {
	bounds        image.Rectangle
	width, height int
	// R, G, B, A per pixel
	pix []uint8
}

// New copies src into a new Grid.
func New(src image.Image) *Grid {
	var g Grid
	g.bounds = src.Bounds()
	g.width, g.height = g.bounds.Dx(), g.bounds.Dy()
	g.pix = make([]uint8, g.width*g.height*4)

	if nrgba, ok := src.(*image.NRGBA); ok {
		for y := range g.height {
			i := nrgba.PixOffset(g.bounds.Min.X, g.bounds.Min.Y+y)
			copy(g.pix[y*g.width*4:(y+1)*g.width*4], nrgba.Pix[i:i+g.width*4])
		}
		return &g
	}
	for y := range g.height {
		for x := range g.width {
			c := color.NRGBAModel.Convert(src.At(g.bounds.Min.X+x, g.bounds.Min.Y+y)).(color.NRGBA)
			g.Set(x, y, Pixel{c.R, c.G, c.B, c.A})
		}
	}
	return &g
}

func (g *Grid) Width() int { return g.width }

func (g *Grid) Height() int { return g.height }

func (g *Grid) Bounds() image.Rectangle { return g.bounds }

// Slots returns the number of color channels in the grid.
func (g *Grid) Slots() int {
	return g.width * g.height * Channels
}

func (g *Grid) offset(x, y int) int {
	return (y*g.width + x) * 4
}

func (g *Grid) At(x, y int) Pixel {
	i := g.offset(x, y)
	s := g.pix[i : i+4 : i+4]
	return Pixel{s[0], s[1], s[2], s[3]}
}

func (g *Grid) Set(x, y int, p Pixel) {
	i := g.offset(x, y)
	s := g.pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = p.R, p.G, p.B, p.A
}

// Value returns the 8-bit value of channel c at (x, y).
func (g *Grid) Value(x, y int, c Channel) uint8 {
	return g.pix[g.offset(x, y)+int(c)]
}

// Embed stores d in the low n bits of channel c at (x, y) and makes the pixel opaque.
// It is the only operation that changes pixel colors during encoding.
func (g *Grid) Embed(x, y int, c Channel, d uint8, n int) {
	i := g.offset(x, y)
	g.pix[i+int(c)] = channel.Embed(g.pix[i+int(c)], d, n)
	g.pix[i+3] = 0xff
}

// Extract returns the low n bits of channel c at (x, y).
func (g *Grid) Extract(x, y int, c Channel, n int) uint8 {
	return channel.Extract(g.Value(x, y, c), n)
}

func (g *Grid) Copy() *Grid {
	tmp := make([]uint8, len(g.pix))
	_ = copy(tmp, g.pix)
	c := *g
	c.pix = tmp
	return &c
}

// Image returns an image backed by the grid's pixels. Later edits to the grid
// are visible through it.
func (g *Grid) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    g.pix,
		Stride: g.width * 4,
		Rect:   g.bounds,
	}
}
