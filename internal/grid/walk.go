package grid

import "iter"

// Channel identifies one color component of a pixel. Alpha is not a payload channel.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Channels is the number of payload channels per pixel.
const Channels = 3

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "unknown"
}

// Slot is one step of a walk: the Index-th channel of the grid.
type Slot struct {
	Index   int
	X, Y    int
	Channel Channel
}

// SlotIndex returns the walk position of channel c at (x, y) in a grid of the given width.
func SlotIndex(x, y int, c Channel, width int) int {
	return (y*width+x)*Channels + int(c)
}

// Walk visits every channel of a width x height grid: rows top to bottom,
// pixels left to right, then red, green, blue.
// Each call returns an independent sequence.
func Walk(width, height int) iter.Seq[Slot] {
	return WalkRows(width, 0, height)
}

// WalkRows is Walk restricted to rows [from, to). Slot indexes stay those of the full walk.
func WalkRows(width, from, to int) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		for y := from; y < to; y++ {
			for x := range width {
				for c := range Channels {
					s := Slot{
						Index:   SlotIndex(x, y, Channel(c), width),
						X:       x,
						Y:       y,
						Channel: Channel(c),
					}
					if !yield(s) {
						return
					}
				}
			}
		}
	}
}

// Walk visits every channel of g in traversal order.
func (g *Grid) Walk() iter.Seq[Slot] {
	return Walk(g.width, g.height)
}
