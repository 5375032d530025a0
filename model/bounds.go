package model

import (
	"math"
	"math/bits"
)

// maxGridPrealloc caps the capacity hint for very wide boxes
const maxGridPrealloc = 1 << 16

// Corners is the bounding box of a generation
type Corners struct {
	BottomLeft Cell
	TopRight   Cell
}

// CornersOf returns the smallest box holding every living cell. An empty
// generation yields the single point (0,0).
func CornersOf(g Generation) Corners {
	if g.Len() == 0 {
		return Corners{}
	}

	first := g.cells[0]
	minX, maxX := first.X, first.X
	minY, maxY := first.Y, first.Y
	for _, c := range g.cells[1:] {
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}

	return Corners{
		BottomLeft: Cell{X: minX, Y: minY},
		TopRight:   Cell{X: maxX, Y: maxY},
	}
}

// Expand grows the box by n cells in every direction, stopping at the edges
// of the int range
func (c Corners) Expand(n int) Corners {
	return Corners{
		BottomLeft: Cell{X: saturatingAdd(c.BottomLeft.X, -n), Y: saturatingAdd(c.BottomLeft.Y, -n)},
		TopRight:   Cell{X: saturatingAdd(c.TopRight.X, n), Y: saturatingAdd(c.TopRight.Y, n)},
	}
}

func saturatingAdd(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}

// Contains reports whether the cell lies inside the box, bounds inclusive
func (c Corners) Contains(cell Cell) bool {
	return cell.X >= c.BottomLeft.X && cell.X <= c.TopRight.X &&
		cell.Y >= c.BottomLeft.Y && cell.Y <= c.TopRight.Y
}

// Area returns the number of cells inside the box, saturating at math.MaxInt
func (c Corners) Area() int {
	if c.TopRight.X < c.BottomLeft.X || c.TopRight.Y < c.BottomLeft.Y {
		return 0
	}
	width := uint64(c.TopRight.X) - uint64(c.BottomLeft.X)
	height := uint64(c.TopRight.Y) - uint64(c.BottomLeft.Y)
	if width >= math.MaxInt || height >= math.MaxInt {
		return math.MaxInt
	}
	hi, lo := bits.Mul64(width+1, height+1)
	if hi != 0 || lo > math.MaxInt {
		return math.MaxInt
	}
	return int(lo)
}

// GridBoundedByCorners enumerates every cell in the inclusive box, X
// ascending in the outer loop and Y ascending in the inner loop. Inverted
// bounds produce an empty slice.
func GridBoundedByCorners(bottomLeft, topRight Cell) []Cell {
	area := Corners{BottomLeft: bottomLeft, TopRight: topRight}.Area()
	return appendGrid(make([]Cell, 0, min(area, maxGridPrealloc)), bottomLeft, topRight)
}

// appendGrid breaks on the upper bound instead of stepping past it, so a
// bound of math.MaxInt cannot wrap the loop
func appendGrid(grid []Cell, bottomLeft, topRight Cell) []Cell {
	if bottomLeft.X > topRight.X || bottomLeft.Y > topRight.Y {
		return grid
	}
	for x := bottomLeft.X; ; x++ {
		for y := bottomLeft.Y; ; y++ {
			grid = append(grid, Cell{X: x, Y: y})
			if y == topRight.Y {
				break
			}
		}
		if x == topRight.X {
			break
		}
	}
	return grid
}
