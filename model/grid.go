package model

import (
	"crypto/md5"
	"fmt"
	"iter"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/game-of-war/rules"
)

// MinDimension is the smallest width or height a board may have
const MinDimension = 2

// ErrGridTooSmall is returned when a board is requested below MinDimension
var ErrGridTooSmall = errors.New("grid dimensions must be at least 2x2")

// Point is a board coordinate. Signed so that neighbor offsets may step off the board.
type Point struct {
	X, Y int
}

// Grid represents the game board. It does not wrap at the edges.
type Grid struct {
	width  int
	height int
	cells  [][]Cell // cells[y][x], rows share one backing slice
}

// bounds is the bounding box of the living cells on a grid
type bounds struct {
	minX, maxX, minY, maxY int
}

// NewGrid creates a new grid with the specified dimensions, every cell dead and neutral
func NewGrid(width, height int) (*Grid, error) {
	if width < MinDimension || height < MinDimension {
		return nil, errors.Wrapf(ErrGridTooSmall, "[NewGrid] got %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  allocCells(width, height),
	}, nil
}

// MustNewGrid is NewGrid for callers that treat a bad size as a programming error
func MustNewGrid(width, height int) *Grid {
	g, err := NewGrid(width, height)
	if err != nil {
		panic(err)
	}
	return g
}

func allocCells(width, height int) [][]Cell {
	backing := make([]Cell, width*height)
	cells := make([][]Cell, height)
	for y := range cells {
		start := y * width
		cells[y] = backing[start : start+width : start+width]
	}
	return cells
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at (x, y). ok is false for any coordinate off the board.
func (g *Grid) Get(x, y int) (cell Cell, ok bool) {
	if !g.inBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[y][x], true
}

// Ref returns a pointer to the cell at (x, y) for in-place edits, or nil off the board
func (g *Grid) Ref(x, y int) *Cell {
	if !g.inBounds(x, y) {
		return nil
	}
	return &g.cells[y][x]
}

// Set writes a cell. Writes off the board are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if g.inBounds(x, y) {
		g.cells[y][x] = c
	}
}

// Neighbors returns the cells around (cx, cy), clipped to the board.
// A corner has 3, an edge 5 and an interior cell 8; anything else panics.
func (g *Grid) Neighbors(cx, cy int) []Cell {
	return g.appendNeighbors(make([]Cell, 0, 8), cx, cy)
}

// appendNeighbors is Neighbors writing into dst, so the tick loop can reuse one buffer
func (g *Grid) appendNeighbors(dst []Cell, cx, cy int) []Cell {
	dst = dst[:0]
	for y := cy - 1; y <= cy+1; y++ {
		for x := cx - 1; x <= cx+1; x++ {
			if x == cx && y == cy {
				continue
			}
			if c, ok := g.Get(x, y); ok {
				dst = append(dst, c)
			}
		}
	}

	switch n := len(dst); n {
	case 3, 5, 8:
	default:
		panic(errors.Errorf("unexpected number of neighbors at (%d, %d): expected 3, 5 or 8, got %d", cx, cy, n))
	}
	return dst
}

// All yields every position with its cell, x varying fastest.
// Each call starts a fresh traversal; it never mutates the grid.
func (g *Grid) All() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for y := range g.height {
			for x := range g.width {
				if !yield(Point{X: x, Y: y}, g.cells[y][x]) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		cells:  allocCells(g.width, g.height),
	}
	c.copyCells(g)
	return c
}

// CopyFrom overwrites g with the contents of src. Both must have the same size.
func (g *Grid) CopyFrom(src *Grid) error {
	if src.width != g.width || src.height != g.height {
		return errors.Errorf("[CopyFrom] size mismatch: have %dx%d, got %dx%d",
			g.width, g.height, src.width, src.height)
	}
	g.copyCells(src)
	return nil
}

func (g *Grid) copyCells(src *Grid) {
	for y := range g.cells {
		copy(g.cells[y], src.cells[y])
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.All() {
		if c.Alive {
			count++
		}
	}
	return
}

// Census counts living cells per team
func (g *Grid) Census() (census Census) {
	for _, c := range g.All() {
		census.add(c)
	}
	return
}

// Equal reports whether both grids have the same size and identical cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// GetGridHash returns an MD5 hash of the current grid state, teams included
func (g *Grid) GetGridHash() string {
	h := md5.New()
	row := make([]byte, g.width)
	for y := range g.height {
		for x, c := range g.cells[y] {
			row[x] = 0
			if c.Alive {
				row[x] = 1 + byte(c.Team)
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// activeBounds calculates the bounding box of living cells
func (g *Grid) activeBounds() (b bounds, ok bool) {
	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x].Alive {
				continue
			}
			if !ok {
				b = bounds{minX: x, maxX: x, minY: y, maxY: y}
				ok = true
				continue
			}
			b.minX = min(b.minX, x)
			b.maxX = max(b.maxX, x)
			b.minY = min(b.minY, y)
			b.maxY = max(b.maxY, y)
		}
	}
	return
}

// GetBoundingBoxSize returns the area of the region holding living cells
func (g *Grid) GetBoundingBoxSize() int {
	b, ok := g.activeBounds()
	if !ok {
		return 0
	}
	return (b.maxX - b.minX + 1) * (b.maxY - b.minY + 1)
}

// nextCell computes the next state of (x, y) from g, using buf as neighbor scratch space
func (g *Grid) nextCell(x, y int, buf []Cell) Cell {
	neighbors := g.appendNeighbors(buf, x, y)

	// Keep living neighbors in place; they are the parents of a birth.
	parents := neighbors[:0]
	for _, n := range neighbors {
		if n.Alive {
			parents = append(parents, n)
		}
	}
	population := len(parents)

	cur := g.cells[y][x]
	if !rules.ApplyConwayRules(population, cur.Alive) {
		return Cell{}
	}
	if cur.Alive {
		return cur
	}
	next := Cell{Alive: true}
	next.InheritFrom(parents)
	return next
}
