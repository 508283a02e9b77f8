package g2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// GridSize is the fixed grid dimension.
const GridSize = 4

// Grid is the 4x4 tile grid. 0 means empty; any other value is a power
// of two >= 2.
type Grid [GridSize][GridSize]int

// slideLine compacts and merges a single line toward index 0.
// A cell produced by a merge never merges again within the same pass,
// so [2,2,2,2] becomes [4,4] and [2,2,4] becomes [4,4], never [8].
// Returns the updated line and the score gained from merges.
func slideLine(line [GridSize]int) (result [GridSize]int, score int) {
	write := 0
	merged := -1 // index of the most recent merge target

	for i := range GridSize {
		v := line[i]
		if v == 0 {
			continue
		}

		if write > 0 && result[write-1] == v && write-1 != merged {
			result[write-1] = v * 2
			score += v * 2
			merged = write - 1
		} else {
			result[write] = v
			write++
		}
	}

	return result, score
}

// reverseLine reverses a line.
func reverseLine(line [GridSize]int) [GridSize]int {
	var result [GridSize]int
	for i := range GridSize {
		result[i] = line[GridSize-1-i]
	}
	return result
}

// transpose returns the matrix transpose.
func transpose(g Grid) Grid {
	var result Grid
	for y := range GridSize {
		for x := range GridSize {
			result[y][x] = g[x][y]
		}
	}
	return result
}

// SlideLeft slides all tiles left and merges.
// Returns the new grid, score gained, and whether the grid changed.
func SlideLeft(g Grid) (Grid, int, bool) {
	var next Grid
	total := 0
	changed := false

	for y := range GridSize {
		line, score := slideLine(g[y])
		next[y] = line
		total += score

		if line != g[y] {
			changed = true
		}
	}

	return next, total, changed
}

// SlideRight slides all tiles right and merges.
func SlideRight(g Grid) (Grid, int, bool) {
	var next Grid
	total := 0
	changed := false

	for y := range GridSize {
		// Reverse, slide toward 0, reverse back
		line, score := slideLine(reverseLine(g[y]))
		next[y] = reverseLine(line)
		total += score

		if next[y] != g[y] {
			changed = true
		}
	}

	return next, total, changed
}

// SlideUp slides all tiles up and merges.
func SlideUp(g Grid) (Grid, int, bool) {
	slid, score, changed := SlideLeft(transpose(g))
	return transpose(slid), score, changed
}

// SlideDown slides all tiles down and merges.
func SlideDown(g Grid) (Grid, int, bool) {
	slid, score, changed := SlideRight(transpose(g))
	return transpose(slid), score, changed
}

// Slide performs a move in the given direction.
// Returns the new grid, score gained, and whether the grid changed.
func Slide(g Grid, dir Direction) (Grid, int, bool) {
	switch dir {
	case DirLeft:
		return SlideLeft(g)
	case DirRight:
		return SlideRight(g)
	case DirUp:
		return SlideUp(g)
	case DirDown:
		return SlideDown(g)
	default:
		return g, 0, false
	}
}

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for y := range GridSize {
		for x := range GridSize {
			if g[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for y := range GridSize {
		for x := range GridSize {
			if g[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasAdjacentPair returns true if any two orthogonal neighbors hold the
// same value.
func HasAdjacentPair(g Grid) bool {
	for y := range GridSize {
		for x := range GridSize {
			v := g[y][x]
			if v == 0 {
				continue
			}
			if x < GridSize-1 && g[y][x+1] == v {
				return true
			}
			if y < GridSize-1 && g[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is legal.
func CanMove(g Grid) bool {
	return HasEmptyCell(g) || HasAdjacentPair(g)
}

// MaxTile returns the maximum tile value on the grid.
func MaxTile(g Grid) int {
	maxVal := 0
	for y := range GridSize {
		for x := range GridSize {
			if g[y][x] > maxVal {
				maxVal = g[y][x]
			}
		}
	}
	return maxVal
}

// CountTiles returns the number of non-empty cells.
func CountTiles(g Grid) int {
	n := 0
	for y := range GridSize {
		for x := range GridSize {
			if g[y][x] != 0 {
				n++
			}
		}
	}
	return n
}
