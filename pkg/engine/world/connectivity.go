package world

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Passage is an opened wall pair between From and the neighbor in Dir.
// Passages are always reported from the west or north side, so Dir is East or South.
type Passage struct {
	From Position
	Dir  Direction
}

// To returns the position on the other side of the passage
func (p Passage) To() Position {
	return p.From.Step(p.Dir)
}

// Passages returns every opened wall pair in row-major order.
// A wall cleared on only one side is not a passage.
func (g *Grid) Passages() []Passage {
	var passages []Passage
	g.ForEachCell(func(cell Cell) {
		for _, dir := range []Direction{East, South} {
			if g.IsOpen(cell.Position, dir) {
				passages = append(passages, Passage{From: cell.Position, Dir: dir})
			}
		}
	})
	return passages
}

// IsSymmetric reports whether every shared edge is either walled on both sides or open on both
func (g *Grid) IsSymmetric() bool {
	symmetric := true
	g.ForEachCell(func(cell Cell) {
		for _, dir := range AllDirections() {
			neighbor, ok := g.Neighbor(cell.Position, dir)
			if !ok {
				continue
			}
			if cell.HasWall(dir) != neighbor.HasWall(dir.Opposite()) {
				symmetric = false
			}
		}
	})
	return symmetric
}

// Distances returns the path length from start to every cell reachable through open passages.
// The map is empty if start is out of bounds.
func (g *Grid) Distances(start Position) map[Position]int {
	dist := make(map[Position]int)
	if !g.IsValidPosition(start) {
		return dist
	}

	q := queue.New[Position]()
	q.Enqueue(start)
	dist[start] = 0

	for !q.Empty() {
		current := q.Dequeue()
		for _, dir := range AllDirections() {
			if !g.IsOpen(current, dir) {
				continue
			}
			next := current.Step(dir)
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[current] + 1
			q.Enqueue(next)
		}
	}

	return dist
}

// Reachable returns the set of positions reachable from start through open passages
func (g *Grid) Reachable(start Position) mapset.Set[Position] {
	reached := mapset.New[Position]()
	for pos := range g.Distances(start) {
		reached.Put(pos)
	}
	return reached
}

// Farthest returns the reachable cell with the longest path from start, and that length.
// Ties go to the first cell in row-major order. If start is out of bounds it is returned with -1.
func (g *Grid) Farthest(start Position) (Position, int) {
	dist := g.Distances(start)
	if len(dist) == 0 {
		return start, -1
	}

	best, bestDist := start, 0
	g.ForEachCell(func(cell Cell) {
		d, ok := dist[cell.Position]
		if ok && d > bestDist {
			best, bestDist = cell.Position, d
		}
	})
	return best, bestDist
}

// IsConnected reports whether every cell can reach every other cell.
// An empty grid is trivially connected.
func (g *Grid) IsConnected() bool {
	if g.Area() == 0 {
		return true
	}
	return g.Reachable(Pos(0, 0)).Size() == g.Area()
}

// IsPerfect reports whether the passages form a spanning tree: connected, symmetric,
// and with exactly one fewer passage than there are cells
func (g *Grid) IsPerfect() bool {
	if g.Area() == 0 {
		return false
	}
	return g.IsSymmetric() && g.IsConnected() && len(g.Passages()) == g.Area()-1
}

// DeadEnds returns the cells with exactly one open side, in row-major order
func (g *Grid) DeadEnds() []Position {
	var ends []Position
	g.ForEachCell(func(cell Cell) {
		if cell.IsDeadEnd() {
			ends = append(ends, cell.Position)
		}
	})
	return ends
}

// AllVisited reports whether the generator has entered every cell
func (g *Grid) AllVisited() bool {
	visited := true
	g.ForEachCell(func(cell Cell) {
		if !cell.Visited {
			visited = false
		}
	})
	return visited
}
