package generator

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"dungeonmaze/pkg/engine/world"
)

// firstChoiceRand always picks index 0 and never reorders, making the carve order predictable.
type firstChoiceRand struct{}

func (firstChoiceRand) Intn(n int) int { return 0 }
func (firstChoiceRand) Shuffle(n int, swap func(i, j int)) {}

// overflowRand returns out-of-range values, which only a broken source would do.
type overflowRand struct{}

func (overflowRand) Intn(n int) int { return n }
func (overflowRand) Shuffle(n int, swap func(i, j int)) {}

// disjointSet is a union-find over positions used to detect cycles as walls come down.
type disjointSet struct {
	parent map[world.Position]world.Position
}

func newDisjointSet() *disjointSet {
	return &disjointSet{parent: make(map[world.Position]world.Position)}
}

func (s *disjointSet) find(p world.Position) world.Position {
	parent, ok := s.parent[p]
	if !ok || parent == p {
		return p
	}
	root := s.find(parent)
	s.parent[p] = root
	return root
}

// union joins the sets of a and b and returns false if they were already joined
func (s *disjointSet) union(a, b world.Position) bool {
	ra, rb := s.find(a), s.find(b)
	if ra == rb {
		return false
	}
	s.parent[ra] = rb
	return true
}

func newGrid(t *testing.T, width, height int) *world.Grid {
	t.Helper()
	g, err := world.NewGrid(width, height)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) error: %v", width, height, err)
	}
	return g
}

// countReachable returns the number of cells reachable from start through open walls, found by flood fill.
func countReachable(g *world.Grid, start world.Position) int {
	seen := map[world.Position]bool{start: true}
	pending := []world.Position{start}
	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		cell, _ := g.Get(current)
		for _, dir := range cell.OpenDirections() {
			next := g.NeighborPosition(current, dir)
			if _, ok := g.Get(next); ok && !seen[next] {
				seen[next] = true
				pending = append(pending, next)
			}
		}
	}
	return len(seen)
}

var sizes = [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {3, 3}, {5, 8}, {16, 9}, {30, 30}}

func TestGenerate_VisitsEveryCell(t *testing.T) {
	for i, dims := range sizes {
		g := newGrid(t, dims[0], dims[1])
		Default(int64(i)).Generate(g)
		g.ForEachCell(func(cell world.Cell) {
			if !cell.Visited {
				t.Errorf("%dx%d: cell %v not visited", dims[0], dims[1], cell.Position)
			}
		})
	}
}

func TestGenerate_SpanningTreeEdgeCount(t *testing.T) {
	for i, dims := range sizes {
		g := newGrid(t, dims[0], dims[1])
		Default(int64(100 + i)).Generate(g)
		if got, want := len(g.Passages()), g.Area()-1; got != want {
			t.Errorf("%dx%d: %d passages, want %d", dims[0], dims[1], got, want)
		}
	}
}

func TestGenerate_WallsSymmetric(t *testing.T) {
	g := newGrid(t, 12, 12)
	Default(7).Generate(g)

	g.ForEachCell(func(cell world.Cell) {
		for _, dir := range world.AllDirections() {
			neighbor, ok := g.Neighbor(cell.Position, dir)
			if !ok {
				if !cell.HasWall(dir) {
					t.Errorf("cell %v opened its %v boundary wall", cell.Position, dir)
				}
				continue
			}
			if cell.HasWall(dir) != neighbor.HasWall(dir.Opposite()) {
				t.Errorf("cell %v %v wall = %v but neighbor %v %v wall = %v",
					cell.Position, dir, cell.HasWall(dir),
					neighbor.Position, dir.Opposite(), neighbor.HasWall(dir.Opposite()))
			}
		}
	})
}

func TestGenerate_FullyConnected(t *testing.T) {
	g := newGrid(t, 20, 15)
	Default(3).Generate(g)

	for _, start := range []world.Position{world.Pos(0, 0), world.Pos(19, 14), world.Pos(7, 9)} {
		if got := countReachable(g, start); got != g.Area() {
			t.Errorf("flood fill from %v reached %d cells, want %d", start, got, g.Area())
		}
	}
	if !g.IsPerfect() {
		t.Error("IsPerfect() = false on a generated maze")
	}
}

func TestGenerate_NoCycleWhileCarving(t *testing.T) {
	sets := newDisjointSet()
	carved := 0
	gen := NewRecursiveBacktracker(NewRand(11), WithCarveFunc(func(from world.Position, dir world.Direction) {
		carved++
		if !sets.union(from, from.Step(dir)) {
			t.Errorf("carving %v from %v closed a cycle", dir, from)
		}
	}))

	g := newGrid(t, 25, 17)
	gen.Generate(g)

	if carved != g.Area()-1 {
		t.Errorf("carve callback fired %d times, want %d", carved, g.Area()-1)
	}
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	a := newGrid(t, 15, 10)
	b := newGrid(t, 15, 10)
	Default(42).Generate(a)
	Default(42).Generate(b)

	pa, pb := a.Passages(), b.Passages()
	if len(pa) != len(pb) {
		t.Fatalf("passage counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("passage %d differs: %v vs %v", i, pa[i], pb[i])
		}
	}

	c := newGrid(t, 15, 10)
	Default(43).Generate(c)
	same := true
	for i, p := range c.Passages() {
		if p != pa[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("seeds 42 and 43 produced identical 15x10 mazes")
	}
}

func TestGenerate_SingleCell(t *testing.T) {
	g := newGrid(t, 1, 1)
	Default(1).Generate(g)

	cell, _ := g.Get(world.Pos(0, 0))
	if !cell.Visited {
		t.Error("1x1 cell not visited")
	}
	if n := len(g.Passages()); n != 0 {
		t.Errorf("1x1 grid has %d passages, want 0", n)
	}
	if cell.WallCount() != 4 {
		t.Errorf("1x1 cell has %d walls, want 4", cell.WallCount())
	}
}

func TestGenerate_ScriptedThreeByThree(t *testing.T) {
	var order []world.Passage
	gen := NewRecursiveBacktracker(firstChoiceRand{}, WithCarveFunc(func(from world.Position, dir world.Direction) {
		order = append(order, world.Passage{From: from, Dir: dir})
	}))

	g := newGrid(t, 3, 3)
	gen.Generate(g)

	wantOrder := []world.Passage{
		{From: world.Pos(0, 0), Dir: world.East},
		{From: world.Pos(1, 0), Dir: world.East},
		{From: world.Pos(2, 0), Dir: world.South},
		{From: world.Pos(2, 1), Dir: world.South},
		{From: world.Pos(2, 2), Dir: world.West},
		{From: world.Pos(1, 2), Dir: world.North},
		{From: world.Pos(1, 1), Dir: world.West},
		{From: world.Pos(0, 1), Dir: world.South},
	}
	if len(order) != len(wantOrder) {
		t.Fatalf("carve order = %v, want %v", order, wantOrder)
	}
	for i := range wantOrder {
		if order[i] != wantOrder[i] {
			t.Errorf("carve %d = %v, want %v", i, order[i], wantOrder[i])
		}
	}

	wantPassages := []world.Passage{
		{From: world.Pos(0, 0), Dir: world.East},
		{From: world.Pos(1, 0), Dir: world.East},
		{From: world.Pos(2, 0), Dir: world.South},
		{From: world.Pos(0, 1), Dir: world.East},
		{From: world.Pos(0, 1), Dir: world.South},
		{From: world.Pos(1, 1), Dir: world.South},
		{From: world.Pos(2, 1), Dir: world.South},
		{From: world.Pos(1, 2), Dir: world.East},
	}
	got := g.Passages()
	if len(got) != len(wantPassages) {
		t.Fatalf("Passages() = %v, want %v", got, wantPassages)
	}
	for i := range wantPassages {
		if got[i] != wantPassages[i] {
			t.Errorf("Passages()[%d] = %v, want %v", i, got[i], wantPassages[i])
		}
	}
	if !g.IsPerfect() {
		t.Error("scripted 3x3 maze is not perfect")
	}
}

func TestGenerate_SecondRunIsNoop(t *testing.T) {
	g := newGrid(t, 8, 6)
	gen := Default(5)
	gen.Generate(g)
	before := g.Clone()

	gen.Generate(g)

	want, got := before.Passages(), g.Passages()
	if len(want) != len(got) {
		t.Fatalf("second Generate changed passage count from %d to %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("second Generate changed passage %d: %v -> %v", i, want[i], got[i])
		}
	}
}

func TestGenerate_EmptyGridIsNoop(t *testing.T) {
	var g world.Grid
	Default(1).Generate(&g)
	Default(1).Generate(nil)
	if g.Area() != 0 {
		t.Errorf("Area() = %d after generating an empty grid", g.Area())
	}
}

func TestGenerate_LogsAndSkipsMissingCell(t *testing.T) {
	var buf bytes.Buffer
	gen := NewRecursiveBacktracker(overflowRand{}, WithLogger(log.New(&buf, "", 0)))

	g := newGrid(t, 3, 2)
	gen.Generate(g)

	if !strings.Contains(buf.String(), "[GENERATOR] [ERROR]") {
		t.Errorf("log output = %q, want a generator error", buf.String())
	}
	if n := len(g.Passages()); n != 0 {
		t.Errorf("%d passages carved from an out-of-range start, want 0", n)
	}
}

func TestGenerate_LargeGridIterative(t *testing.T) {
	g := newGrid(t, 300, 300)
	Default(9).Generate(g)
	if !g.AllVisited() {
		t.Error("300x300 maze left cells unvisited")
	}
	if got, want := len(g.Passages()), g.Area()-1; got != want {
		t.Errorf("300x300 maze has %d passages, want %d", got, want)
	}
}

func TestName(t *testing.T) {
	var gen MazeGenerator = NewRecursiveBacktracker(NewRand(0))
	if gen.Name() == "" {
		t.Error("Name() is empty")
	}
}
