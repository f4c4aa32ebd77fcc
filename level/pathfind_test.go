package level

import (
	"testing"

	"gridcaster/vmath"
)

func TestFindStepOpenGrid(t *testing.T) {
	m := gridMap(t,
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
	)
	start := vmath.New(0.5, 0.5)
	goal := vmath.New(9.5, 9.5)

	step, ok := m.FindStep(start, goal)
	if !ok {
		t.Fatal("FindStep failed on an open grid")
	}
	if step.IsZero() {
		t.Fatal("FindStep returned the zero step")
	}
	for _, c := range []float64{step.X, step.Y} {
		if c != -1 && c != 0 && c != 1 {
			t.Fatalf("step %v has a component outside {-1, 0, 1}", step)
		}
	}

	sx, sy := start.Cell()
	gx, gy := goal.Cell()
	nx, ny := sx+int(step.X), sy+int(step.Y)
	if manhattan(nx, ny, gx, gy) >= manhattan(sx, sy, gx, gy) {
		t.Errorf("step %v does not reduce the Manhattan distance to the goal", step)
	}
}

func TestFindStepSameCell(t *testing.T) {
	m := gridMap(t, "...")
	step, ok := m.FindStep(vmath.New(1.2, 0.3), vmath.New(1.8, 0.9))
	if !ok || !step.IsZero() {
		t.Errorf("FindStep in the goal cell = (%v, %v), want (zero, true)", step, ok)
	}
}

func TestFindStepEnclosedGoal(t *testing.T) {
	m := gridMap(t,
		".......",
		"...###.",
		"...#.#.",
		"...###.",
		".......",
	)
	step, ok := m.FindStep(vmath.New(0.5, 0.5), vmath.New(4.5, 2.5))
	if ok {
		t.Errorf("FindStep reached an enclosed goal with step %v", step)
	}
	if !step.IsZero() {
		t.Errorf("failed FindStep returned %v, want zero", step)
	}
}

func TestFindStepRejectsCornerCutting(t *testing.T) {
	// The only diagonal toward the goal clips the wall at (1,0), so the first move
	// must be straight down.
	m := gridMap(t,
		".#.",
		"...",
	)
	step, ok := m.FindStep(vmath.New(0.5, 0.5), vmath.New(2.5, 0.5))
	if !ok {
		t.Fatal("FindStep failed")
	}
	if step != vmath.New(0, 1) {
		t.Errorf("step = %v, want (0, 1)", step)
	}
}

func TestFindStepAroundWall(t *testing.T) {
	m := gridMap(t,
		".....",
		".###.",
		"..#..",
		"..#..",
		".....",
	)
	start := vmath.New(1.5, 2.5)
	goal := vmath.New(3.5, 2.5)

	// Following the returned step from cell to cell must reach the goal.
	pos := start
	for i := 0; i < 20; i++ {
		gx, gy := goal.Cell()
		if x, y := pos.Cell(); x == gx && y == gy {
			return
		}
		step, ok := m.FindStep(pos, goal)
		if !ok {
			t.Fatalf("FindStep failed at %v", pos)
		}
		x, y := pos.Cell()
		nx, ny := x+int(step.X), y+int(step.Y)
		if m.Occupied(nx, ny) {
			t.Fatalf("step %v from %v enters an occupied cell", step, pos)
		}
		pos = vmath.Center(nx, ny)
	}
	t.Errorf("did not reach the goal, stopped at %v", pos)
}
