package level

import (
	"log/slog"

	"gridcaster/vmath"
)

// Direction order: up, up-right, right, down-right, down, down-left, left, up-left.
// Odd indices are diagonals.
var directions = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

type pathNode struct {
	x, y       int
	direction  int // first move taken from the start, -1 for the start node
	pathLength int
	score      int
}

func manhattan(x1, y1, x2, y2 int) int {
	return abs(x2-x1) + abs(y2-y1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// FindStep runs a best-first search over the 8-connected grid from the cell holding start
// to the cell holding goal, and returns only the first move of the best path found. Each
// component of the step is -1, 0 or 1. A start already in the goal cell yields the zero
// step. The second result is false when no path exists.
//
// The open list is scanned linearly for the lowest score and the first one seen wins.
// Diagonals that would clip a blocked corner are skipped, and explored cells are never
// reopened. Callers are expected to re-plan every tick.
func (m *Map) FindStep(start, goal vmath.Vec) (vmath.Vec, bool) {
	sx, sy := start.Cell()
	gx, gy := goal.Cell()
	if sx == gx && sy == gy {
		return vmath.Zero, true
	}

	frontier := make([]pathNode, 0, 16)
	explored := make([]pathNode, 0, 16)
	frontier = append(frontier, pathNode{
		x: sx, y: sy,
		direction: -1,
		score:     manhattan(sx, sy, gx, gy),
	})

	for len(frontier) > 0 {
		smallest := 0
		for i := 1; i < len(frontier); i++ {
			if frontier[i].score < frontier[smallest].score {
				smallest = i
			}
		}
		current := frontier[smallest]
		frontier = append(frontier[:smallest], frontier[smallest+1:]...)

		if current.x == gx && current.y == gy {
			d := directions[current.direction]
			return vmath.New(float64(d[0]), float64(d[1])), true
		}

		explored = append(explored, current)

		for dir, d := range directions {
			cx, cy := current.x+d[0], current.y+d[1]
			if m.Occupied(cx, cy) {
				continue
			}
			if dir%2 == 1 && (m.Occupied(current.x+d[0], current.y) || m.Occupied(current.x, current.y+d[1])) {
				continue
			}

			first := current.direction
			if first == -1 {
				first = dir
			}
			pathLength := current.pathLength + 1
			child := pathNode{
				x: cx, y: cy,
				direction:  first,
				pathLength: pathLength,
				score:      pathLength + manhattan(cx, cy, gx, gy),
			}

			if containsCell(explored, cx, cy) >= 0 {
				continue
			}
			if i := containsCell(frontier, cx, cy); i >= 0 {
				if child.score < frontier[i].score {
					frontier[i] = child
				}
				continue
			}
			frontier = append(frontier, child)
		}
	}

	slog.Debug("pathfinding exhausted", "start", start, "goal", goal, "explored", len(explored))
	return vmath.Zero, false
}

func containsCell(nodes []pathNode, x, y int) int {
	for i := range nodes {
		if nodes[i].x == x && nodes[i].y == y {
			return i
		}
	}
	return -1
}
