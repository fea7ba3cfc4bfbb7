package tilemap

import "container/heap"

// Cell is a grid position.
type Cell struct {
	Row int
	Col int
}

// Walkable reports whether a cell is inside the map and has no Collide tile.
func (m *Map) Walkable(row, col int) bool {
	if !m.InBounds(row, col) {
		return false
	}
	return m.layers[Collide][row][col].IsEmpty()
}

// FindPath returns the shortest 4-connected walk from one cell to another
// over walkable cells, both ends included. It returns nil when either end is
// blocked, no path exists, or the search expands more than maxNodes cells.
// The goal itself does not count toward maxNodes.
// maxNodes <= 0 searches the whole map.
func (m *Map) FindPath(from, to Cell, maxNodes int) []Cell {
	if !m.Walkable(from.Row, from.Col) || !m.Walkable(to.Row, to.Col) {
		return nil
	}
	if from == to {
		return []Cell{from}
	}
	if maxNodes <= 0 {
		maxNodes = m.width * m.height
	}

	index := func(c Cell) int { return c.Row*m.width + c.Col }
	start, goal := index(from), index(to)

	cameFrom := make(map[int]int, 128)
	gScore := map[int]int{start: 0}
	open := &pathQueue{{cell: from, f: manhattan(from, to)}}

	expanded := 0
	for open.Len() > 0 && expanded < maxNodes {
		cur := heap.Pop(open).(pathNode)
		curIdx := index(cur.cell)
		if curIdx == goal {
			return walkBack(cameFrom, curIdx, start, m.width)
		}
		// stale entry superseded by a cheaper one
		if cur.g > gScore[curIdx] {
			continue
		}
		expanded++
		for _, d := range [...]Cell{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
			next := Cell{Row: cur.cell.Row + d.Row, Col: cur.cell.Col + d.Col}
			if !m.Walkable(next.Row, next.Col) {
				continue
			}
			nextIdx := index(next)
			g := gScore[curIdx] + 1
			if prev, seen := gScore[nextIdx]; seen && g >= prev {
				continue
			}
			cameFrom[nextIdx] = curIdx
			gScore[nextIdx] = g
			heap.Push(open, pathNode{cell: next, g: g, f: g + manhattan(next, to)})
		}
	}
	return nil
}

func walkBack(cameFrom map[int]int, idx, start, width int) []Cell {
	var path []Cell
	for {
		path = append(path, Cell{Row: idx / width, Col: idx % width})
		if idx == start {
			break
		}
		idx = cameFrom[idx]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type pathNode struct {
	cell Cell
	g, f int
}

type pathQueue []pathNode

func (q pathQueue) Len() int           { return len(q) }
func (q pathQueue) Less(i, j int) bool { return q[i].f < q[j].f }
func (q pathQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *pathQueue) Push(x any)        { *q = append(*q, x.(pathNode)) }
func (q *pathQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	*q = old[:len(old)-1]
	return n
}
