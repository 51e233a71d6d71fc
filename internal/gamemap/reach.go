package gamemap

import "github.com/zyedidia/generic/mapset"

// Reachable flood-fills from start through non-wall cells using 4-directional
// steps and returns every cell reached. A wall start yields an empty set.
func (m *GameMap) Reachable(start Point) mapset.Set[Point] {
	seen := mapset.New[Point]()
	if !m.IsWalkable(start.X, start.Y) {
		return seen
	}
	seen.Put(start)
	queue := []Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Neighbors4 {
			n := cur.Add(d.X, d.Y)
			if !m.IsWalkable(n.X, n.Y) || seen.Has(n) {
				continue
			}
			seen.Put(n)
			queue = append(queue, n)
		}
	}
	return seen
}

// Connected reports whether every walkable cell can be reached from start.
func (m *GameMap) Connected(start Point) bool {
	reached := m.Reachable(start)
	return reached.Size() == m.Count(TileFloor)+m.Count(TileStair)
}
