package walk

// point is a lattice coordinate relative to the origin.
type point struct{ x, y int }

// CountReference counts n-step self-avoiding walks the plain way: a hash set
// of visited points, an unbounded lattice, and all four first steps searched.
// It shares no code with Count's engines and is meant for cross-checking.
func CountReference(n int) (uint64, error) {
	if err := validateSteps(n); err != nil {
		return 0, err
	}
	visited := map[point]bool{{0, 0}: true}

	return extend(point{}, n, visited), nil
}

func extend(p point, remaining int, visited map[point]bool) uint64 {
	if remaining == 0 {
		return 1
	}
	var total uint64
	for _, d := range Directions {
		dx, dy := d.Offset()
		q := point{p.x + dx, p.y + dy}
		if visited[q] {
			continue
		}
		visited[q] = true
		total += extend(q, remaining-1, visited)
		delete(visited, q)
	}

	return total
}
