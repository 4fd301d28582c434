package gridgraph

// Components finds the 4-connected regions formed by the nodes for which
// keep returns true. Returns a slice of components; each component lists
// node indices in BFS order from its lowest-index node. Components are
// ordered by their lowest index.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (gg *Grid) Components(keep func(i int) bool) [][]int {
	n := gg.Order()
	seen := make([]bool, n)
	var comps [][]int

	for i0 := 0; i0 < n; i0++ {
		if seen[i0] || !keep(i0) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range gg.adjacency[queue[qi]] {
				if !seen[v] && keep(v) {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
