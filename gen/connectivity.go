// SPDX-License-Identifier: MIT
// Package: steinlib/gen
//
// connectivity.go — the acceptance predicate of the rejection loop:
// breadth-first reachability of every terminal from the first one.

package gen

import "github.com/Leon-Degel-Koehn/steinlib/steiner"

// terminalsConnected reports whether every terminal lies in the connected
// component of the first terminal in the undirected graph induced by
// edges over vertices 1..n. Isolated vertices are accounted for; an empty
// terminal set accepts unconditionally.
//
// Complexity: O(n + E) time, O(n + E) space.
func terminalsConnected(n int, edges []steiner.Edge, terminals []int) bool {
	if len(terminals) == 0 {
		return true
	}

	// Adjacency over all n vertices, isolated ones included.
	adjacency := make([][]int, n+1)
	for _, e := range edges {
		adjacency[e.From] = append(adjacency[e.From], e.To)
		adjacency[e.To] = append(adjacency[e.To], e.From)
	}

	// BFS from the first terminal.
	visited := make([]bool, n+1)
	queue := make([]int, 0, n)
	start := terminals[0]
	visited[start] = true
	queue = append(queue, start)

	var v int
	for len(queue) > 0 {
		v = queue[0]
		queue = queue[1:]
		for _, nbr := range adjacency[v] {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	for _, t := range terminals {
		if !visited[t] {
			return false
		}
	}

	return true
}
