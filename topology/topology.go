/*
 * topology.go, part of gochem.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goChem is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

// Package topology turns a molecule type's bond list into the exclusion and
// fudge tables the mcstep engine needs at load time, so a caller doesn't have
// to hand-author the null-terminated C-style tables of the original
// implementation. It is a load-time helper only; nothing here runs on the
// engine's hot path.
package topology

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// BondSpec names a bond between two local atom indices of a single molecule type.
type BondSpec struct {
	A1, A2 int
}

// Error is topology's implementation of the decoration-capable error convention
// used throughout the rest of the dependency pack.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func buildGraph(molLen int, bonds []BondSpec) (*simple.UndirectedGraph, error) {
	g := simple.NewUndirectedGraph()
	for i := 0; i < molLen; i++ {
		g.AddNode(simple.Node(i))
	}
	for _, b := range bonds {
		if b.A1 < 0 || b.A1 >= molLen || b.A2 < 0 || b.A2 >= molLen {
			return nil, Error{fmt.Sprintf("bond (%d,%d) out of range for a molecule of %d atoms", b.A1, b.A2, molLen), []string{"BuildExclusionTables"}}
		}
		g.SetEdge(simple.Edge{F: simple.Node(b.A1), T: simple.Node(b.A2)})
	}
	return g, nil
}

// bondDistances returns, for atom "from", the graph distance (number of
// bonds) to every other atom reachable within maxDepth hops, via a plain
// breadth-first search over g's adjacency.
func bondDistances(g *simple.UndirectedGraph, from int, maxDepth int) map[int]int {
	dist := map[int]int{from: 0}
	queue := []int{from}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if dist[u] >= maxDepth {
			continue
		}
		neighbors := g.From(int64(u))
		for neighbors.Next() {
			v := int(neighbors.Node().ID())
			if _, seen := dist[v]; !seen {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

// BuildExclusionTables derives the 1-2/1-3 exclusion table and the 1-4 fudge
// table for a molecule type of molLen atoms connected by bonds. The returned
// slices are indexed by local atom index i and list every j within the
// corresponding bond distance of i; lookups in the energy kernel only ever
// query with i<j (see ExcludedOrFudged), matching the original's asymmetric,
// lower-index-keyed convention.
func BuildExclusionTables(molLen int, bonds []BondSpec) (exclude, fudge [][]int, err error) {
	g, err := buildGraph(molLen, bonds)
	if err != nil {
		return nil, nil, err
	}
	exclude = make([][]int, molLen)
	fudge = make([][]int, molLen)
	for i := 0; i < molLen; i++ {
		dist := bondDistances(g, i, 3)
		for j, d := range dist {
			switch {
			case d == 1 || d == 2:
				exclude[i] = append(exclude[i], j)
			case d == 3:
				fudge[i] = append(fudge[i], j)
			}
		}
	}
	return exclude, fudge, nil
}

// ExcludedOrFudged returns the nonbonded scaling factor (0, 0.5 or 1.0) for
// the pair (i,j), i<j, given tables built by BuildExclusionTables. Callers
// must pass i<j; this mirrors the lower-index-keyed convention of the
// original C arrays and is a programmer error to violate, hence the panic.
func ExcludedOrFudged(exclude, fudge [][]int, i, j int) float64 {
	if i >= j {
		panic("topology: ExcludedOrFudged requires i < j")
	}
	for _, v := range exclude[i] {
		if v == j {
			return 0.0
		}
	}
	for _, v := range fudge[i] {
		if v == j {
			return 0.5
		}
	}
	return 1.0
}

// RingBonds flags, for diagnostic purposes only, which of the given bonds lie
// on a cycle of the molecule's bond graph -- i.e. whose endpoints remain
// connected even with that single bond removed. This is an independent
// cross-check, via gonum's connected-components routine, of what the engine's
// own union-find (see the root package's union-find partitioner) will
// discover at move time; it is never consulted by the move logic itself.
func RingBonds(molLen int, bonds []BondSpec) ([]bool, error) {
	g, err := buildGraph(molLen, bonds)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(bonds))
	for i, b := range bonds {
		if !g.HasEdgeBetween(int64(b.A1), int64(b.A2)) {
			continue // defensive only: every iteration re-adds the edge it removes, so each listed bond's edge is present here
		}
		g.RemoveEdge(int64(b.A1), int64(b.A2))
		out[i] = sameComponent(g, b.A1, b.A2)
		g.SetEdge(simple.Edge{F: simple.Node(b.A1), T: simple.Node(b.A2)})
	}
	return out, nil
}

func sameComponent(g graph.Undirected, a, b int) bool {
	for _, comp := range topo.ConnectedComponents(g) {
		hasA, hasB := false, false
		for _, n := range comp {
			id := int(n.ID())
			hasA = hasA || id == a
			hasB = hasB || id == b
		}
		if hasA && hasB {
			return true
		}
		if hasA || hasB {
			return false
		}
	}
	return false
}
