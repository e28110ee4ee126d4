package dfs

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// FindCycle returns the first cycle met by DFS as a closed sequence whose
// first and last elements are equal, or nil when g is acyclic.
func FindCycle(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	f := &cycleFinder{
		g:     g,
		state: make(map[string]int, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		if f.state[v] != White {
			continue
		}
		if err := f.visit(v); err != nil {
			return nil, err
		}
		if f.cycle != nil {
			return f.cycle, nil
		}
	}

	return nil, nil
}

type cycleFinder struct {
	g     *core.Graph
	state map[string]int
	path  []string
	cycle []string
}

// visit stops descending as soon as a cycle has been recorded.
func (f *cycleFinder) visit(id string) error {
	f.state[id] = Gray
	f.path = append(f.path, id)

	succ, err := f.g.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nbr := range succ {
		switch f.state[nbr] {
		case White:
			if err := f.visit(nbr); err != nil {
				return err
			}
		case Gray:
			f.cycle = closeCycle(f.path, nbr)
		}
		if f.cycle != nil {
			return nil
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return nil
}

// closeCycle copies path from the first occurrence of start and appends start.
func closeCycle(path []string, start string) []string {
	idx := 0
	for i, v := range path {
		if v == start {
			idx = i
			break
		}
	}
	cycle := make([]string, 0, len(path)-idx+1)
	cycle = append(cycle, path[idx:]...)

	return append(cycle, start)
}
