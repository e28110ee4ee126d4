package dfs

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// TopologicalSort orders every vertex so that each edge u→v has u before v.
// Returns ErrCycleDetected (naming the offending word) when g has a cycle,
// self-loops included.
func TopologicalSort(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := &topoSorter{
		g:     g,
		state: make(map[string]int, g.VertexCount()),
		order: make([]string, 0, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

type topoSorter struct {
	g     *core.Graph
	state map[string]int
	order []string // post-order, reversed at the end
}

func (s *topoSorter) visit(id string) error {
	s.state[id] = Gray
	succ, err := s.g.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nbr := range succ {
		switch s.state[nbr] {
		case White:
			if err := s.visit(nbr); err != nil {
				return err
			}
		case Gray:
			return fmt.Errorf("%w: at %q", ErrCycleDetected, nbr)
		}
	}
	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}
