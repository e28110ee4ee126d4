package core_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// ExampleGraph demonstrates weight accumulation and dangling vertices.
func ExampleGraph() {
	g := core.NewGraph()

	// "new life and new life"
	g.AddEdge("new", "life", 1)
	g.AddEdge("life", "and", 1)
	g.AddEdge("and", "new", 1)
	g.AddEdge("new", "life", 1)

	w, _ := g.Weight("new", "life")
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("new→life weight:", w)
	fmt.Println("Edges:", g.EdgeCount())

	// Output:
	// Vertices: [and life new]
	// new→life weight: 2
	// Edges: 3
}
