package builder_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/builder"
)

// ExampleFromText builds the graph of a short sentence and prints its edges.
func ExampleFromText() {
	g := builder.FromText("The cat saw the cat.")
	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s (%d)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// the -> cat (2)
	// cat -> saw (1)
	// saw -> the (1)
}
