package walk_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/walk"
)

// ExampleWalk follows a chain until it runs out of edges.
func ExampleWalk() {
	g := builder.FromText("one small step for man")
	res, err := walk.Walk(g, walk.WithStart("small"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Nodes, "-", res.Stop)
	// Output:
	// [small step for man] - dead end
}
