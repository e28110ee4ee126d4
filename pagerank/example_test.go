package pagerank_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/pagerank"
)

// ExamplePageRank ranks the words of a three-word cycle.
func ExamplePageRank() {
	g := builder.FromText("rock paper scissors rock")
	res, err := pagerank.PageRank(context.Background(), g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range res.Top(3) {
		fmt.Printf("%d %s %.4f\n", r.Rank, r.ID, r.Score)
	}
	// Output:
	// 1 paper 0.3333
	// 2 rock 0.3333
	// 3 scissors 0.3333
}
