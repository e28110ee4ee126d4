package bridge_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/builder"
)

// ExampleFind looks up the bridge words between two words of a sentence.
func ExampleFind() {
	g := builder.FromText("To explore strange new worlds, To seek out new life and new civilizations")
	words, err := bridge.Find(g, "new", "to")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(bridge.FormatList(words))
	// Output: worlds
}
