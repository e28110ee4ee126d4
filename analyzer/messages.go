package analyzer

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wordgraph/bridge"
)

// Result strings shown to users.
const (
	msgNeedTwoWords  = "Please enter two words!"
	msgNeedStartWord = "Please enter a start word!"
)

func msgBothAbsent(w1, w2 string) string {
	return fmt.Sprintf("No %q and %q in the graph!", w1, w2)
}

func msgAbsent(w string) string {
	return fmt.Sprintf("No %q in the graph!", w)
}

func msgNoBridge(w1, w2 string) string {
	return fmt.Sprintf("No bridge words from %q to %q!", w1, w2)
}

func msgBridges(w1, w2 string, words []string) string {
	if len(words) == 1 {
		return fmt.Sprintf("The bridge words from %q to %q is: %q", w1, w2, words[0])
	}

	return fmt.Sprintf("The bridge words from %q to %q are: %s", w1, w2, bridge.FormatList(words))
}

func msgUnreachable(w1, w2 string) string {
	return fmt.Sprintf("%q to %q is unreachable!", w1, w2)
}

func formatPath(path []string, length int64) string {
	return fmt.Sprintf("%s (length=%d)", strings.Join(path, " -> "), length)
}

func msgShortestPath(path []string, length int64) string {
	return "Shortest path: " + formatPath(path, length)
}

func msgTargetLine(src, dst string, path []string, length int64) string {
	return fmt.Sprintf("%s -> %s: %s", src, dst, formatPath(path, length))
}

func msgTargetUnreachable(src, dst string) string {
	return fmt.Sprintf("%s -> %s: unreachable", src, dst)
}

func msgNothingFollows(w string) string {
	return fmt.Sprintf("No word follows %q!", w)
}

func msgReach(src string, maxDepth int, layers [][]string) string {
	var sb strings.Builder
	switch {
	case maxDepth == 1:
		fmt.Fprintf(&sb, "Reachable from %q within 1 step:", src)
	case maxDepth > 1:
		fmt.Fprintf(&sb, "Reachable from %q within %d steps:", src, maxDepth)
	default:
		fmt.Fprintf(&sb, "Reachable from %q:", src)
	}
	for i, words := range layers {
		fmt.Fprintf(&sb, "\n%d: %s", i+1, strings.Join(words, ", "))
	}

	return sb.String()
}
