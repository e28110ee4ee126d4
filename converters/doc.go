// Package converters exports a word graph to flat representations for
// collaborators outside the analysis core:
//
//   - EdgeList: (from, to, weight) triples in first-occurrence order.
//   - ToMatrix: dense adjacency matrix over the sorted vertex list.
//   - WriteDOT: Graphviz "digraph" text with weights as edge labels.
//
// Nothing here touches the filesystem or runs a renderer; callers decide
// where the bytes go.
package converters
