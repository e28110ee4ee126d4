package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/bfs"
	"github.com/katalvlaran/wordgraph/builder"
)

const sample = "To explore strange new worlds, To seek out new life and new civilizations"

func TestBFS_OrderAndLayers(t *testing.T) {
	g := builder.FromText(sample)
	res, err := bfs.BFS(g, "new")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"new", "civilizations", "life", "worlds", "and", "to", "explore", "seek", "strange", "out",
	}, res.Order)
	assert.Equal(t, [][]string{
		{"new"},
		{"civilizations", "life", "worlds"},
		{"and", "to"},
		{"explore", "seek"},
		{"out", "strange"},
	}, res.Layers())

	path, err := res.PathTo("out")
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "worlds", "to", "seek", "out"}, path)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := builder.FromText(sample)
	res, err := bfs.BFS(g, "new", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "civilizations", "life", "worlds", "and", "to"}, res.Order)

	_, err = res.PathTo("explore")
	assert.Error(t, err)
}

func TestBFS_DeadEndStart(t *testing.T) {
	res, err := bfs.BFS(builder.FromText(sample), "civilizations")
	require.NoError(t, err)
	assert.Equal(t, []string{"civilizations"}, res.Order)
	assert.Equal(t, [][]string{{"civilizations"}}, res.Layers())
}

func TestBFS_Errors(t *testing.T) {
	g := builder.FromText(sample)

	_, err := bfs.BFS(nil, "new")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.BFS(g, "hello")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, "new", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "new", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "worlds" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "new", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
