package threadgraph_test

import (
	"bytes"
	"encoding/xml"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lychrel/threadgraph"
)

// mergingThreads are the first steps of three seeds that join at 887.
var mergingThreads = [][]string{
	{"196", "887", "1675"},
	{"295", "887", "1675"},
	{"394", "887"},
}

// TestFromThreads_Merge unifies equal values across threads.
func TestFromThreads_Merge(t *testing.T) {
	g, err := threadgraph.FromThreads(mergingThreads)
	require.NoError(t, err)

	assert.Equal(t, []string{"1675", "196", "295", "394", "887"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount(), "repeated 1675→887 is stored once")
	assert.Equal(t, []string{"196", "295", "394"}, g.Seeds())

	in, out, err := g.Degree("887")
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 3, out)

	succ, err := g.Successors("887")
	require.NoError(t, err)
	assert.Equal(t, []string{"196", "295", "394"}, succ)

	pred, err := g.Predecessors("887")
	require.NoError(t, err)
	assert.Equal(t, []string{"1675"}, pred)

	assert.True(t, g.HasEdge("887", "196"))
	assert.False(t, g.HasEdge("196", "887"), "edges point to the earlier value")
}

// TestAddEdge_Rules covers idempotence, loops and empty IDs.
func TestAddEdge_Rules(t *testing.T) {
	g := threadgraph.NewGraph()

	e1, err := g.AddEdge("8", "4")
	require.NoError(t, err)
	e2, err := g.AddEdge("8", "4")
	require.NoError(t, err)
	assert.Equal(t, e1, e2)
	assert.Equal(t, 1, g.EdgeCount())

	_, err = g.AddEdge("0", "0")
	assert.ErrorIs(t, err, threadgraph.ErrLoopNotAllowed)

	_, err = g.AddEdge("", "4")
	assert.ErrorIs(t, err, threadgraph.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddVertex(""), threadgraph.ErrEmptyVertexID)
	assert.ErrorIs(t, g.MarkSeed(""), threadgraph.ErrEmptyVertexID)

	looped := threadgraph.NewGraph(threadgraph.WithLoops())
	_, err = looped.AddEdge("0", "0")
	assert.NoError(t, err)
}

// TestQueries_Missing reports ErrVertexNotFound.
func TestQueries_Missing(t *testing.T) {
	g := threadgraph.NewGraph()
	_, err := g.Successors("x")
	assert.ErrorIs(t, err, threadgraph.ErrVertexNotFound)
	_, err = g.Predecessors("x")
	assert.ErrorIs(t, err, threadgraph.ErrVertexNotFound)
	_, _, err = g.Degree("x")
	assert.ErrorIs(t, err, threadgraph.ErrVertexNotFound)
	_, err = g.Vertex("x")
	assert.ErrorIs(t, err, threadgraph.ErrVertexNotFound)
}

// TestEdges_InsertionOrder keeps e1, e2, … order past e9.
func TestEdges_InsertionOrder(t *testing.T) {
	g := threadgraph.NewGraph()
	prev := "1"
	for _, v := range []string{"2", "4", "8", "16", "77", "154", "605", "1111", "2222", "4444", "8888"} {
		_, err := g.AddEdge(v, prev)
		require.NoError(t, err)
		prev = v
	}
	edges := g.Edges()
	require.Len(t, edges, 11)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e10", edges[9].ID)
	assert.Equal(t, "e11", edges[10].ID)
	assert.Equal(t, threadgraph.Edge{ID: "e11", From: "8888", To: "4444"}, edges[10])
}

// TestReach lists feeders of a merge point, nearest first.
func TestReach(t *testing.T) {
	g, err := threadgraph.FromThreads(mergingThreads)
	require.NoError(t, err)

	res, err := threadgraph.Reach(g, "1675")
	require.NoError(t, err)
	assert.Equal(t, []string{"1675", "887", "196", "295", "394"}, res.Order)
	assert.Equal(t, 2, res.Depth["394"])
	assert.Equal(t, "887", res.Parent["196"])

	res, err = threadgraph.Reach(g, "1675", threadgraph.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"1675", "887"}, res.Order)
}

// TestReach_Errors covers invalid input and hook failures.
func TestReach_Errors(t *testing.T) {
	g, err := threadgraph.FromThreads(mergingThreads)
	require.NoError(t, err)

	_, err = threadgraph.Reach(nil, "887")
	assert.ErrorIs(t, err, threadgraph.ErrGraphNil)

	_, err = threadgraph.Reach(g, "42")
	assert.ErrorIs(t, err, threadgraph.ErrVertexNotFound)

	_, err = threadgraph.Reach(g, "887", threadgraph.WithMaxDepth(-1))
	assert.ErrorIs(t, err, threadgraph.ErrOptionViolation)

	boom := errors.New("boom")
	_, err = threadgraph.Reach(g, "887", threadgraph.WithOnVisit(func(id string, _ int) error {
		if id == "295" {
			return boom
		}

		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

// TestWriteGraphML emits a parseable directed document.
func TestWriteGraphML(t *testing.T) {
	g, err := threadgraph.FromThreads([][]string{{"4", "8"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, threadgraph.WriteGraphML(&buf, g))
	out := buf.String()

	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<graph edgedefault="directed">`)
	assert.Contains(t, out, `<key id="d0" for="node" attr.name="seed" attr.type="boolean"></key>`)
	assert.Contains(t, out, `<edge id="e1" source="8" target="4"></edge>`)

	var doc struct {
		Nodes []struct {
			ID   string `xml:"id,attr"`
			Data string `xml:"data"`
		} `xml:"graph>node"`
		Edges []struct {
			Source string `xml:"source,attr"`
			Target string `xml:"target,attr"`
		} `xml:"graph>edge"`
	}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, "4", doc.Nodes[0].ID)
	assert.Equal(t, "true", doc.Nodes[0].Data)
	assert.Equal(t, "false", doc.Nodes[1].Data)
	require.Len(t, doc.Edges, 1)
	assert.Equal(t, "8", doc.Edges[0].Source)

	assert.ErrorIs(t, threadgraph.WriteGraphML(&buf, nil), threadgraph.ErrGraphNil)
}

// TestConcurrentAddEdge exercises the lock under parallel writers.
func TestConcurrentAddEdge(t *testing.T) {
	g := threadgraph.NewGraph()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, _ = g.AddEdge("887", "196")
				_ = g.Vertices()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.VertexCount())
}
