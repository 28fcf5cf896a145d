package mesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCombined: two parts sharing node 3, plus a node no element uses.
func buildCombined(t *testing.T) *Database {
	t.Helper()
	db := NewDatabase()
	for _, n := range []Node{
		{ID: 3, X: 3, Y: 0, Z: 0},
		{ID: 7, X: 7, Y: 0, Z: 0},
		{ID: 12, X: 12, Y: 0, Z: 0},
		{ID: 20, X: 20, Y: 0, Z: 0},
		{ID: 99, X: 99, Y: 0, Z: 0}, // referenced by no element
	} {
		db.InsertNode(n)
	}
	// part 5 references nodes in field order 7, 3, then 7, 12
	require.NoError(t, db.InsertElement(Element{ID: 100, PartID: 5, Nodes: [8]int{7, 3, 0, 0, 0, 0, 0, 0}}))
	require.NoError(t, db.InsertElement(Element{ID: 101, PartID: 5, Nodes: [8]int{7, 12, 0, 0, 0, 0, 0, 0}}))
	// part 6 shares node 3
	require.NoError(t, db.InsertElement(Element{ID: 102, PartID: 6, Nodes: [8]int{3, 20, 0, 0, 0, 0, 0, 0}}))
	db.RecordPartName(5, "beam pair")
	db.RecordPartName(6, "tail")
	return db
}

func TestExtractPartFirstEncounterOrder(t *testing.T) {
	db := buildCombined(t)
	part, err := db.ExtractPart(5)
	require.NoError(t, err)

	require.Equal(t, 2, part.NumElements())
	assert.Equal(t, 100, part.Elements[0].ID)
	assert.Equal(t, 101, part.Elements[1].ID)

	// node copy order follows the connectivity scan, not numeric order
	require.Equal(t, 3, part.NumNodes())
	assert.Equal(t, []int{7, 3, 12}, []int{part.Nodes[0].ID, part.Nodes[1].ID, part.Nodes[2].ID})
	assert.Equal(t, "beam pair", part.PartNames[5])
}

func TestRenumberDense(t *testing.T) {
	db := buildCombined(t)
	part, err := db.ExtractPart(5)
	require.NoError(t, err)
	renum, err := part.Renumber()
	require.NoError(t, err)

	// nodes 7, 3, 12 become 1, 2, 3; coordinates are untouched
	require.Equal(t, 3, renum.NumNodes())
	for i, want := range []float64{7, 3, 12} {
		assert.Equal(t, i+1, renum.Nodes[i].ID)
		assert.Equal(t, want, renum.Nodes[i].X)
	}

	// elements become 1..M with remapped slots; the 0 sentinel survives
	require.Equal(t, 2, renum.NumElements())
	assert.Equal(t, 1, renum.Elements[0].ID)
	assert.Equal(t, [8]int{1, 2, 0, 0, 0, 0, 0, 0}, renum.Elements[0].Nodes)
	assert.Equal(t, 2, renum.Elements[1].ID)
	assert.Equal(t, [8]int{1, 3, 0, 0, 0, 0, 0, 0}, renum.Elements[1].Nodes)
	assert.Equal(t, 5, renum.Elements[0].PartID)
}

func TestSharedNodeAppearsInBothParts(t *testing.T) {
	db := buildCombined(t)
	p5, err := db.ExtractPart(5)
	require.NoError(t, err)
	p6, err := db.ExtractPart(6)
	require.NoError(t, err)

	_, in5 := p5.Node(3)
	_, in6 := p6.Node(3)
	assert.True(t, in5)
	assert.True(t, in6)

	r6, err := p6.Renumber()
	require.NoError(t, err)
	// independently renumbered: shared node 3 is node 1 of part 6
	assert.Equal(t, 3.0, r6.Nodes[0].X)
	assert.Equal(t, 1, r6.Nodes[0].ID)
}

func TestExtractRenumberDeterministic(t *testing.T) {
	db := buildCombined(t)
	run := func() *Database {
		part, err := db.ExtractPart(5)
		require.NoError(t, err)
		renum, err := part.Renumber()
		require.NoError(t, err)
		return renum
	}
	assert.Equal(t, run(), run())
}

func TestExtractPartMissingNode(t *testing.T) {
	db := NewDatabase()
	db.InsertNode(Node{ID: 1})
	require.NoError(t, db.InsertElement(Element{ID: 1, PartID: 1, Nodes: [8]int{1, 2, 0, 0, 0, 0, 0, 0}}))
	_, err := db.ExtractPart(1)
	var inc *InconsistentDatabaseError
	require.True(t, errors.As(err, &inc))
	assert.Equal(t, 2, inc.NodeID)
	assert.Equal(t, 1, inc.ElementID)
}

func TestExtractPartEmpty(t *testing.T) {
	db := buildCombined(t)
	part, err := db.ExtractPart(17)
	require.NoError(t, err)
	assert.Equal(t, 0, part.NumNodes())
	assert.Equal(t, 0, part.NumElements())
}
