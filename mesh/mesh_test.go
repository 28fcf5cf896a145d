package mesh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndLookup(t *testing.T) {
	db := NewDatabase()
	db.InsertNode(Node{ID: 7, X: 1, Y: 2, Z: 3})
	db.InsertNode(Node{ID: 3, X: 4, Y: 5, Z: 6})
	require.NoError(t, db.InsertElement(Element{ID: 10, PartID: 5, Nodes: [8]int{7, 3}}))

	n, ok := db.Node(3)
	require.True(t, ok)
	assert.Equal(t, 4.0, n.X)

	e, ok := db.Element(10)
	require.True(t, ok)
	assert.Equal(t, 5, e.PartID)

	_, ok = db.Node(99)
	assert.False(t, ok)
	_, ok = db.Element(99)
	assert.False(t, ok)
}

func TestDuplicateElementInsertFails(t *testing.T) {
	db := NewDatabase()
	require.NoError(t, db.InsertElement(Element{ID: 1, PartID: 1}))
	err := db.InsertElement(Element{ID: 1, PartID: 2})
	var dup *DuplicateElementError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, 1, dup.ID)
	assert.Equal(t, 1, db.NumElements())
}

func TestPartIDs(t *testing.T) {
	db := NewDatabase()
	require.NoError(t, db.InsertElement(Element{ID: 1, PartID: 9}))
	require.NoError(t, db.InsertElement(Element{ID: 2, PartID: 2}))
	require.NoError(t, db.InsertElement(Element{ID: 3, PartID: 9}))
	db.RecordPartName(5, "named but empty")
	assert.Equal(t, []int{2, 5, 9}, db.PartIDs())
}

func TestBoundingBox(t *testing.T) {
	db := NewDatabase()
	_, _, ok := db.BoundingBox()
	assert.False(t, ok)

	db.InsertNode(Node{ID: 1, X: -1, Y: 0, Z: 2})
	db.InsertNode(Node{ID: 2, X: 3, Y: -4, Z: 1})
	min, max, ok := db.BoundingBox()
	require.True(t, ok)
	assert.Equal(t, [3]float64{-1, -4, 1}, min)
	assert.Equal(t, [3]float64{3, 0, 2}, max)
}
