package writers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meshtools/keyraw/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singlePart(t *testing.T) *mesh.Database {
	t.Helper()
	db := mesh.NewDatabase()
	db.InsertNode(mesh.Node{ID: 1, X: 0, Y: 0, Z: 1.5})
	db.InsertNode(mesh.Node{ID: 2, X: -2.25, Y: 1e-3, Z: 0})
	require.NoError(t, db.InsertElement(mesh.Element{ID: 1, PartID: 5, Nodes: [8]int{1, 2, 0, 0, 0, 0, 0, 0}}))
	return db
}

func TestWriteRawPart(t *testing.T) {
	base := filepath.Join(t.TempDir(), "car-bumper")
	require.NoError(t, WriteRawPart(base, singlePart(t)))

	nodes, err := os.ReadFile(base + "-nodes.txt")
	require.NoError(t, err)
	nodeLines := strings.Split(strings.TrimRight(string(nodes), "\n"), "\n")
	require.Len(t, nodeLines, 2)
	assert.Equal(t, "1\t0.0000000000000000e+00\t0.0000000000000000e+00\t1.5000000000000000e+00", nodeLines[0])
	assert.Equal(t, "2\t-2.2500000000000000e+00\t1.0000000000000000e-03\t0.0000000000000000e+00", nodeLines[1])

	elems, err := os.ReadFile(base + "-elements.txt")
	require.NoError(t, err)
	elemLines := strings.Split(strings.TrimRight(string(elems), "\n"), "\n")
	require.Len(t, elemLines, 1)
	assert.Equal(t, "1\t1\t2\t0\t0\t0\t0\t0\t0", elemLines[0])
}

func TestWriteRawPartRejectsMixedParts(t *testing.T) {
	db := singlePart(t)
	require.NoError(t, db.InsertElement(mesh.Element{ID: 2, PartID: 6, Nodes: [8]int{1, 2, 0, 0, 0, 0, 0, 0}}))
	err := WriteRawPart(filepath.Join(t.TempDir(), "bad"), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal")
}

func TestWriteRawPartBadDirectory(t *testing.T) {
	err := WriteRawPart(filepath.Join(t.TempDir(), "no", "such", "dir", "x"), singlePart(t))
	assert.Error(t, err)
}
