package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// BoundingBox returns the coordinate extents over all nodes. ok is
// false when the database holds no nodes.
func (db *Database) BoundingBox() (min, max [3]float64, ok bool) {
	if len(db.Nodes) == 0 {
		return
	}
	xs := make([]float64, len(db.Nodes))
	ys := make([]float64, len(db.Nodes))
	zs := make([]float64, len(db.Nodes))
	for i, n := range db.Nodes {
		xs[i], ys[i], zs[i] = n.X, n.Y, n.Z
	}
	min = [3]float64{floats.Min(xs), floats.Min(ys), floats.Min(zs)}
	max = [3]float64{floats.Max(xs), floats.Max(ys), floats.Max(zs)}
	return min, max, true
}

// PrintBoundingBox writes the extents in the usual post-read summary form.
func (db *Database) PrintBoundingBox() {
	min, max, ok := db.BoundingBox()
	if !ok {
		return
	}
	fmt.Printf("Bounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f\nZMin/ZMax = %5.3f, %5.3f\n",
		min[0], max[0], min[1], max[1], min[2], max[2])
}
