package writers

import (
	"bufio"
	"fmt"
	"os"

	"github.com/meshtools/keyraw/mesh"
)

// WriteRawPart serializes a single-part database to two tab separated
// files, <base>-nodes.txt and <base>-elements.txt. Node lines carry
// id, x, y, z with 17 significant digits; element lines carry id and
// the eight connectivity slots. Every element must share one part id;
// a mixed database here is a bug in the caller, not user input.
func WriteRawPart(base string, part *mesh.Database) error {
	if err := checkSinglePart(part); err != nil {
		return err
	}
	if err := writeNodes(base+"-nodes.txt", part); err != nil {
		return err
	}
	return writeElements(base+"-elements.txt", part)
}

func checkSinglePart(part *mesh.Database) error {
	for _, e := range part.Elements {
		if e.PartID != part.Elements[0].PartID {
			return fmt.Errorf("internal: database mixes part ids %d and %d",
				part.Elements[0].PartID, e.PartID)
		}
	}
	return nil
}

func writeNodes(name string, part *mesh.Database) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", name, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, n := range part.Nodes {
		fmt.Fprintf(w, "%d\t%.16e\t%.16e\t%.16e\n", n.ID, n.X, n.Y, n.Z)
	}
	return w.Flush()
}

func writeElements(name string, part *mesh.Database) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", name, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, e := range part.Elements {
		fmt.Fprintf(w, "%d", e.ID)
		for _, nid := range e.Nodes {
			fmt.Fprintf(w, "\t%d", nid)
		}
		fmt.Fprintf(w, "\n")
	}
	return w.Flush()
}
