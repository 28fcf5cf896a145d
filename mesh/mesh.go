package mesh

import (
	"fmt"
	"sort"
)

// Node is one grid point with its externally supplied id.
type Node struct {
	ID      int
	X, Y, Z float64
}

// Element is one finite element. Nodes holds exactly eight connectivity
// slots in field order; a slot of 0 means the slot is unused and must
// never be used as a node lookup key.
type Element struct {
	ID     int
	PartID int
	Nodes  [8]int
}

// Database is an append-only store of nodes and elements with
// id-to-position indices and a part id to part name table. It is built
// incrementally, possibly from several input files in sequence; element
// id uniqueness is enforced across the whole combined input.
type Database struct {
	Nodes    []Node
	Elements []Element

	nodeIndex map[int]int
	elemIndex map[int]int

	PartNames map[int]string
}

func NewDatabase() *Database {
	return &Database{
		nodeIndex: make(map[int]int),
		elemIndex: make(map[int]int),
		PartNames: make(map[int]string),
	}
}

// InsertNode appends n. Node id collisions are not checked; the index
// keeps the most recent position for an id.
func (db *Database) InsertNode(n Node) {
	db.nodeIndex[n.ID] = len(db.Nodes)
	db.Nodes = append(db.Nodes, n)
}

// InsertElement appends e. Inserting a second element with an id
// already in the database fails.
func (db *Database) InsertElement(e Element) error {
	if _, dup := db.elemIndex[e.ID]; dup {
		return &DuplicateElementError{ID: e.ID}
	}
	db.elemIndex[e.ID] = len(db.Elements)
	db.Elements = append(db.Elements, e)
	return nil
}

// Node returns the node with the given id.
func (db *Database) Node(id int) (Node, bool) {
	pos, ok := db.nodeIndex[id]
	if !ok {
		return Node{}, false
	}
	return db.Nodes[pos], true
}

// Element returns the element with the given id.
func (db *Database) Element(id int) (Element, bool) {
	pos, ok := db.elemIndex[id]
	if !ok {
		return Element{}, false
	}
	return db.Elements[pos], true
}

func (db *Database) RecordPartName(pid int, name string) {
	db.PartNames[pid] = name
}

func (db *Database) NumNodes() int {
	return len(db.Nodes)
}

func (db *Database) NumElements() int {
	return len(db.Elements)
}

// PartIDs returns every part id referenced by an element or named by a
// PART card, ascending.
func (db *Database) PartIDs() []int {
	seen := make(map[int]bool)
	for _, e := range db.Elements {
		seen[e.PartID] = true
	}
	for pid := range db.PartNames {
		seen[pid] = true
	}
	ids := make([]int, 0, len(seen))
	for pid := range seen {
		ids = append(ids, pid)
	}
	sort.Ints(ids)
	return ids
}

// DuplicateElementError reports an ELEMENT card whose id collides with
// one already inserted.
type DuplicateElementError struct {
	ID int
}

func (e *DuplicateElementError) Error() string {
	return fmt.Sprintf("found two elements with the same element id %d", e.ID)
}

// InconsistentDatabaseError reports a node reference with no matching
// node entry. This indicates a corrupt database, not bad user input.
type InconsistentDatabaseError struct {
	NodeID    int
	ElementID int
}

func (e *InconsistentDatabaseError) Error() string {
	return fmt.Sprintf("element %d references node %d which is not in the database", e.ElementID, e.NodeID)
}
