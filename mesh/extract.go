package mesh

// ExtractPart returns a new database holding only the elements of the
// given part and the nodes they reference. Elements keep their global
// insertion order; nodes are copied in first-encounter order, scanning
// each selected element's connectivity slots in field order. Slots of 0
// are never looked up. A node shared with another part is copied here
// too; parts do not partition the node set.
func (db *Database) ExtractPart(pid int) (*Database, error) {
	part := NewDatabase()
	if name, ok := db.PartNames[pid]; ok {
		part.PartNames[pid] = name
	}
	for _, e := range db.Elements {
		if e.PartID != pid {
			continue
		}
		for _, nid := range e.Nodes {
			if nid == 0 {
				continue
			}
			if _, have := part.nodeIndex[nid]; have {
				continue
			}
			n, ok := db.Node(nid)
			if !ok {
				return nil, &InconsistentDatabaseError{NodeID: nid, ElementID: e.ID}
			}
			part.InsertNode(n)
		}
		if err := part.InsertElement(e); err != nil {
			return nil, err
		}
	}
	return part, nil
}

// Renumber rewrites a single-part database with dense 1-based ids:
// nodes are renumbered 1..N in their current order, elements 1..M in
// theirs. Connectivity slots are rewritten through the node remapping,
// with the unused-slot sentinel 0 preserved. Coordinates and part ids
// are unchanged; original element ids are discarded.
func (part *Database) Renumber() (*Database, error) {
	remap := make(map[int]int, len(part.Nodes)+1)
	remap[0] = 0
	out := NewDatabase()
	for pid, name := range part.PartNames {
		out.PartNames[pid] = name
	}
	for i, n := range part.Nodes {
		remap[n.ID] = i + 1
		out.InsertNode(Node{ID: i + 1, X: n.X, Y: n.Y, Z: n.Z})
	}
	for i, e := range part.Elements {
		ne := Element{ID: i + 1, PartID: e.PartID}
		for j, nid := range e.Nodes {
			nn, ok := remap[nid]
			if !ok {
				return nil, &InconsistentDatabaseError{NodeID: nid, ElementID: e.ID}
			}
			ne.Nodes[j] = nn
		}
		if err := out.InsertElement(ne); err != nil {
			return nil, err
		}
	}
	return out, nil
}
