package collision

import "encoding/binary"

// branchLike is anything that exposes a flat list of child nodes to pack as
// one branch table: either the octree root (nx*ny*nz entries) or a regular
// branch node (always 8 entries).
type branchLike interface {
	packChildren() []*octreeNode
}

func (o *octree) packChildren() []*octreeNode { return o.top }
func (n *octreeNode) packChildren() []*octreeNode {
	out := make([]*octreeNode, len(n.children))
	copy(out, n.children[:])
	return out
}

// indexListKey canonicalizes an ordered triangle-index tuple into a
// comparable map key. Order is significant: two leaves with the same set of
// indices in a different order are never merged.
func indexListKey(indices []uint32) string {
	buf := make([]byte, 4*len(indices))
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[4*i:], idx)
	}
	return string(buf)
}

// indexListTable tracks, in first-seen order, the byte offset (within the
// index-list region) assigned to each distinct non-empty index tuple.
type indexListTable struct {
	offsetOf map[string]int64
	tupleOf  map[string][]uint32
	order    []string
}

func newIndexListTable() *indexListTable {
	return &indexListTable{
		offsetOf: make(map[string]int64),
		tupleOf:  make(map[string][]uint32),
	}
}

func (t *indexListTable) seen(key string) bool {
	_, ok := t.offsetOf[key]
	return ok
}

func (t *indexListTable) add(key string, tuple []uint32, offset int64) {
	t.offsetOf[key] = offset
	t.tupleOf[key] = tuple
	t.order = append(t.order, key)
}

// packOctree serializes o as two contiguous regions: branch tables (BFS
// order of discovery, root's top-level grid first) then deduplicated index
// lists, using 32-bit relative offsets biased per §4.5.
func (e *emitter) packOctree(o *octree) error {
	branches := []branchLike{o}
	table := newIndexListTable()
	var freeListOffset int64

	for i := 0; i < len(branches); i++ {
		for _, node := range branches[i].packChildren() {
			if node.isLeaf {
				if len(node.indices) == 0 {
					continue
				}
				key := indexListKey(node.indices)
				if table.seen(key) {
					continue
				}
				table.add(key, node.indices, freeListOffset)
				freeListOffset += 2 * int64(len(node.indices)+1)
			} else {
				branches = append(branches, node)
			}
		}
	}

	var listBase int64
	for _, b := range branches {
		listBase += 4 * int64(len(b.packChildren()))
	}
	emptyListOffset := freeListOffset - 2

	var branchBase int64
	freeBranchOffset := int64(4 * len(branches[0].packChildren()))

	for _, b := range branches {
		children := b.packChildren()
		for _, node := range children {
			if node.isLeaf {
				var listOffset int64
				if len(node.indices) == 0 {
					listOffset = emptyListOffset
				} else {
					listOffset = table.offsetOf[indexListKey(node.indices)]
				}
				value := uint32(0x80000000 | uint32(listBase+listOffset-2-branchBase))
				if err := e.writeU32(value); err != nil {
					return err
				}
			} else {
				if err := e.writeU32(uint32(freeBranchOffset - branchBase)); err != nil {
					return err
				}
				freeBranchOffset += 4 * int64(len(node.children))
			}
		}
		branchBase += 4 * int64(len(children))
	}

	for _, key := range table.order {
		for _, idx := range table.tupleOf[key] {
			if err := e.writeU16(uint16(idx + 1)); err != nil {
				return err
			}
		}
		if err := e.writeU16(0); err != nil {
			return err
		}
	}

	return nil
}
