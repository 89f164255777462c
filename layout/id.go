package layout

import "hash/fnv"

// ElementID hashes an element name to the stable identifier carried on its
// render commands. FNV-1a, so the same name always maps to the same ID.
func ElementID(name string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return h.Sum32()
}
