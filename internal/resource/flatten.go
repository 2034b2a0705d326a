package resource

// Flat is the flattened view of one namespace: leaf key paths in document
// order plus the value stored at each path.
type Flat struct {
	Paths  []string
	Values map[string]Tree

	// Collisions lists paths produced twice, e.g. a literal "a.b" key next
	// to a nested a → b. The first value is kept.
	Collisions []string
}

// EmptyFlat returns a Flat with no paths. Absent or unparsable namespaces are
// represented this way so downstream checks see an empty tree.
func EmptyFlat() *Flat {
	return &Flat{Values: map[string]Tree{}}
}

// Flatten walks tree and returns its leaf key paths joined with ".".
// Only objects are descended into; an empty object contributes no paths.
func Flatten(tree Tree) *Flat {
	flat := EmptyFlat()
	flattenInto(flat, "", tree)
	return flat
}

func flattenInto(flat *Flat, prefix string, tree Tree) {
	switch node := tree.(type) {
	case *Object:
		for _, key := range node.Keys() {
			child, _ := node.Get(key)
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			flattenInto(flat, path, child)
		}
	case nil:
	default:
		if prefix == "" {
			// A non-object root has no addressable leaves.
			return
		}
		if _, dup := flat.Values[prefix]; dup {
			flat.Collisions = append(flat.Collisions, prefix)
			return
		}
		flat.Paths = append(flat.Paths, prefix)
		flat.Values[prefix] = node
	}
}

// String returns the string value at path, reporting false when the path is
// absent or not a Leaf.
func (f *Flat) String(path string) (string, bool) {
	leaf, ok := f.Values[path].(Leaf)
	return string(leaf), ok
}

// Has reports whether path is a leaf of f.
func (f *Flat) Has(path string) bool {
	_, ok := f.Values[path]
	return ok
}

// KeySet returns the set of leaf paths.
func (f *Flat) KeySet() map[string]struct{} {
	set := make(map[string]struct{}, len(f.Paths))
	for _, p := range f.Paths {
		set[p] = struct{}{}
	}
	return set
}
