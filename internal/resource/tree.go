// Package resource loads per-locale translation namespaces into typed trees
// and flattens them into ordered key paths.
//
// Import Path: wsl-ui.dev/locheck/internal/resource
package resource

// Tree is one node of a namespace resource file. The concrete type is one of
// Leaf, Array, Scalar or *Object; callers pattern-match with a type switch.
type Tree interface {
	isTree()
}

// Leaf is a translatable string value.
type Leaf string

// Array is an opaque list value. It is never traversed.
type Array []any

// Scalar is a null, number or boolean leaf. Resource files are not expected to
// contain them; Structural Integrity reports each one.
type Scalar struct {
	Raw string
}

// Object is an ordered mapping of keys to child trees.
type Object struct {
	keys     []string
	children map[string]Tree
}

func (Leaf) isTree()    {}
func (Array) isTree()   {}
func (Scalar) isTree()  {}
func (*Object) isTree() {}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{children: make(map[string]Tree)}
}

// Set appends key with value. It returns false and leaves the object
// unchanged when key is already present, so the first occurrence wins.
func (o *Object) Set(key string, value Tree) bool {
	if _, exists := o.children[key]; exists {
		return false
	}
	o.keys = append(o.keys, key)
	o.children[key] = value
	return true
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return o.keys
}

// Get returns the child stored under key.
func (o *Object) Get(key string) (Tree, bool) {
	v, ok := o.children[key]
	return v, ok
}

// Len returns the number of direct children.
func (o *Object) Len() int {
	return len(o.keys)
}
