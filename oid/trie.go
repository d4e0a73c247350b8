package oid

import "sort"

// trieNode is one level of a Trie. A node exists only if it holds a
// value or has at least one child; remove() prunes nodes that no longer
// satisfy that invariant.
type trieNode[V any] struct {
	value    V
	hasValue bool
	children map[uint32]*trieNode[V]
}

func newTrieNode[V any]() *trieNode[V] {
	return &trieNode[V]{children: make(map[uint32]*trieNode[V])}
}

// sortedKeys returns the node's child sub-identifiers in ascending order.
// Go maps carry no ordering guarantee, unlike the BTreeMap this trie is
// ported from, so every operation that must walk children in order takes
// a fresh sorted snapshot here.
func (n *trieNode[V]) sortedKeys() []uint32 {
	keys := make([]uint32, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// TrieOptions configures a Trie. It currently has no fields: the type
// and the functional-option constructors below exist so a tunable (for
// example a node pool) can be added later without breaking NewTrie's
// signature.
type TrieOptions struct{}

// TrieOption configures a Trie at construction time.
type TrieOption func(*TrieOptions)

// Trie is a radix trie keyed by Oid, with children kept in ascending
// sub-identifier order so that Iter and GetNext walk values in the OID
// total order.
//
// A Trie has a single owner: concurrent reads are safe only when no
// writer is active at the same time. The trie itself performs no
// locking.
type Trie[V any] struct {
	root *trieNode[V]
	len  int
}

// NewTrie creates an empty trie.
func NewTrie[V any](opts ...TrieOption) *Trie[V] {
	cfg := TrieOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Trie[V]{root: newTrieNode[V]()}
}

// Len returns the number of entries in the trie.
func (t *Trie[V]) Len() int {
	return t.len
}

// IsEmpty reports whether the trie holds no entries.
func (t *Trie[V]) IsEmpty() bool {
	return t.len == 0
}

// Clear removes all entries.
func (t *Trie[V]) Clear() {
	t.root = newTrieNode[V]()
	t.len = 0
}

// Insert stores value at oid, returning the previous value and true if
// oid was already present.
func (t *Trie[V]) Insert(o Oid, value V) (previous V, replaced bool) {
	n := t.root
	for _, part := range o.Parts() {
		child, ok := n.children[part]
		if !ok {
			child = newTrieNode[V]()
			n.children[part] = child
		}
		n = child
	}

	previous, replaced = n.value, n.hasValue
	n.value = value
	if !n.hasValue {
		n.hasValue = true
		t.len++
	}
	return previous, replaced
}

// Get returns the value stored at oid, if any.
func (t *Trie[V]) Get(o Oid) (V, bool) {
	n := t.root
	for _, part := range o.Parts() {
		child, ok := n.children[part]
		if !ok {
			var zero V
			return zero, false
		}
		n = child
	}
	return n.value, n.hasValue
}

// GetMut applies fn to the value stored at oid in place, returning false
// if oid is absent. fn's return value replaces the stored value.
func (t *Trie[V]) GetMut(o Oid, fn func(V) V) bool {
	n := t.root
	for _, part := range o.Parts() {
		child, ok := n.children[part]
		if !ok {
			return false
		}
		n = child
	}
	if !n.hasValue {
		return false
	}
	n.value = fn(n.value)
	return true
}

// Contains reports whether oid has a stored value.
func (t *Trie[V]) Contains(o Oid) bool {
	_, ok := t.Get(o)
	return ok
}

// Remove deletes the value at oid, returning it and true if present.
// It prunes any ancestor node left with neither a value nor children.
func (t *Trie[V]) Remove(o Oid) (removed V, ok bool) {
	removed, ok = removeRecursive(t.root, o.Parts(), 0)
	if ok {
		t.len--
	}
	return removed, ok
}

func removeRecursive[V any](n *trieNode[V], parts []uint32, depth int) (V, bool) {
	if depth == len(parts) {
		if !n.hasValue {
			var zero V
			return zero, false
		}
		v := n.value
		var zero V
		n.value = zero
		n.hasValue = false
		return v, true
	}

	part := parts[depth]
	child, ok := n.children[part]
	if !ok {
		var zero V
		return zero, false
	}

	v, removed := removeRecursive(child, parts, depth+1)
	if !child.hasValue && len(child.children) == 0 {
		delete(n.children, part)
	}
	return v, removed
}

// LongestPrefix returns the deepest registered OID that is a prefix of
// oid, together with its value, and false if no prefix of oid (including
// oid itself) is registered.
func (t *Trie[V]) LongestPrefix(o Oid) (Oid, V, bool) {
	n := t.root
	parts := o.Parts()

	depth := 0
	matchedDepth := 0
	hasMatch := false
	var matchedValue V

	for _, part := range parts {
		if n.hasValue {
			hasMatch = true
			matchedDepth = depth
			matchedValue = n.value
		}

		child, ok := n.children[part]
		if !ok {
			break
		}
		n = child
		depth++
	}

	if n.hasValue {
		hasMatch = true
		matchedDepth = depth
		matchedValue = n.value
	}

	if !hasMatch {
		var zero V
		return Oid{}, zero, false
	}

	return o.Truncate(matchedDepth), matchedValue, true
}

// GetNext returns the smallest stored OID strictly greater than oid,
// together with its value, implementing SNMP GETNEXT semantics.
func (t *Trie[V]) GetNext(o Oid) (Oid, V, bool) {
	path := make([]uint32, 0, o.Len()+4)
	resultPath, value, ok := findNext(t.root, &path, o.Parts(), 0)
	if !ok {
		var zero V
		return Oid{}, zero, false
	}
	next, err := New(resultPath...)
	if err != nil {
		var zero V
		return Oid{}, zero, false
	}
	return next, value, true
}

// findNext implements the Trie's get_next descent: navigate toward
// target while it still has unconsumed sub-identifiers, preferring an
// exact-match child but falling back to the first value in any
// strictly-greater sibling's subtree; once target is exhausted, return
// the first value strictly beneath the current node (never the node's
// own value, since get_next is strict). If target runs past the trie's
// depth, no child matches and the search falls back to strictly-greater
// siblings at the enclosing levels: a stored proper prefix of target
// sorts before target and is never returned.
func findNext[V any](n *trieNode[V], path *[]uint32, target []uint32, depth int) ([]uint32, V, bool) {
	switch {
	case depth < len(target):
		targetPart := target[depth]
		for _, part := range n.sortedKeys() {
			if part < targetPart {
				continue
			}
			child := n.children[part]
			*path = append(*path, part)

			var (
				resultPath []uint32
				value      V
				ok         bool
			)
			if part == targetPart {
				resultPath, value, ok = findNext(child, path, target, depth+1)
			} else {
				resultPath, value, ok = firstInSubtree(child, path)
			}

			if ok {
				return resultPath, value, true
			}
			*path = (*path)[:len(*path)-1]
		}
		var zero V
		return nil, zero, false

	case depth == len(target):
		for _, part := range n.sortedKeys() {
			child := n.children[part]
			*path = append(*path, part)
			if resultPath, value, ok := firstInSubtree(child, path); ok {
				return resultPath, value, true
			}
			*path = (*path)[:len(*path)-1]
		}
		var zero V
		return nil, zero, false

	default:
		if n.hasValue {
			return append([]uint32(nil), *path...), n.value, true
		}
		for _, part := range n.sortedKeys() {
			child := n.children[part]
			*path = append(*path, part)
			if resultPath, value, ok := firstInSubtree(child, path); ok {
				return resultPath, value, true
			}
			*path = (*path)[:len(*path)-1]
		}
		var zero V
		return nil, zero, false
	}
}

// firstInSubtree returns the first value found by in-order (ascending
// sub-identifier) descent of node's subtree, node's own value taking
// priority over its children's.
func firstInSubtree[V any](n *trieNode[V], path *[]uint32) ([]uint32, V, bool) {
	if n.hasValue {
		return append([]uint32(nil), *path...), n.value, true
	}

	for _, part := range n.sortedKeys() {
		child := n.children[part]
		*path = append(*path, part)
		if resultPath, value, ok := firstInSubtree(child, path); ok {
			return resultPath, value, true
		}
		*path = (*path)[:len(*path)-1]
	}

	var zero V
	return nil, zero, false
}
