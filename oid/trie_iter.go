package oid

// iterFrame is one level of the iterator's explicit depth-first stack:
// a node together with the (already sorted) keys still to be visited.
type iterFrame[V any] struct {
	node    *trieNode[V]
	keys    []uint32
	nextIdx int
}

// TrieIter walks a Trie's entries in ascending OID order: a parent
// node's own value precedes any value in its subtree, and a subtree's
// values precede a later sibling's.
type TrieIter[V any] struct {
	stack   []iterFrame[V]
	path    []uint32
	pending *V
}

// Iter returns an iterator over all (Oid, value) pairs in ascending order.
func (t *Trie[V]) Iter() *TrieIter[V] {
	it := &TrieIter[V]{}
	if t.root.hasValue {
		v := t.root.value
		it.pending = &v
	}
	it.stack = append(it.stack, iterFrame[V]{node: t.root, keys: t.root.sortedKeys()})
	return it
}

// Next returns the next (Oid, value) pair and true, or false once
// exhausted.
func (it *TrieIter[V]) Next() (Oid, V, bool) {
	if it.pending != nil {
		v := *it.pending
		it.pending = nil
		o, _ := New(append([]uint32(nil), it.path...)...)
		return o, v, true
	}

	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]

		if top.nextIdx >= len(top.keys) {
			it.stack = it.stack[:len(it.stack)-1]
			if len(it.path) > 0 {
				it.path = it.path[:len(it.path)-1]
			}
			continue
		}

		part := top.keys[top.nextIdx]
		top.nextIdx++
		child := top.node.children[part]

		it.path = append(it.path, part)
		it.stack = append(it.stack, iterFrame[V]{node: child, keys: child.sortedKeys()})

		if child.hasValue {
			o, _ := New(append([]uint32(nil), it.path...)...)
			return o, child.value, true
		}
	}

	var zero V
	return Oid{}, zero, false
}

// Keys returns every stored Oid in ascending order.
func (t *Trie[V]) Keys() []Oid {
	it := t.Iter()
	keys := make([]Oid, 0, t.len)
	for {
		o, _, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, o)
	}
	return keys
}

// Values returns every stored value, ordered by ascending Oid.
func (t *Trie[V]) Values() []V {
	it := t.Iter()
	values := make([]V, 0, t.len)
	for {
		_, v, ok := it.Next()
		if !ok {
			break
		}
		values = append(values, v)
	}
	return values
}
