package oid

import (
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestTrieInsertGet(t *testing.T) {
	trie := NewTrie[string]()
	o := MustParse("1.3.6.1.4")

	trie.Insert(o, "test")
	v, ok := trie.Get(o)
	assert.True(t, ok)
	assert.Equal(t, "test", v)
	assert.Equal(t, 1, trie.Len())
}

func TestTrieInsertReplace(t *testing.T) {
	trie := NewTrie[string]()
	o := MustParse("1.3.6.1")

	prev, replaced := trie.Insert(o, "first")
	assert.False(t, replaced)
	assert.Equal(t, "", prev)

	prev, replaced = trie.Insert(o, "second")
	assert.True(t, replaced)
	assert.Equal(t, "first", prev)

	v, ok := trie.Get(o)
	assert.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, trie.Len())
}

func TestTrieRemove(t *testing.T) {
	trie := NewTrie[string]()
	o := MustParse("1.3.6.1")

	trie.Insert(o, "test")
	v, ok := trie.Remove(o)
	assert.True(t, ok)
	assert.Equal(t, "test", v)

	_, ok = trie.Get(o)
	assert.False(t, ok)
	assert.Equal(t, 0, trie.Len())
}

func TestTrieRemovePrunesAncestors(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert(MustParse("1.3.6.1.1"), "leaf")

	_, ok := trie.Remove(MustParse("1.3.6.1.1"))
	assert.True(t, ok)
	assert.Equal(t, 0, len(trie.root.children))
}

func TestTrieRemoveKeepsAncestorWithSibling(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert(MustParse("1.3.6.1.1"), "a")
	trie.Insert(MustParse("1.3.6.1.2"), "b")

	trie.Remove(MustParse("1.3.6.1.1"))

	_, ok := trie.Get(MustParse("1.3.6.1.2"))
	assert.True(t, ok)
}

func TestTrieClear(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert(MustParse("1.3.6.1"), "a")
	trie.Insert(MustParse("1.3.6.2"), "b")
	trie.Insert(MustParse("1.3.6.3"), "c")

	assert.Equal(t, 3, trie.Len())
	trie.Clear()
	assert.Equal(t, 0, trie.Len())
	assert.True(t, trie.IsEmpty())

	_, ok := trie.Get(MustParse("1.3.6.1"))
	assert.False(t, ok)
}

func TestTrieContains(t *testing.T) {
	trie := NewTrie[string]()
	o := MustParse("1.3.6.1")
	assert.False(t, trie.Contains(o))
	trie.Insert(o, "x")
	assert.True(t, trie.Contains(o))
}

func TestTrieLongestPrefix(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert(MustParse("1.3.6"), "short")
	trie.Insert(MustParse("1.3.6.1.4"), "long")

	prefix, value, ok := trie.LongestPrefix(MustParse("1.3.6.1.4.1.12345"))
	assert.True(t, ok)
	assert.Equal(t, "1.3.6.1.4", prefix.String())
	assert.Equal(t, "long", value)

	prefix, value, ok = trie.LongestPrefix(MustParse("1.3.6.2"))
	assert.True(t, ok)
	assert.Equal(t, "1.3.6", prefix.String())
	assert.Equal(t, "short", value)

	_, _, ok = trie.LongestPrefix(MustParse("2.1"))
	assert.False(t, ok)
}

func TestTrieGetNext(t *testing.T) {
	trie := NewTrie[string]()
	o1, o2, o3 := MustParse("1.3.6.1.1"), MustParse("1.3.6.1.2"), MustParse("1.3.6.1.3")
	trie.Insert(o1, "first")
	trie.Insert(o2, "second")
	trie.Insert(o3, "third")

	next, value, ok := trie.GetNext(o1)
	assert.True(t, ok)
	assert.Equal(t, "1.3.6.1.2", next.String())
	assert.Equal(t, "second", value)

	next, value, ok = trie.GetNext(o2)
	assert.True(t, ok)
	assert.Equal(t, "1.3.6.1.3", next.String())
	assert.Equal(t, "third", value)

	_, _, ok = trie.GetNext(o3)
	assert.False(t, ok)
}

func TestTrieGetNextSubtree(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert(MustParse("1.3.6.1"), "parent")
	trie.Insert(MustParse("1.3.6.1.1"), "child")

	next, value, ok := trie.GetNext(MustParse("1.3.6.1"))
	assert.True(t, ok)
	assert.Equal(t, "1.3.6.1.1", next.String())
	assert.Equal(t, "child", value)
}

func TestTrieGetNextEmptyTrie(t *testing.T) {
	trie := NewTrie[string]()
	_, _, ok := trie.GetNext(MustParse("1.3.6.1"))
	assert.False(t, ok)
}

func TestTrieGetNextLastElement(t *testing.T) {
	trie := NewTrie[string]()
	o := MustParse("1.3.6.1")
	trie.Insert(o, "only")

	_, _, ok := trie.GetNext(o)
	assert.False(t, ok)
}

func TestTrieGetNextNonexistentOid(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert(MustParse("1.3.6.1.1"), "a")
	trie.Insert(MustParse("1.3.6.1.3"), "c")

	next, value, ok := trie.GetNext(MustParse("1.3.6.1.2"))
	assert.True(t, ok)
	assert.Equal(t, "1.3.6.1.3", next.String())
	assert.Equal(t, "c", value)
}

func TestTrieGetNextPrefixQuery(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert(MustParse("1.3.6.1.1.1"), "deep")
	trie.Insert(MustParse("1.3.6.1.2"), "sibling")

	next, value, ok := trie.GetNext(MustParse("1.3.6.1.1"))
	assert.True(t, ok)
	assert.Equal(t, "1.3.6.1.1.1", next.String())
	assert.Equal(t, "deep", value)
}

func TestTrieIterOrder(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert(MustParse("1.3.6.1"), "a")
	trie.Insert(MustParse("1.3.6.2"), "b")
	trie.Insert(MustParse("1.3.6.1.1"), "c")

	it := trie.Iter()

	var oids []string
	for {
		o, _, ok := it.Next()
		if !ok {
			break
		}
		oids = append(oids, o.String())
	}

	assert.Equal(t, []string{"1.3.6.1", "1.3.6.1.1", "1.3.6.2"}, oids)
}

func TestTrieKeysValues(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert(MustParse("1.3.6.1"), "a")
	trie.Insert(MustParse("1.3.6.2"), "b")

	keys := trie.Keys()
	assert.Equal(t, 2, len(keys))
	assert.Equal(t, "1.3.6.1", keys[0].String())
	assert.Equal(t, "1.3.6.2", keys[1].String())

	values := trie.Values()
	assert.Equal(t, []string{"a", "b"}, values)
}

func TestTrieIterEmpty(t *testing.T) {
	trie := NewTrie[string]()
	_, _, ok := trie.Iter().Next()
	assert.False(t, ok)
}

func TestTrieIterCountMatchesLen(t *testing.T) {
	trie := NewTrie[int]()
	for i, o := range []string{"1.1", "1.2", "1.2.1", "2", "2.1.1"} {
		trie.Insert(MustParse(o), i)
	}

	count := 0
	it := trie.Iter()
	for {
		if _, _, ok := it.Next(); !ok {
			break
		}
		count++
	}
	assert.Equal(t, trie.Len(), count)
}
