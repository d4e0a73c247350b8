// Package oid implements Object Identifiers and the radix trie used to
// store MIB values against them.
//
// An OID is a non-empty sequence of 32-bit sub-identifiers with a
// component-wise total order; the trie keeps its children in ascending
// sub-identifier order so that iteration and GetNext walk the tree in
// that same order.
package oid
