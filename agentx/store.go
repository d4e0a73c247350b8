package agentx

import (
	"github.com/agentxkit/agentx/oid"
)

// ValueStore is the seam between the codec and a collaborator's MIB
// storage: the trie operations a registration manager needs, specialized
// to Value. It exists so collaborators can depend on an interface
// instead of the concrete generic oid.Trie[Value], and so it can be
// mocked in tests (see mocks.MockValueStore).
type ValueStore interface {
	Get(o oid.Oid) (Value, bool)
	Insert(o oid.Oid, v Value) (Value, bool)
	Remove(o oid.Oid) (Value, bool)
	LongestPrefix(o oid.Oid) (oid.Oid, Value, bool)
	GetNext(o oid.Oid) (oid.Oid, Value, bool)
}

// MIBStore adapts an oid.Trie[Value] to ValueStore.
type MIBStore struct {
	trie *oid.Trie[Value]
}

// NewMIBStore creates an empty MIBStore.
func NewMIBStore() *MIBStore {
	return &MIBStore{trie: oid.NewTrie[Value]()}
}

// Get returns the value registered at o.
func (s *MIBStore) Get(o oid.Oid) (Value, bool) {
	return s.trie.Get(o)
}

// Insert registers value at o, returning the value it displaced, if any.
func (s *MIBStore) Insert(o oid.Oid, v Value) (Value, bool) {
	return s.trie.Insert(o, v)
}

// Remove deregisters the value at o, returning it if present.
func (s *MIBStore) Remove(o oid.Oid) (Value, bool) {
	return s.trie.Remove(o)
}

// LongestPrefix returns the deepest registered prefix of o.
func (s *MIBStore) LongestPrefix(o oid.Oid) (oid.Oid, Value, bool) {
	return s.trie.LongestPrefix(o)
}

// GetNext returns the smallest registered OID strictly greater than o.
func (s *MIBStore) GetNext(o oid.Oid) (oid.Oid, Value, bool) {
	return s.trie.GetNext(o)
}

// DispatchRegistration answers "which subagent owns this name": the
// longest-prefix lookup RFC 2741's registration manager performs to
// route an incoming request to the handler registered over it.
func DispatchRegistration(store ValueStore, requested oid.Oid) (owner oid.Oid, handler Value, found bool) {
	return store.LongestPrefix(requested)
}
