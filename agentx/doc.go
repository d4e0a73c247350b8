// Package agentx implements the wire-format codec for the AgentX (RFC
// 2741) subagent protocol: the fixed 20-byte header and the per-PDU-type
// bodies exchanged between an SNMP master agent and its subagents.
//
// The codec is pure: Encode* functions build a byte slice from typed
// fields, Decode* functions parse a byte slice back into typed fields,
// and neither touches a network connection, a clock, or a MIB store.
// Collaborators own transport and session bookkeeping. Besides the byte
// shapes RFC 2741 specifies, this package provides only a thin storage
// seam (ValueStore, MIBStore, DispatchRegistration) over an oid.Trie.
package agentx
