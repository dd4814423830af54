// Package signature defines the typed interface a plugin declares in its
// header line: an exported name, an ordered list of argument types, and a
// return type, all drawn from a closed two-member scalar type system.
//
// Parsing is strictly syntactic. A header with more arguments than the host
// can invoke still parses successfully; the arity cap belongs to the invoker,
// which owns the set of call shapes it implements.
package signature
