// Package invoke performs the type-directed foreign call into a loaded
// plugin.
//
// The native calling shape is selected from a closed table keyed by the
// signature's arity and return type. Argument scalars are passed as opaque
// machine words (the address of a string value, the integer itself for a
// u64); u64 results come back as a direct return while string results are
// written through a caller-supplied output location, because a string is not
// a fixed machine word. Every call runs inside a fault boundary that
// captures a plugin abort as a recoverable failure instead of letting it
// take the host down.
package invoke
