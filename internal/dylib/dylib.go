// Package dylib owns the loaded plugin library for the lifetime of one
// invocation. A Session exclusively owns the in-process mapping; symbol
// handles borrowed from it are only valid while the session is open, and the
// session must not be closed while a call through one of its handles is in
// flight.
package dylib

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// EntrySymbol is the fixed exported name the generated platform module
// commits to. It is the one symbol the host resolves; the plugin's own
// declared name never crosses the library boundary.
const EntrySymbol = "roc__entry_1_exposed_generic"

// Symbol is a raw pointer to an exported function in a loaded library.
type Symbol uintptr

// LoadError reports a failure to map a library or resolve its entry symbol.
type LoadError struct {
	Op   string // "open", "resolve" or "close"
	Path string
	Err  error
}

// Error implements the error interface for LoadError.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to %s plugin library %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying loader error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Session is a loaded plugin library.
type Session struct {
	handle uintptr
	path   string
}

// Open maps the dynamic library at path into the process.
func Open(path string) (*Session, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, &LoadError{Op: "open", Path: path, Err: err}
	}
	return &Session{handle: handle, path: path}, nil
}

// Entry resolves the fixed entry symbol of the loaded library.
func (s *Session) Entry() (Symbol, error) {
	sym, err := purego.Dlsym(s.handle, EntrySymbol)
	if err != nil {
		return 0, &LoadError{Op: "resolve", Path: s.path, Err: err}
	}
	return Symbol(sym), nil
}

// Close releases the library mapping. No symbol resolved from this session
// may be called afterward.
func (s *Session) Close() error {
	if s.handle == 0 {
		return nil
	}
	err := purego.Dlclose(s.handle)
	s.handle = 0
	if err != nil {
		return &LoadError{Op: "close", Path: s.path, Err: err}
	}
	return nil
}
