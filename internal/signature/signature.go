package signature

import (
	"fmt"
	"strings"
)

// ScalarType is one of the two scalar types a plugin interface may use.
type ScalarType int

const (
	Str ScalarType = iota
	U64
)

// String returns the canonical toolchain-facing name of the type.
func (t ScalarType) String() string {
	switch t {
	case Str:
		return "Str"
	case U64:
		return "U64"
	}
	panic(fmt.Sprintf("signature: invalid ScalarType %d", int(t)))
}

// ParseScalarType resolves a type token from a plugin header. Any token
// outside the closed type set is an error; there is no coercion.
func ParseScalarType(s string) (ScalarType, error) {
	switch s {
	case "Str":
		return Str, nil
	case "U64":
		return U64, nil
	}
	return 0, &ParseError{Token: s}
}

// Signature is a plugin's declared interface. It is created once by parsing
// the plugin's header line and is immutable afterward.
type Signature struct {
	Name   string
	Args   []ScalarType
	Return ScalarType
}

// Arity returns the number of declared arguments.
func (s *Signature) Arity() int {
	return len(s.Args)
}

// Header renders the signature back to its textual header form. For every
// signature produced by ParseHeader, re-parsing the rendered header yields
// an equal signature.
func (s *Signature) Header() string {
	if len(s.Args) == 0 {
		return fmt.Sprintf("%s %s : %s", headerMarker, s.Name, s.Return)
	}
	args := make([]string, len(s.Args))
	for i, t := range s.Args {
		args[i] = t.String()
	}
	return fmt.Sprintf("%s %s : %s -> %s", headerMarker, s.Name, strings.Join(args, ", "), s.Return)
}
