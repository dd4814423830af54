package invoke

import (
	"fmt"
	"unsafe"

	"github.com/vk/plughost/internal/signature"
)

// Value is one synthesized argument scalar, alive for a single invocation.
// It is never shared or mutated after construction.
type Value struct {
	kind signature.ScalarType
	str  RocStr
	buf  []byte // backing storage for heap strings, kept alive for the call
	u64  uint64
}

// newStrValue builds a string argument in its ABI representation.
func newStrValue(s string) *Value {
	v := &Value{kind: signature.Str}
	if r, ok := newSmallRocStr(s); ok {
		v.str = r
		return v
	}
	v.buf = []byte(s)
	v.str = RocStr{
		bytes:    unsafe.Pointer(&v.buf[0]),
		length:   uintptr(len(v.buf)),
		capacity: uintptr(cap(v.buf)),
	}
	return v
}

// newU64Value builds an integer argument.
func newU64Value(n uint64) *Value {
	return &Value{kind: signature.U64, u64: n}
}

// word returns the opaque machine-word representation passed through an
// argument slot: the address of the string value, or the integer itself.
// This is the single place that decides what an argument word means.
func (v *Value) word() uintptr {
	switch v.kind {
	case signature.Str:
		return uintptr(unsafe.Pointer(&v.str))
	case signature.U64:
		return uintptr(v.u64)
	}
	panic(fmt.Sprintf("invoke: invalid value kind %d", int(v.kind)))
}
