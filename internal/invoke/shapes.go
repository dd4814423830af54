package invoke

import (
	"strconv"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/vk/plughost/internal/signature"
)

// rawCaller performs one raw foreign call and returns the first result
// register. It is a seam for tests; the default implementation goes through
// purego.
type rawCaller func(fn uintptr, args ...uintptr) uintptr

// syscallCall is the production rawCaller.
func syscallCall(fn uintptr, args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(fn, args...)
	return r1
}

// shapeKey identifies one native call shape. Argument types beyond their
// count do not change the shape: every argument travels as one opaque word.
type shapeKey struct {
	arity int
	ret   signature.ScalarType
}

// callShape performs one foreign call of a fixed native shape and renders
// the result. args holds the opaque words for each declared argument.
type callShape func(call rawCaller, fn uintptr, args []uintptr) string

// shapes is the closed dispatch table: arities {0,1,2} crossed with the two
// return conventions. Str results are written through a caller-supplied
// output location; u64 results are returned directly.
var shapes = map[shapeKey]callShape{
	{0, signature.U64}: func(call rawCaller, fn uintptr, _ []uintptr) string {
		return renderU64(call(fn))
	},
	{0, signature.Str}: func(call rawCaller, fn uintptr, _ []uintptr) string {
		var out RocStr
		call(fn, uintptr(unsafe.Pointer(&out)))
		return out.String()
	},
	{1, signature.U64}: func(call rawCaller, fn uintptr, args []uintptr) string {
		return renderU64(call(fn, args[0]))
	},
	{1, signature.Str}: func(call rawCaller, fn uintptr, args []uintptr) string {
		var out RocStr
		call(fn, uintptr(unsafe.Pointer(&out)), args[0])
		return out.String()
	},
	{2, signature.U64}: func(call rawCaller, fn uintptr, args []uintptr) string {
		return renderU64(call(fn, args[0], args[1]))
	},
	{2, signature.Str}: func(call rawCaller, fn uintptr, args []uintptr) string {
		var out RocStr
		call(fn, uintptr(unsafe.Pointer(&out)), args[0], args[1])
		return out.String()
	},
}

func renderU64(r uintptr) string {
	return strconv.FormatUint(uint64(r), 10)
}
