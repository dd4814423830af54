package invoke

import "unsafe"

// rocStrSize is the byte size of the string ABI value: three machine words.
const rocStrSize = int(unsafe.Sizeof(RocStr{}))

// smallStrCap is the longest string stored inline. The final byte of an
// inline string holds 0x80 | length, so one byte of the three words is
// reserved for it.
const smallStrCap = rocStrSize - 1

// RocStr is the string value the plugin ABI exchanges: a pointer, a length
// and a capacity for heap strings, or up to smallStrCap bytes stored inline
// with the high bit of the final byte set.
//
// The layout of the three fields is the ABI contract; do not reorder them.
type RocStr struct {
	bytes    unsafe.Pointer
	length   uintptr
	capacity uintptr
}

// newSmallRocStr builds an inline string value. It reports false when the
// payload does not fit and a heap-backed value is needed instead.
func newSmallRocStr(s string) (RocStr, bool) {
	var r RocStr
	if len(s) > smallStrCap {
		return r, false
	}
	raw := (*[rocStrSize]byte)(unsafe.Pointer(&r))
	copy(raw[:], s)
	raw[rocStrSize-1] = byte(len(s)) | 0x80
	return r, true
}

// isSmall reports whether the value stores its bytes inline.
func (s *RocStr) isSmall() bool {
	raw := (*[rocStrSize]byte)(unsafe.Pointer(s))
	return raw[rocStrSize-1]&0x80 != 0
}

// String decodes the value into a Go string, copying the payload out of the
// ABI representation.
func (s *RocStr) String() string {
	if s.isSmall() {
		raw := (*[rocStrSize]byte)(unsafe.Pointer(s))
		n := int(raw[rocStrSize-1] & 0x7f)
		return string(raw[:n])
	}
	if s.bytes == nil || s.length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(s.bytes), s.length))
}
