package invoke

import (
	"context"
	"fmt"
	"runtime"

	"github.com/vk/plughost/internal/ctxlog"
	"github.com/vk/plughost/internal/dylib"
	"github.com/vk/plughost/internal/signature"
)

// UnsupportedArityError reports a signature declaring more arguments than
// the call-shape table implements. It is a capability limit, distinct from
// parse and load failures; arguments are never silently truncated.
type UnsupportedArityError struct {
	Arity int
}

// Error implements the error interface for UnsupportedArityError.
func (e *UnsupportedArityError) Error() string {
	return fmt.Sprintf("invoking plugins with %d arguments is not implemented", e.Arity)
}

// InvocationFailure reports a plugin that aborted abnormally during a
// foreign call. It is recovered at the call boundary; the host continues
// with the next plugin.
type InvocationFailure struct {
	Msg string
}

// Error implements the error interface for InvocationFailure.
func (e *InvocationFailure) Error() string {
	return fmt.Sprintf("plugin panicked: %s", e.Msg)
}

// Samples holds the placeholder values synthesized for argument slots. The
// host exercises the plugin's calling convention; it does not feed it
// meaningful input.
type Samples struct {
	Str string
	U64 uint64
}

// DefaultSamples are the stock placeholder values.
var DefaultSamples = Samples{Str: "foo", U64: 42}

// Invoker performs type-directed calls into loaded plugins.
type Invoker struct {
	samples Samples
	call    rawCaller
}

// New returns an Invoker synthesizing the given sample values.
func New(samples Samples) *Invoker {
	return &Invoker{samples: samples, call: syscallCall}
}

// Call selects the native call shape for the signature, synthesizes one
// argument value per declared position, performs the foreign call inside
// the fault boundary, and returns the rendered result.
func (inv *Invoker) Call(ctx context.Context, sig *signature.Signature, sym dylib.Symbol) (string, error) {
	logger := ctxlog.FromContext(ctx)

	shape, ok := shapes[shapeKey{arity: sig.Arity(), ret: sig.Return}]
	if !ok {
		return "", &UnsupportedArityError{Arity: sig.Arity()}
	}

	values := make([]*Value, sig.Arity())
	words := make([]uintptr, sig.Arity())
	for i, t := range sig.Args {
		values[i] = inv.synthesize(t)
		words[i] = values[i].word()
	}
	logger.Debug("Selected call shape.", "plugin", sig.Name, "arity", sig.Arity(), "return", sig.Return.String())

	var rendered string
	err := guard(func() {
		rendered = shape(inv.call, uintptr(sym), words)
	})
	// The callee received raw addresses into these values; they must stay
	// alive until the call has fully returned.
	runtime.KeepAlive(values)
	if err != nil {
		return "", err
	}
	return rendered, nil
}

// synthesize builds one placeholder value of the declared type.
func (inv *Invoker) synthesize(t signature.ScalarType) *Value {
	switch t {
	case signature.Str:
		return newStrValue(inv.samples.Str)
	case signature.U64:
		return newU64Value(inv.samples.U64)
	}
	panic(fmt.Sprintf("invoke: invalid scalar type %d", int(t)))
}
