// Package codegen emits the glue source the external toolchain builds
// alongside a plugin body. The generated platform module is the only code
// that knows the plugin's declared function is re-exported under the fixed
// entry symbol the host resolves after loading.
package codegen

import (
	"fmt"
	"strings"

	"github.com/vk/plughost/internal/signature"
)

// Platform generates the platform module source for a plugin signature.
// The platform requires the plugin to provide its declared function and
// re-provides it as `entry`, the single externally visible function, typed
// as the uncurried arrow type of the signature.
//
// Generation is a pure function of the signature: identical signatures
// always produce byte-identical source.
func Platform(sig *signature.Signature) string {
	if sig.Arity() == 0 {
		return fmt.Sprintf(`platform "plugin"
    requires {} { %[1]s : %[2]s }
    exposes []
    packages {}
    imports []
    provides [entry]

entry = %[1]s
`, sig.Name, sig.Return)
	}

	argTypes := make([]string, sig.Arity())
	argVars := make([]string, sig.Arity())
	for i, t := range sig.Args {
		argTypes[i] = t.String()
		// Positional parameters are named a, b, ... in declaration order.
		argVars[i] = string(rune('a' + i))
	}

	return fmt.Sprintf(`platform "plugin"
    requires {} { %[1]s : %[2]s -> %[3]s }
    exposes []
    packages {}
    imports []
    provides [entry]

entry = \%[4]s -> %[1]s %[5]s
`, sig.Name, strings.Join(argTypes, ", "), sig.Return, strings.Join(argVars, ", "), strings.Join(argVars, " "))
}
