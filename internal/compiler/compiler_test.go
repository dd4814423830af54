package compiler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/plughost/internal/codegen"
	"github.com/vk/plughost/internal/signature"
)

// writeStubToolchain installs a fake toolchain script so builds can be
// exercised without the real compiler. The script honors the driver's
// command-line contract: build --lib --output <lib> <app>.
func writeStubToolchain(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roc")
	script := "#!/bin/sh\n" + body
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

// stubEmitsLibrary is a stub body that creates the requested output file.
const stubEmitsLibrary = `
while [ $# -gt 0 ]; do
  case "$1" in
    --output) out="$2"; shift ;;
  esac
  shift
done
: > "$out"
exit 0
`

func TestCompile(t *testing.T) {
	ctx := context.Background()
	sig := &signature.Signature{
		Name:   "repeat",
		Args:   []signature.ScalarType{signature.Str, signature.U64},
		Return: signature.Str,
	}

	t.Run("success yields a library artifact", func(t *testing.T) {
		driver := NewDriver(writeStubToolchain(t, stubEmitsLibrary))

		art, err := driver.Compile(ctx, sig, "repeat = \\s, n -> Str.repeat s (Num.toU64 n)\n")
		require.NoError(t, err)
		t.Cleanup(func() { art.Close() })

		assert.FileExists(t, art.LibraryPath)

		platform, err := os.ReadFile(art.PlatformPath)
		require.NoError(t, err)
		assert.Equal(t, codegen.Platform(sig), string(platform))

		app, err := os.ReadFile(art.AppPath)
		require.NoError(t, err)
		lines := strings.SplitN(string(app), "\n", 2)
		assert.Equal(t, `app [repeat] { pf: platform "`+art.PlatformPath+`" }`, lines[0])
		assert.Contains(t, lines[1], "Str.repeat", "the body must pass through verbatim")
	})

	t.Run("close releases the scratch directory", func(t *testing.T) {
		driver := NewDriver(writeStubToolchain(t, stubEmitsLibrary))

		art, err := driver.Compile(ctx, sig, "")
		require.NoError(t, err)
		require.NoError(t, art.Close())
		assert.NoFileExists(t, art.LibraryPath)
		assert.NoFileExists(t, art.AppPath)
	})

	t.Run("nonzero exit status carries the raw status", func(t *testing.T) {
		driver := NewDriver(writeStubToolchain(t, "exit 7\n"))

		_, err := driver.Compile(ctx, sig, "")
		var compileErr *CompileError
		require.ErrorAs(t, err, &compileErr)
		assert.Equal(t, 7, compileErr.ExitCode)
	})

	t.Run("zero exit without an output library is still a failure", func(t *testing.T) {
		driver := NewDriver(writeStubToolchain(t, "exit 0\n"))

		_, err := driver.Compile(ctx, sig, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "produced no library")
	})

	t.Run("missing toolchain binary", func(t *testing.T) {
		driver := NewDriver(filepath.Join(t.TempDir(), "no-such-toolchain"))

		_, err := driver.Compile(ctx, sig, "")
		require.Error(t, err)
		var compileErr *CompileError
		assert.False(t, errors.As(err, &compileErr), "a missing binary is not a toolchain exit status")
	})
}
