// Package compiler drives the external toolchain. It materializes the
// generated platform source and the user-supplied plugin body into an
// isolated scratch directory, invokes the toolchain as a subprocess, and
// yields the path of the built dynamic library.
package compiler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"

	"github.com/vk/plughost/internal/codegen"
	"github.com/vk/plughost/internal/ctxlog"
	"github.com/vk/plughost/internal/signature"
)

// CompileError reports a toolchain subprocess that exited with a nonzero
// status. The status is carried for diagnostics; the build is not retried.
type CompileError struct {
	ExitCode int
}

// Error implements the error interface for CompileError.
func (e *CompileError) Error() string {
	return fmt.Sprintf("toolchain exited with status %d", e.ExitCode)
}

// Artifact is the transient output of one Compile call. It owns the scratch
// directory holding the generated sources and the built library. Once the
// library has been loaded into the process, the files are no longer needed
// and the artifact may be closed; the in-memory mapping does not depend on
// them surviving.
type Artifact struct {
	dir string

	PlatformPath string
	AppPath      string
	LibraryPath  string
}

// Close releases the scratch directory and everything in it.
func (a *Artifact) Close() error {
	return os.RemoveAll(a.dir)
}

// Driver invokes the external toolchain to build plugin dynamic libraries.
type Driver struct {
	// Toolchain is the binary invoked for builds, e.g. "roc".
	Toolchain string
}

// NewDriver returns a Driver using the given toolchain binary.
func NewDriver(toolchain string) *Driver {
	return &Driver{Toolchain: toolchain}
}

// libraryName is the output file name inside the scratch directory, with the
// dynamic-library extension of the current platform.
func libraryName() string {
	if runtime.GOOS == "darwin" {
		return "plugin.dylib"
	}
	return "plugin.so"
}

// Compile builds the plugin into a dynamic library.
//
// The plugin body is written verbatim below a generated app header that
// references the platform module by path; the driver does not interpret the
// body. Success is solely a zero exit status plus an existing output file.
// The subprocess's stdout is discarded; its stderr goes to the host's own
// stderr for diagnostics.
func (d *Driver) Compile(ctx context.Context, sig *signature.Signature, body string) (art *Artifact, err error) {
	logger := ctxlog.FromContext(ctx)
	buildID := uuid.NewString()

	dir, err := os.MkdirTemp("", "plughost-"+buildID)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate scratch directory: %w", err)
	}
	defer func() {
		if err != nil {
			os.RemoveAll(dir)
		}
	}()

	art = &Artifact{
		dir:          dir,
		PlatformPath: filepath.Join(dir, "platform.roc"),
		AppPath:      filepath.Join(dir, "plugin.roc"),
		LibraryPath:  filepath.Join(dir, libraryName()),
	}

	if err := os.WriteFile(art.PlatformPath, []byte(codegen.Platform(sig)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write platform source: %w", err)
	}

	appSource := fmt.Sprintf("app [%s] { pf: platform %q }\n%s", sig.Name, art.PlatformPath, body)
	if err := os.WriteFile(art.AppPath, []byte(appSource), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write app source: %w", err)
	}

	logger.Debug("Invoking toolchain build.", "build_id", buildID, "toolchain", d.Toolchain, "plugin", sig.Name)

	cmd := exec.CommandContext(ctx, d.Toolchain, "build", "--lib", "--output", art.LibraryPath, art.AppPath)
	cmd.Stdout = nil // discarded
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &CompileError{ExitCode: exitErr.ExitCode()}
		}
		return nil, fmt.Errorf("failed to run toolchain %q: %w", d.Toolchain, err)
	}

	if _, err := os.Stat(art.LibraryPath); err != nil {
		return nil, fmt.Errorf("toolchain reported success but produced no library at %s: %w", art.LibraryPath, err)
	}

	logger.Debug("Toolchain build succeeded.", "build_id", buildID, "library", art.LibraryPath)
	return art, nil
}
