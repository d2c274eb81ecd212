// Package toolchain locates the shader compiler binary (glslc). Discovery is
// an ordered list of strategies tried in sequence: an explicit manifest
// override, the canonical name on PATH, the cross-platform .exe shim, and
// finally a provisioning fallback that clones and builds the compiler from
// source. Provisioning runs only on a trusted host, guarded by a lock file
// and a cached-binary short-circuit.
//
// The locator never returns a guessed path: every strategy either yields an
// existing executable or falls through, and exhausting the list is a fatal
// ErrNotFound carrying the list of strategies tried.
package toolchain
