// Package shadergraph models the shader build graph: one job per discovered
// shader source, each producing exactly two artifacts (a SPIR-V binary and
// its disassembly) that share a single compiler-emitted dependency record.
//
// Staleness is content-hash based rather than mtime based: a JSON cache under
// the output root records the SHA-256 of every input (source plus recorded
// includes) at the last successful compile. Any ambiguity (missing record,
// unreadable input, corrupt cache) counts as stale.
package shadergraph
