// Package config defines the format-agnostic build manifest model, along
// with the Loader interface for reading it from a concrete source format.
//
// The config.Model is the single source of truth for the toolchain,
// shadergraph, and host packages. Concrete loader implementations, such as
// for HCL, are provided in separate packages.
package config
