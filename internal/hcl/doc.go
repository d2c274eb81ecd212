// Package hcl implements the config.Loader interface for HCL manifests. It
// parses a manifest file into the schema package's structs and translates
// them into the format-agnostic config model.
package hcl
