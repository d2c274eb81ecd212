// Package contract pins down the data interface between the host renderer
// and the compiled shader pair: vertex layout, uniform and push-constant
// blocks, bind group layout, and a CPU reference of both shader stages used
// to validate behavior without a GPU.
package contract
