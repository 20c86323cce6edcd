// Package eval defines the expression service boundary for the huefx
// filter.
//
// Hue and saturation can be driven per frame by arithmetic expressions
// over a fixed variable vector (frame ordinal, timestamps, timebase,
// frame rate). The filter treats the expression grammar as an opaque
// collaborator: Service compiles a source string into a handle, and the
// handle evaluates against a Variables snapshot. The default
// implementation is backed by govaluate; hosts with their own grammar
// can substitute any Service.
package eval
