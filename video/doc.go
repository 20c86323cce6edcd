// Package video provides the planar frame model and chroma rotation
// primitives for the huefx filter.
//
// This package handles planar YUV frames with independent per-plane
// strides and log2 chroma subsampling. Its core operation is a
// fixed-point rotation of the (U, V) chrominance vector: the rotation
// angle is the hue and the vector norm is the saturation, so a single
// multiply-add per sample applies both.
//
// The processing model:
//
//	Planar YUV Input → Coefficient Computation → Chroma Rotation → Planar YUV Output
//
// All operations are stateless and allocation-free; callers own the
// plane buffers and may process a frame in horizontal slices.
package video
