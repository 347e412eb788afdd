// Package filter provides separable Gaussian smoothing of scalar fields.
//
// Kernels are truncated at a multiple of sigma and normalized to sum to
// one. Boundary handling is selectable: BoundaryConstant treats samples
// outside the field as zero, BoundaryNearest repeats the edge value.
package filter
