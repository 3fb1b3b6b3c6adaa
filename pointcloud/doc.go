// SPDX-License-Identifier: MIT

// Package pointcloud exchanges vertex sets with point-cloud tooling through
// the PCD format (github.com/seqsense/pcgol).
//
// Points are stored as three float32 fields x, y, z. Writing narrows each
// float64 coordinate to float32, so a round trip is exact only for values
// representable in float32; expect a relative error near 6e-8 otherwise.
// Coordinates beyond the float32 range fail with vector.ErrDomain instead of
// turning into ±Inf.
package pointcloud
