// SPDX-License-Identifier: MIT

// Package model loads, writes and shades indexed triangle meshes.
//
// Meshes are read from and written to the OFF text format:
//
//	OFF                 optional header
//	V F E               vertex, face and edge counts (E is informational)
//	x y z               V vertex lines; extra columns are ignored
//	n i₁ i₂ … iₙ        F face lines, zero-based vertex indices
//
// Blank lines and text after '#' are ignored. Faces with more than three
// vertices are fan triangulated (transform.Triangulate) into
// Model.Triangles, and an optional load-time Transform is applied to every
// vertex before triangulation.
//
// Errors:
//
//	ErrSyntax    : a token that is not a number, or a short line
//	ErrCount     : bad counts, or fewer records than the counts announce
//	ErrFaceIndex : a face index outside [0, V)
//
// plus vector.ErrShape for a face with fewer than three vertices and
// vector.ErrDomain for non-finite coordinates.
package model
