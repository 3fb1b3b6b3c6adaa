// SPDX-License-Identifier: MIT

// Package solid provides the five Platonic solids as triangulated surfaces.
//
// Every solid is centred at the origin and every triangle is oriented so
// that vector.Normal points away from the origin. The meshes are small
// (at most 20 vertices) and serve as canonical fixtures for the transforms
// in package transform and as input for package model.
//
// Construction:
//
//	Tetrahedron  : alternate corners of the cube [−1, 1]³
//	Cube         : the cube [−1, 1]³, six square rings
//	Octahedron   : ±e₁, ±e₂, ±e₃, one face per octant
//	Icosahedron  : cyclic permutations of (0, ±1, ±φ); faces are the
//	               vertex triples at pairwise distance 2
//	Dodecahedron : dual of the icosahedron: one vertex per icosahedron face
//	               (its centroid), one pentagon per icosahedron vertex
//
// Square and pentagon rings are split with transform.Triangulate, so the
// cube has 12 triangles and the dodecahedron 36.
package solid
