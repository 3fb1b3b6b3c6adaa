// SPDX-License-Identifier: MIT

// Package matrix is a small dense, row-major float64 matrix kernel.
//
// It backs the row-weighted product in package vector and the linear
// operators in package transform: conversion from row slices, transpose,
// matrix×matrix and matrix×vector products, and inversion.
//
// Conventions:
//   - Every public function returns one of the sentinels in errors.go,
//     wrapped with its operation tag; match them with errors.Is.
//   - Entries are finite. FromRows and Set reject NaN/±Inf with ErrNaNInf.
//   - Operands are never mutated; every result is freshly allocated.
//   - Loop orders are fixed, so results are reproducible bit for bit.
package matrix
