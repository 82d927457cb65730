// Package fenchelyoung defines the Loss type and its sentinel errors.
package fenchelyoung

import "errors"

// Sentinel errors returned by New and the Loss methods.
var (
	// ErrNilLayer indicates a nil *perturbed.Layer was supplied to New.
	ErrNilLayer = errors.New("fenchelyoung: perturbed layer is nil")
	// ErrNilInput indicates a nil θ or target matrix.
	ErrNilInput = errors.New("fenchelyoung: input matrix is nil")
	// ErrShapeMismatch indicates θ and the target differ in dimensions.
	ErrShapeMismatch = errors.New("fenchelyoung: theta and target must share dimensions")
)
