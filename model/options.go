// SPDX-License-Identifier: MIT
// Package: model
//
// Functional options for New, Decode and Load.
//
// Contract:
//   - Option constructors panic on nil or meaningless values.
//   - Decode and Load never panic on input data.

package model

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/lvgeom/lvlog"
	"github.com/katalvlaran/lvgeom/transform"
)

// DefaultName is used when neither WithName nor a file name is given.
const DefaultName = "model"

// Options holds the resolved configuration.
type Options struct {
	Name      string
	ID        uuid.UUID
	Transform transform.Transform
	Logger    lvlog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: DefaultName, a fresh random ID, the
// identity transform and a silent logger.
func DefaultOptions() Options {
	return Options{
		Name:      DefaultName,
		ID:        uuid.New(),
		Transform: transform.Identity,
		Logger:    lvlog.Nop(),
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithName sets Model.Name. Panics on "".
func WithName(name string) Option {
	if name == "" {
		panic("model: WithName(\"\")")
	}
	return func(o *Options) { o.Name = name }
}

// WithID fixes Model.ID, for reproducible output. Panics on uuid.Nil.
func WithID(id uuid.UUID) Option {
	if id == uuid.Nil {
		panic("model: WithID(uuid.Nil)")
	}
	return func(o *Options) { o.ID = id }
}

// WithTransform applies t to every vertex at load time. Panics on nil.
func WithTransform(t transform.Transform) Option {
	if t == nil {
		panic("model: WithTransform(nil)")
	}
	return func(o *Options) { o.Transform = t }
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l lvlog.Logger) Option {
	if l == nil {
		panic("model: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}
