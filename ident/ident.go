// Package ident generates opaque node identifiers.
//
// Engines never invent ids themselves: every insert takes a Generator so the
// host decides between globally unique ids (UUID) and reproducible ones
// (Sequential) for golden output and tests.
package ident

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// ErrUnknownScheme is returned by ByName for unrecognized scheme names.
var ErrUnknownScheme = errors.New("ident: unknown id scheme")

// Generator yields a fresh identifier per call.
// Implementations must never return the same id twice.
type Generator interface {
	Next() string
}

// Func adapts a plain function to Generator.
type Func func() string

// Next calls f.
func (f Func) Next() string { return f() }

// UUID returns a Generator producing random version-4 UUID strings.
func UUID() Generator {
	return Func(func() string { return uuid.New().String() })
}

// sequential counts upward from 1. The counter is atomic so a generator may be
// shared by concurrently evaluated scripts.
type sequential struct {
	prefix string
	n      atomic.Uint64
}

// Sequential returns a Generator yielding prefix1, prefix2, ...
func Sequential(prefix string) Generator {
	return &sequential{prefix: prefix}
}

func (s *sequential) Next() string {
	return s.prefix + strconv.FormatUint(s.n.Add(1), 10)
}

// Scheme names accepted by ByName.
const (
	SchemeUUID       = "uuid"
	SchemeSequential = "sequential"
)

// ByName resolves a configured scheme. prefix only applies to the sequential scheme.
func ByName(scheme, prefix string) (Generator, error) {
	switch strings.ToLower(scheme) {
	case "", SchemeUUID:
		return UUID(), nil
	case SchemeSequential:
		return Sequential(prefix), nil
	default:
		return nil, errors.Wrapf(ErrUnknownScheme, "%q", scheme)
	}
}
