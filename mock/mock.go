// Package mock provides test doubles for banter interfaces using function
// fields.
package mock

import (
	"context"

	"github.com/banterhq/banter"
)

// Interface compliance checks.
var (
	_ banter.Generator = (*Generator)(nil)
	_ banter.Store     = (*Store)(nil)
)

// Generator is a test double for banter.Generator.
// Set GenerateFn before calling Generate.
type Generator struct {
	GenerateFn func(ctx context.Context, req banter.GenerateRequest) (string, error)
}

// Generate delegates to GenerateFn.
func (g *Generator) Generate(ctx context.Context, req banter.GenerateRequest) (string, error) {
	return g.GenerateFn(ctx, req)
}

// Store is a test double for banter.Store.
// Set the function fields for the methods you need; unset methods behave as
// a working empty store so controller tests don't have to stub all three.
type Store struct {
	LoadFn  func() ([]banter.Session, error)
	SaveFn  func(sessions []banter.Session) error
	CloseFn func() error
}

// Load delegates to LoadFn, or returns an empty list.
func (s *Store) Load() ([]banter.Session, error) {
	if s.LoadFn == nil {
		return nil, nil
	}
	return s.LoadFn()
}

// Save delegates to SaveFn, or discards the list.
func (s *Store) Save(sessions []banter.Session) error {
	if s.SaveFn == nil {
		return nil
	}
	return s.SaveFn(sessions)
}

// Close delegates to CloseFn, or is a no-op.
func (s *Store) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
