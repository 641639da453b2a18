// Package module collects named definitions into a single checkable unit
// and exposes the lookups the reducer and checker need from it.
package module

import (
	"fmt"

	"fmcore/internal/fmhash"
	"fmcore/internal/term"
)

// Definition is one top-level `name : type body` declaration. Hash is
// filled in by Add, not by the caller, the same way a Term's hash is
// filled in by its constructor rather than by hand.
type Definition struct {
	Name string
	Type *term.Term
	Body *term.Term
	Hash fmhash.Hash
}

// Module is an ordered, named collection of definitions. Order is
// preserved from the source file so checking and reporting proceed in
// declaration order, but lookups by name are O(1).
type Module struct {
	order []string
	defs  map[string]*Definition
}

// New returns an empty module.
func New() *Module {
	return &Module{defs: make(map[string]*Definition)}
}

// Add inserts a definition, returning an error if the name is already
// declared in this module. def.Hash is computed here as the combination
// of its declared type's and body's hashes.
func (m *Module) Add(def *Definition) error {
	if _, exists := m.defs[def.Name]; exists {
		return fmt.Errorf("duplicate definition: %s", def.Name)
	}
	def.Hash = fmhash.Combine(def.Type.Hash, def.Body.Hash)
	m.order = append(m.order, def.Name)
	m.defs[def.Name] = def
	return nil
}

// Hash folds every definition's hash, in declaration order, into a single
// aggregate value identifying the module's contents.
func (m *Module) Hash() fmhash.Hash {
	var h fmhash.Hash
	for _, name := range m.order {
		h = fmhash.Combine(h, m.defs[name].Hash)
	}
	return h
}

// Definitions returns the module's definitions in declaration order.
func (m *Module) Definitions() []*Definition {
	out := make([]*Definition, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.defs[name])
	}
	return out
}

// Body implements hoas.Definitions: it resolves a global name to the term
// it was defined to reduce to.
func (m *Module) Body(name string) (*term.Term, bool) {
	def, ok := m.defs[name]
	if !ok {
		return nil, false
	}
	return def.Body, true
}

// DeclaredType implements check.Env: it resolves a global name to its
// declared type, used when inferring a bare Ref.
func (m *Module) DeclaredType(name string) (*term.Term, bool) {
	def, ok := m.defs[name]
	if !ok {
		return nil, false
	}
	return def.Type, true
}
