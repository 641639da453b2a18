package parser

import "fmcore/internal/term"

// Scope is the stack of name hints in lexical scope, innermost first,
// mirroring the de-Bruijn indexing convention used throughout the term
// model: scope[i] is the name bound at index i.
type Scope []string

// push returns a new scope with names prepended in the order given, so
// push(bind, self) yields bind at index 0 and self at index 1 -- matching
// an All body's two-binder convention.
func (s Scope) push(names ...string) Scope {
	out := make(Scope, 0, len(names)+len(s))
	out = append(out, names...)
	return append(out, s...)
}

// resolve looks up name in scope: a match makes it a Var at that index
// (the innermost, i.e. lowest-index, match wins, which is exactly what
// gives a shadowing inner binder priority over an outer one of the same
// name); no match makes it a free Ref.
func resolve(scope Scope, name string) *term.Term {
	for i, bound := range scope {
		if bound == name {
			return term.NewVar(i)
		}
	}
	return term.NewRef(name)
}
