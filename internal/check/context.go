package check

import "fmcore/internal/term"

// Context is the typing context: a stack of types for the variables in
// scope, index 0 being the most recently bound (so ctx[i] is directly the
// type belonging to de-Bruijn index i, mirroring the term model's own
// convention).
type Context []*term.Term

// Extend returns a new context with ty bound as the new innermost entry.
// The receiver is left untouched; callers build sibling branches of the
// same context (Lam's body vs. a later definition) without interference.
func (c Context) Extend(ty *term.Term) Context {
	extended := make(Context, 0, len(c)+1)
	extended = append(extended, ty)
	return append(extended, c...)
}

// Names is the parallel stack of binder name hints, used only to render
// readable context dumps in error messages.
type Names []string

func (n Names) Extend(name string) Names {
	extended := make(Names, 0, len(n)+1)
	extended = append(extended, name)
	return append(extended, n...)
}
