package check

import (
	"fmt"
	"strings"

	"fmcore/internal/term"
)

// TypeError is the single structural error kind the checker surfaces.
// It carries nothing beyond a message: no severity, no error code, no
// suggested fix. A definition's check aborts at the first TypeError;
// other definitions in the same module are checked independently.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string {
	return e.Message
}

func newErr(format string, args ...any) *TypeError {
	return &TypeError{Message: fmt.Sprintf(format, args...)}
}

func errErasureMismatch() *TypeError {
	return newErr("Erasure mismatch")
}

func errLambdaNonFunction() *TypeError {
	return newErr("Lambda has a non-function type")
}

func errUnboundVariable(i int) *TypeError {
	return newErr("Unbound variable: #%d", i)
}

func errUndefinedReference(name string) *TypeError {
	return newErr("Undefined Reference: %s", name)
}

func errNonFunctionApplication() *TypeError {
	return newErr("Non-function application")
}

func errCantInferType() *TypeError {
	return newErr("Can't infer type")
}

// errUnexpectedType builds the one multi-line message in the set: it
// echoes the expected and inferred types, the offending term, and the
// context and name hints in scope at the point of failure.
func errUnexpectedType(expected, inferred, t *term.Term, ctx Context, names Names) *TypeError {
	var b strings.Builder
	fmt.Fprintf(&b, "Unexpected type: %s\n", t)
	fmt.Fprintf(&b, "  expected: %s\n", expected)
	fmt.Fprintf(&b, "  inferred: %s\n", inferred)
	fmt.Fprintf(&b, "  context:\n")
	for i, ty := range ctx {
		name := "_"
		if i < len(names) {
			name = names[i]
		}
		fmt.Fprintf(&b, "    #%d %s : %s\n", i, name, ty)
	}
	return &TypeError{Message: strings.TrimRight(b.String(), "\n")}
}
