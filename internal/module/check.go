package module

import "fmcore/internal/check"

// Result is the outcome of checking one definition: Err is nil on success.
type Result struct {
	Name string
	Err  error
}

// Check runs check.Check([], [], decl_type, body) for every definition in
// m, independently: a failing definition does not prevent the rest of the
// module from being checked. Results are returned in declaration order.
func Check(m *Module) []Result {
	results := make([]Result, 0, len(m.order))
	for _, def := range m.Definitions() {
		err := check.Check(m, nil, nil, def.Type, def.Body)
		results = append(results, Result{Name: def.Name, Err: err})
	}
	return results
}

// OK reports whether every definition in results checked successfully.
func OK(results []Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return false
		}
	}
	return true
}
