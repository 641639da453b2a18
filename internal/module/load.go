package module

import "fmcore/internal/parser"

// FromSource parses source as a sequence of definitions and assembles
// them into a Module, rejecting duplicate names in declaration order.
func FromSource(source string) (*Module, error) {
	defs, err := parser.ParseModule(source)
	if err != nil {
		return nil, err
	}

	m := New()
	for _, d := range defs {
		if err := m.Add(&Definition{Name: d.Name, Type: d.Type, Body: d.Body}); err != nil {
			return nil, err
		}
	}
	return m, nil
}
