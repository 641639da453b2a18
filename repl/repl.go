// Package repl implements a small interactive loop over the checker: one
// bare term per line is inferred and reported, one `name : type` line
// followed by a body line is checked and, on success, added to the
// session's running module so later terms and definitions can reference
// it by name.
// SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fmcore/internal/check"
	"fmcore/internal/module"
	"fmcore/internal/parser"
)

const prompt = ">> "

// Run drives one session from in to out until in is exhausted.
func Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	m := module.New()

	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Fprint(out, prompt)
			continue
		}

		if startsDefinition(line) {
			fmt.Fprint(out, prompt)
			scanner.Scan()
			evalDefinition(m, line+"\n"+scanner.Text(), out)
		} else {
			evalTerm(m, line, out)
		}
		fmt.Fprint(out, prompt)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

// startsDefinition reports whether line looks like the first line of a
// `name : type` / body pair rather than a bare term: a name followed by
// a single, undoubled colon.
func startsDefinition(line string) bool {
	tokens := parser.NewScanner(line).ScanTokens()
	return len(tokens) >= 2 && tokens[0].Type == parser.IDENTIFIER && tokens[1].Type == parser.COLON
}

func evalDefinition(m *module.Module, source string, out io.Writer) {
	defs, err := parser.ParseModule(source)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	def := defs[0]
	if err := check.Check(m, nil, nil, def.Type, def.Body); err != nil {
		fmt.Fprintln(out, err)
		return
	}
	if err := m.Add(&module.Definition{Name: def.Name, Type: def.Type, Body: def.Body}); err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintf(out, "%s : %s\n", def.Name, def.Type)
}

func evalTerm(m *module.Module, line string, out io.Writer) {
	t, err := parser.ParseTerm(line)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	ty, err := check.Infer(m, nil, nil, t)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintf(out, "%s : %s\n", t, ty)
}
