package term

// Shift rebuilds t with every free Var index (every index >= depth) bumped
// by inc. Shifting never touches bound variables that refer to binders
// inside t itself (those have indices below depth by construction).
func Shift(inc, depth int, t *Term) *Term {
	if t == nil {
		return nil
	}
	switch t.Tag {
	case Var:
		if t.Index >= depth {
			return NewVar(t.Index + inc)
		}
		return NewVar(t.Index)
	case Ref:
		return NewRef(t.Name)
	case Typ:
		return NewTyp()
	case All:
		bindType := Shift(inc, depth+1, t.BindType)
		body := Shift(inc, depth+2, t.Body)
		return NewAll(t.Erased, t.Self, t.Bind, bindType, body)
	case Lam:
		return NewLam(t.Erased, t.Name, Shift(inc, depth+1, t.Body))
	case App:
		return NewApp(t.Erased, Shift(inc, depth, t.Fun), Shift(inc, depth, t.Arg))
	case Let:
		return NewLet(t.Name, Shift(inc, depth, t.Expr), Shift(inc, depth+1, t.Body))
	case Ann:
		return NewAnn(t.Done, Shift(inc, depth, t.Type), Shift(inc, depth, t.Value))
	default:
		return t
	}
}

// Subst replaces the Var at index depth inside t with v, decrementing any
// Var with an index strictly greater than depth (to close the gap left by
// removing the binder depth corresponded to). Every binder crossed shifts
// v by the binder's width and advances depth by the same width, so v is
// always expressed relative to the scope Subst is currently rewriting.
func Subst(v *Term, depth int, t *Term) *Term {
	if t == nil {
		return nil
	}
	switch t.Tag {
	case Var:
		switch {
		case t.Index == depth:
			return v
		case t.Index > depth:
			return NewVar(t.Index - 1)
		default:
			return NewVar(t.Index)
		}
	case Ref:
		return NewRef(t.Name)
	case Typ:
		return NewTyp()
	case All:
		bindType := Subst(Shift(1, 0, v), depth+1, t.BindType)
		body := Subst(Shift(2, 0, v), depth+2, t.Body)
		return NewAll(t.Erased, t.Self, t.Bind, bindType, body)
	case Lam:
		body := Subst(Shift(1, 0, v), depth+1, t.Body)
		return NewLam(t.Erased, t.Name, body)
	case App:
		return NewApp(t.Erased, Subst(v, depth, t.Fun), Subst(v, depth, t.Arg))
	case Let:
		expr := Subst(v, depth, t.Expr)
		body := Subst(Shift(1, 0, v), depth+1, t.Body)
		return NewLet(t.Name, expr, body)
	case Ann:
		return NewAnn(t.Done, Subst(v, depth, t.Type), Subst(v, depth, t.Value))
	default:
		return t
	}
}
