package analyze

import (
	"github.com/susji/minic/token"
	"github.com/susji/minic/types"
)

var arithops = map[string]struct{}{
	"+": {}, "-": {}, "*": {}, "/": {}, "^": {},
}

var relops = map[string]struct{}{
	"<": {}, "<=": {}, ">": {}, ">=": {}, "==": {}, "!=": {},
}

// value implements "<value> = <id> | <intlit> | <reallit> | <strlit> | true
// | false" and evaluates to its static type. Identifiers must resolve.
func (s *Analyzer) value() (types.TypeEnum, error) {
	cur := s.toks.Peek()
	if cur == nil {
		return 0, s.wrap(Syntax, token.EOT)
	}
	switch cur.Kind() {
	case token.Id:
		name := s.toks.Pop()
		t, err := s.table.Lookup(name.Value())
		if err != nil {
			return 0, s.wrapAt(name, Undefined, err)
		}
		return t, nil
	case token.IntLit:
		s.toks.Pop()
		return types.TYPE_INT, nil
	case token.RealLit:
		s.toks.Pop()
		return types.TYPE_REAL, nil
	case token.StrLit:
		s.toks.Pop()
		return types.TYPE_STR, nil
	case token.Keyword:
		switch cur.Value() {
		case "true", "false":
			s.toks.Pop()
			return types.TYPE_BOOL, nil
		}
	}
	return 0, s.errorf(
		Syntax, "%w value, but found %s", token.ErrUnexpected, cur)
}

// expr implements "<expr> = <value> [ <op> <value> ]". The operator token
// joins the expression only when it belongs to the arithmetic or relational
// group; any other lookahead ends the expression at the single value.
func (s *Analyzer) expr() (types.TypeEnum, error) {
	lt, err := s.value()
	if err != nil {
		return 0, err
	}
	cur := s.toks.Peek()
	if cur == nil || cur.Kind() != token.Operator {
		return lt, nil
	}
	op := cur.Value()
	if !in(arithops, op) && !in(relops, op) {
		return lt, nil
	}
	s.toks.Pop()
	rt, err := s.value()
	if err != nil {
		return 0, err
	}
	return s.binary(op, lt, rt)
}

// binary enforces the operator/operand compatibility rules and evaluates the
// result type.
func (s *Analyzer) binary(op string, lt, rt types.TypeEnum) (types.TypeEnum, error) {
	if in(arithops, op) {
		if !lt.Matches(rt) || !lt.Numeric() {
			return 0, s.errorf(Type, "operator %s %w", op, ErrArith)
		}
		return lt, nil
	}
	// Comparison unconditionally evaluates to boolean. Equality over real
	// operands is accepted with an advisory warning instead of a failure:
	// rounding makes it unreliable, not illegal.
	if op == "==" && (lt == types.TYPE_REAL || rt == types.TYPE_REAL) {
		s.warnf("comparing '%s' == '%s': real equality is unreliable", lt, rt)
		return types.TYPE_BOOL, nil
	}
	if !lt.Matches(rt) {
		return 0, s.errorf(Type, "%w '%s' %s '%s'", ErrMismatch, lt, op, rt)
	}
	return types.TYPE_BOOL, nil
}

func in(set map[string]struct{}, s string) bool {
	_, ok := set[s]
	return ok
}
