package analyze

import (
	"github.com/susji/minic/token"
	"github.com/susji/minic/types"
)

var decltypes = map[string]types.TypeEnum{
	"int":  types.TYPE_INT,
	"real": types.TYPE_REAL,
}

// Stmts implements "<stmts> = <stmt> <stmt>*". At least one statement is
// required; we keep recognizing as long as the lookahead is a valid
// statement leader, and leave the closing '}' for the caller.
func (s *Analyzer) stmts() error {
	if err := s.stmt(); err != nil {
		return err
	}
	for s.isLeader(s.toks.Peek()) {
		if err := s.stmt(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Analyzer) isLeader(cur *token.Token) bool {
	if cur == nil {
		return false
	}
	switch cur.Kind() {
	case token.Id:
		return true
	case token.Punct:
		return cur.Value() == ";"
	case token.Keyword:
		switch cur.Value() {
		case "int", "real", "cin", "cout", "if":
			return true
		}
	}
	return false
}

// stmt dispatches on the leading token, which uniquely determines the
// statement form.
func (s *Analyzer) stmt() error {
	cur := s.toks.Peek()
	if cur == nil {
		return s.wrap(Syntax, token.EOT)
	}
	switch {
	case cur.Is(token.Punct, ";"):
		s.toks.Pop()
		return nil
	case cur.Is(token.Keyword, "int"), cur.Is(token.Keyword, "real"):
		return s.declStmt()
	case cur.Is(token.Keyword, "cin"):
		return s.cinStmt()
	case cur.Is(token.Keyword, "cout"):
		return s.coutStmt()
	case cur.Kind() == token.Id:
		return s.assignStmt()
	case cur.Is(token.Keyword, "if"):
		return s.ifStmt()
	}
	return s.errorf(
		Syntax, "%w statement, but found %s", token.ErrUnexpected, cur)
}

// declStmt implements "<type> <id> ;". The binding is permanent for the
// rest of the run, also when the declaration sits inside an if/else body.
func (s *Analyzer) declStmt() error {
	kw := s.toks.Pop()
	name, err := s.acceptKind(token.Id)
	if err != nil {
		return err
	}
	if err := s.table.Declare(name.Value(), decltypes[kw.Value()]); err != nil {
		return s.wrapAt(name, Redefinition, err)
	}
	return s.accept(token.Punct, ";")
}

// cinStmt implements "cin >> <id> ;". The target must already be declared.
func (s *Analyzer) cinStmt() error {
	s.toks.Pop()
	if err := s.accept(token.Operator, ">>"); err != nil {
		return err
	}
	name, err := s.acceptKind(token.Id)
	if err != nil {
		return err
	}
	if _, err := s.table.Lookup(name.Value()); err != nil {
		return s.wrapAt(name, Undefined, err)
	}
	return s.accept(token.Punct, ";")
}

// coutStmt implements "cout << (<value> | endl) ;". Anything types fine for
// printing, but an identifier still has to resolve.
func (s *Analyzer) coutStmt() error {
	s.toks.Pop()
	if err := s.accept(token.Operator, "<<"); err != nil {
		return err
	}
	if cur := s.toks.Peek(); cur != nil && cur.Is(token.Keyword, "endl") {
		s.toks.Pop()
	} else if _, err := s.value(); err != nil {
		return err
	}
	return s.accept(token.Punct, ";")
}

// assignStmt implements "<id> = <expr> ;". The rvalue type has to match the
// variable exactly, with the single exception of widening int into real.
func (s *Analyzer) assignStmt() error {
	name := s.toks.Pop()
	lt, err := s.table.Lookup(name.Value())
	if err != nil {
		return s.wrapAt(name, Undefined, err)
	}
	if err := s.accept(token.Operator, "="); err != nil {
		return err
	}
	rt, err := s.expr()
	if err != nil {
		return err
	}
	if !lt.Matches(rt) &&
		!(lt == types.TYPE_REAL && rt == types.TYPE_INT) {
		return s.errorf(
			Type, "%w '%s' to variable of type '%s'", ErrAssign, rt, lt)
	}
	return s.accept(token.Punct, ";")
}

// ifStmt implements "if ( <expr> ) <stmt> [ else <stmt> ]". Both branches
// recurse with the same symbol table; the language has no nested scopes.
func (s *Analyzer) ifStmt() error {
	s.toks.Pop()
	if err := s.accept(token.Punct, "("); err != nil {
		return err
	}
	ct, err := s.expr()
	if err != nil {
		return err
	}
	if err := s.accept(token.Punct, ")"); err != nil {
		return err
	}
	if ct != types.TYPE_BOOL {
		return s.errorf(Type, "%w, but found '%s'", ErrCond, ct)
	}
	if err := s.stmt(); err != nil {
		return err
	}
	if cur := s.toks.Peek(); cur != nil && cur.Is(token.Keyword, "else") {
		s.toks.Pop()
		return s.stmt()
	}
	return nil
}
