// Package analyze is responsible for grammar recognition, variable scoping
// and type checking of an already-tokenized program. All three happen in one
// depth-first, left-to-right pass over the token stream: the grammar is
// LL(1), so the next token always decides the production, and the first rule
// violation anywhere aborts the whole run as the single diagnostic.
package analyze

import (
	"fmt"

	"github.com/susji/minic/token"
)

// Analyzer maintains the state of one analysis run: the cursor into the
// token stream, the symbol table it grows, and any advisory warnings emitted
// along the way. Warnings never change the pass/fail outcome.
type Analyzer struct {
	toks  *token.Tokens
	table SymbolTable
	warns []string
}

func New() *Analyzer {
	ret := &Analyzer{}
	ret.reset()
	return ret
}

func (s *Analyzer) reset() {
	s.table = NewSymbolTable()
	s.warns = nil
}

// Table returns the symbol table built so far. After a failed run it holds
// the declarations recognized up to the failure point.
func (s *Analyzer) Table() SymbolTable {
	return s.table
}

func (s *Analyzer) Warnings() []string {
	return s.warns
}

func (s *Analyzer) warnf(format string, a ...interface{}) {
	s.warns = append(s.warns, fmt.Sprintf(format, a...))
}

// Check runs the combined pass over the whole program. The expected shape is
// fixed: void main ( ) { Stmts } $ with nothing after the end marker.
func (s *Analyzer) Check(toks *token.Tokens) error {
	s.reset()
	s.toks = toks
	return s.program()
}

func (s *Analyzer) program() error {
	if err := s.accept(token.Keyword, "void"); err != nil {
		return err
	}
	if err := s.accept(token.Keyword, "main"); err != nil {
		return err
	}
	if err := s.accept(token.Punct, "("); err != nil {
		return err
	}
	if err := s.accept(token.Punct, ")"); err != nil {
		return err
	}
	if err := s.accept(token.Punct, "{"); err != nil {
		return err
	}
	if err := s.stmts(); err != nil {
		return err
	}
	if err := s.accept(token.Punct, "}"); err != nil {
		return err
	}
	if err := s.accept(token.EndMarker, "$"); err != nil {
		return err
	}
	if cur := s.toks.Peek(); cur != nil {
		return s.errorf(
			Syntax, "%w end of input, but found %s", token.ErrUnexpected, cur)
	}
	return nil
}

func (s *Analyzer) accept(kind token.Kind, value string) error {
	if err := s.toks.Accept(kind, value); err != nil {
		return s.wrap(Syntax, err)
	}
	return nil
}

func (s *Analyzer) acceptKind(kind token.Kind) (*token.Token, error) {
	tok, err := s.toks.AcceptKind(kind)
	if err != nil {
		return nil, s.wrap(Syntax, err)
	}
	return tok, nil
}

// Check is the canonical entry point: full grammar, symbol-table and type
// check in one pass.
func Check(toks *token.Tokens) error {
	return New().Check(toks)
}

// BuildSymbolTable runs the same pass but additionally hands the symbol
// table to the caller, e.g. for downstream use. On failure the table
// reflects the declarations made before the diagnostic.
func BuildSymbolTable(toks *token.Tokens) (SymbolTable, error) {
	s := New()
	err := s.Check(toks)
	return s.Table(), err
}
