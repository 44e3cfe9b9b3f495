package analyze

import (
	"errors"
	"fmt"

	"github.com/susji/minic/token"
)

// Phase classifies a diagnostic for whoever renders it. Redefinition and
// Undefined are both semantic failures; they keep separate phases so callers
// can tell them apart programmatically.
type Phase int

const (
	Syntax = iota
	Redefinition
	Undefined
	Type
)

var phasenames = [...]string{
	"syntax_error",
	"semantic_error",
	"semantic_error",
	"type_error",
}

func (p Phase) String() string {
	return phasenames[p]
}

var (
	ErrRedefined = errors.New("redefinition of variable")
	ErrUndefined = errors.New("undefined")
	ErrAssign    = errors.New("cannot assign")
	ErrCond      = errors.New("if condition must be 'bool'")
	ErrArith     = errors.New("must involve 'int' or 'real'")
	ErrMismatch  = errors.New("type mismatch")
)

// Error is the single diagnostic an analysis run may produce. Off is the
// offset of the offending token within the input sequence.
type Error struct {
	Phase   Phase
	Off     int
	Wrapped error
}

func (e *Error) Error() string {
	return e.Wrapped.Error()
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

func (s *Analyzer) wrap(phase Phase, err error) error {
	return &Error{
		Phase:   phase,
		Off:     s.toks.Off(),
		Wrapped: err,
	}
}

// wrapAt pins the diagnostic to a specific, already-consumed token instead
// of the cursor position.
func (s *Analyzer) wrapAt(tok *token.Token, phase Phase, err error) error {
	return &Error{
		Phase:   phase,
		Off:     tok.Off(),
		Wrapped: err,
	}
}

func (s *Analyzer) errorf(phase Phase, format string, a ...interface{}) error {
	return s.wrap(phase, fmt.Errorf(format, a...))
}
