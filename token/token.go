package token

import (
	"errors"
	"fmt"
	"strings"
)

var (
	EOT = errors.New("end of tokens")
	// ErrUnexpected is the basis of every "expecting X, but found Y"
	// diagnostic produced while consuming the stream.
	ErrUnexpected = errors.New("expecting")
)

// Tokens implements a FIFO for individual tokens. The position only ever
// advances; the grammar consuming this is LL(1) and never backtracks.
type Tokens struct {
	toks []Token
	off  int
}

type Token struct {
	kind  Kind
	value string
	off   int
}

// New builds a single token. off is the token's zero-based position in the
// input sequence; the wire form carries no line or column information, so
// the offset is all we have for locating diagnostics.
func New(kind Kind, off int, value string) Token {
	if !validkind(kind) {
		panic(fmt.Sprintf("invalid token kind: %v", kind))
	}
	return Token{
		kind:  kind,
		value: value,
		off:   off,
	}
}

type Kind int

const (
	Keyword = iota
	Operator
	Punct
	EndMarker
	Id
	IntLit
	RealLit
	StrLit
)

var toknames = [...]string{
	"keyword",
	"operator",
	"punctuation",
	"end-of-input",
	"identifier",
	"int_literal",
	"real_literal",
	"str_literal",
}

func (k Kind) String() string {
	return toknames[k]
}

func validkind(kind Kind) bool {
	return kind >= 0 && int(kind) <= (len(toknames)-1)
}

func (tok *Token) String() string {
	switch tok.kind {
	case Id, IntLit, RealLit:
		return tok.value
	default:
		return fmt.Sprintf("%q", tok.value)
	}
}

func (tok *Token) Value() string {
	return tok.value
}

func (tok *Token) Kind() Kind {
	return tok.kind
}

func (tok *Token) Off() int {
	return tok.off
}

// Is reports whether the token matches both kind and literal value.
func (tok *Token) Is(kind Kind, value string) bool {
	return tok.kind == kind && tok.value == value
}

func (toks *Tokens) Add(tok Token) *Tokens {
	toks.toks = append(toks.toks, tok)
	return toks
}

func (toks *Tokens) String() string {
	b := &strings.Builder{}
	for _, tok := range toks.toks {
		b.WriteString(
			fmt.Sprintf("[%d] %s %s\n", tok.Off(), tok.Kind(), tok.String()))
	}
	return b.String()
}

func (toks *Tokens) Len() int {
	return len(toks.toks)
}

// Off returns the position of the next unconsumed token.
func (toks *Tokens) Off() int {
	return toks.off
}

// Peek returns the current token-to-be-consumed without advancing, or nil
// once the stream is exhausted.
func (toks *Tokens) Peek() *Token {
	if toks.Len() == 0 {
		return nil
	}
	return &toks.toks[0]
}

func (toks *Tokens) Pop() *Token {
	if toks.Len() == 0 {
		return nil
	}
	toks.off++
	if toks.Len() == 1 {
		tok := &toks.toks[0]
		toks.toks = nil
		return tok
	}
	var tok Token
	tok, toks.toks = toks.toks[0], toks.toks[1:]
	return &tok
}

// Accept consumes the next token iff it matches kind and value exactly.
func (toks *Tokens) Accept(kind Kind, value string) error {
	cur := toks.Peek()
	if cur == nil {
		return EOT
	}
	if !cur.Is(kind, value) {
		return fmt.Errorf("%w %q, but found %s", ErrUnexpected, value, cur)
	}
	toks.Pop()
	return nil
}

// AcceptKind consumes the next token iff its kind matches, regardless of
// payload. The consumed token is returned so callers may read the payload.
func (toks *Tokens) AcceptKind(kind Kind) (*Token, error) {
	cur := toks.Peek()
	if cur == nil {
		return nil, EOT
	}
	if cur.Kind() != kind {
		return nil, fmt.Errorf("%w %s, but found %s", ErrUnexpected, kind, cur)
	}
	return toks.Pop(), nil
}
