// Package wire decodes the tokenizer's wire form into a token stream.
// Payload-bearing kinds arrive as "<kind>:<payload>"; everything else is the
// bare literal text of the token itself.
package wire

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/susji/minic/token"
)

var ErrBadToken = errors.New("unknown token")

var payloadkinds = map[string]token.Kind{
	"identifier":   token.Id,
	"int_literal":  token.IntLit,
	"real_literal": token.RealLit,
	"str_literal":  token.StrLit,
}

var keywords = map[string]struct{}{
	"void":  {},
	"main":  {},
	"int":   {},
	"real":  {},
	"cin":   {},
	"cout":  {},
	"endl":  {},
	"if":    {},
	"else":  {},
	"true":  {},
	"false": {},
}

var operators = map[string]struct{}{
	"+": {}, "-": {}, "*": {}, "/": {}, "^": {},
	"<": {}, "<=": {}, ">": {}, ">=": {}, "==": {}, "!=": {},
	"=": {}, ">>": {}, "<<": {},
}

var puncts = map[string]struct{}{
	"(": {}, ")": {}, "{": {}, "}": {}, ";": {},
}

const endmarker = "$"

// Decode turns a sequence of wire-form strings into a token stream. The
// payload is everything after the first ':' following the kind tag; we
// split on the delimiter instead of slicing at a fixed offset so that kind
// tags of differing lengths cannot corrupt payloads.
func Decode(raw []string) (*token.Tokens, error) {
	toks := &token.Tokens{}
	for i, s := range raw {
		kindname, payload, found := strings.Cut(s, ":")
		if found {
			kind, ok := payloadkinds[kindname]
			if !ok {
				return nil, fmt.Errorf("%w %q", ErrBadToken, s)
			}
			toks.Add(token.New(kind, i, payload))
			continue
		}
		var kind token.Kind
		switch {
		case s == endmarker:
			kind = token.EndMarker
		case in(keywords, s):
			kind = token.Keyword
		case in(operators, s):
			kind = token.Operator
		case in(puncts, s):
			kind = token.Punct
		default:
			return nil, fmt.Errorf("%w %q", ErrBadToken, s)
		}
		toks.Add(token.New(kind, i, s))
	}
	return toks, nil
}

// DecodeReader reads one wire token per line. The framing is line-oriented
// because str_literal payloads may contain interior spaces. Blank lines are
// skipped.
func DecodeReader(r io.Reader) (*token.Tokens, error) {
	var raw []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		raw = append(raw, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return Decode(raw)
}

func in(set map[string]struct{}, s string) bool {
	_, ok := set[s]
	return ok
}
