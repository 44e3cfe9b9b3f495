// Package types captures the static types of the analyzed language.
package types

type TypeEnum int

const (
	TYPE_INT = iota
	TYPE_REAL
	TYPE_STR
	TYPE_BOOL
)

var typenames = [...]string{
	"int",
	"real",
	"str",
	"bool",
}

func (t TypeEnum) String() string {
	return typenames[t]
}

// Numeric reports whether the type takes part in arithmetic. Only numeric
// types are declarable; str and bool arise solely from literals and
// expressions.
func (t TypeEnum) Numeric() bool {
	return t == TYPE_INT || t == TYPE_REAL
}

func (t TypeEnum) Matches(t2 TypeEnum) bool {
	return t == t2
}
