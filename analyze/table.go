package analyze

import (
	"fmt"

	"github.com/susji/minic/types"
)

// SymbolTable maps declared variable names to their types. The language has
// exactly one flat scope, so there is no parent link and no shadowing:
// declarations made inside a conditional branch land in the same table the
// rest of the program sees.
type SymbolTable map[string]types.TypeEnum

func NewSymbolTable() SymbolTable {
	return SymbolTable{}
}

// Declare adds a binding. A name may be declared exactly once for the
// lifetime of one analysis run, independent of which statement form
// introduced it.
func (st SymbolTable) Declare(name string, t types.TypeEnum) error {
	if _, ok := st[name]; ok {
		return fmt.Errorf("%w '%s'", ErrRedefined, name)
	}
	st[name] = t
	return nil
}

func (st SymbolTable) Lookup(name string) (types.TypeEnum, error) {
	t, ok := st[name]
	if !ok {
		return 0, fmt.Errorf("variable '%s' %w", name, ErrUndefined)
	}
	return t, nil
}
