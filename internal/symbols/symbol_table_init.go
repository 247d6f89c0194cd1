package symbols

import (
	"sync"

	"github.com/funvibe/declcheck/internal/config"
)

var (
	prelude     *SymbolTable
	preludeOnce sync.Once
)

// GetPrelude returns the shared scope holding the built-in types.
func GetPrelude() *SymbolTable {
	preludeOnce.Do(func() {
		prelude = NewEmptySymbolTable()
		prelude.scopeType = ScopePrelude
		prelude.InitBuiltins()
	})
	return prelude
}

// NewSymbolTable creates a global scope on top of the prelude.
func NewSymbolTable() *SymbolTable {
	return NewEnclosedSymbolTable(GetPrelude(), ScopeGlobal)
}

// InitBuiltins registers the primitive types.
func (st *SymbolTable) InitBuiltins() {
	for _, name := range config.BuiltinTypeNames {
		st.DefineType(name, nil, nil)
	}
}
