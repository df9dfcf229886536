// core/sequence/scope.go
package sequence

import "github.com/pkg/errors"

// Scope selects which counter advances as rows are emitted. It is a static
// run-level choice, never re-evaluated per row.
type Scope int

const (
	ScopeBank Scope = iota
	ScopeRegister
	ScopeGlobal
)

// ParseScope maps the CLI spelling to a Scope.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "bank":
		return ScopeBank, nil
	case "register":
		return ScopeRegister, nil
	case "global":
		return ScopeGlobal, nil
	}
	return 0, errors.Errorf("unknown scope %q (use bank|register|global)", s)
}

func (s Scope) String() string {
	switch s {
	case ScopeBank:
		return "bank"
	case ScopeRegister:
		return "register"
	case ScopeGlobal:
		return "global"
	}
	return "unknown"
}
