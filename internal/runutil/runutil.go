// internal/runutil/runutil.go
package runutil

import "fmt"

// Operational bounds on rows per output unit. Requests outside the range
// are clamped rather than rejected.
const (
	MinRowBudget = 1_000_000
	MaxRowBudget = 2_000_000
)

// ClampRowBudget bounds n to [MinRowBudget, MaxRowBudget] and returns
// warning strings for any adjustment made.
func ClampRowBudget(n uint64) (uint64, []string) {
	switch {
	case n < MinRowBudget:
		return MinRowBudget, []string{fmt.Sprintf("warning: --bank-max %d below minimum; using %d", n, MinRowBudget)}
	case n > MaxRowBudget:
		return MaxRowBudget, []string{fmt.Sprintf("warning: --bank-max %d above maximum; using %d", n, MaxRowBudget)}
	}
	return n, nil
}
