// core/sequence/counter.go
package sequence

// Counter is one monotonic sequence position paired with the render width
// currently in force for that position.
type Counter struct {
	Index uint64
	Width int
}

// CounterSet owns the three scope counters of a generation run. Only the
// counter matching the configured scope is ever read or advanced; the
// others stay untouched so scope isolation is trivially checkable. Bank and register counters restart at index 0 and the initial
// width when their structural unit begins; the global counter never resets
// within a run.
type CounterSet struct {
	scope     Scope
	initWidth int

	global   Counter
	bank     Counter
	register Counter
}

func NewCounterSet(scope Scope, initWidth int) *CounterSet {
	return &CounterSet{
		scope:     scope,
		initWidth: initWidth,
		global:    Counter{Width: initWidth},
		bank:      Counter{Width: initWidth},
		register:  Counter{Width: initWidth},
	}
}

func (cs *CounterSet) Scope() Scope { return cs.scope }

// StartBank marks the beginning of a new bank.
func (cs *CounterSet) StartBank() {
	cs.bank = Counter{Width: cs.initWidth}
}

// StartRegister marks the beginning of a new register.
func (cs *CounterSet) StartRegister() {
	cs.register = Counter{Width: cs.initWidth}
}

// Current returns the active counter's index and width.
func (cs *CounterSet) Current() (uint64, int) {
	c := cs.active()
	return c.Index, c.Width
}

// Advance post-increments the active counter's index.
func (cs *CounterSet) Advance() {
	cs.active().Index++
}

// Widen records a grown render width for the active counter. Widths are
// monotonic: a smaller value is ignored.
func (cs *CounterSet) Widen(w int) {
	if c := cs.active(); w > c.Width {
		c.Width = w
	}
}

// Peek exposes a scope's counter state without advancing it. Tests use it
// to assert isolation between scopes.
func (cs *CounterSet) Peek(s Scope) Counter {
	switch s {
	case ScopeGlobal:
		return cs.global
	case ScopeBank:
		return cs.bank
	default:
		return cs.register
	}
}

func (cs *CounterSet) active() *Counter {
	switch cs.scope {
	case ScopeGlobal:
		return &cs.global
	case ScopeBank:
		return &cs.bank
	default:
		return &cs.register
	}
}
