package dpll

// CNF is a conjunction of disjunctive clauses stored as a single flat buffer
// of literals: clauses are laid end to end, each terminated by EmptyLiteral.
// A flat buffer was chosen over a slice-of-clauses representation because
// propagate_unit's two-cursor compaction (see propagate.go) is cache-friendly
// and needs no per-clause allocation; see the package's accompanying design
// notes for the tradeoffs against an undo-log based checkpoint scheme.
//
// A CNF is owned exclusively by whichever search-stack slot holds it: copies
// made with Copy are deep and independent, and mutation of one CNF never
// affects another.
type CNF struct {
	buf            []Literal
	variablesCount int
	clausesCount   int

	// pending holds literals exposed as new unit clauses by the most recent
	// propagateUnit call, in the order they were exposed. findSingularClause
	// drains this queue before falling back to a full rescan.
	pending *literalQueue

	// dirty is false when a full scan has found no singular clause, or when
	// findSingularClause has just handed out the last pending hint, and no
	// mutation has happened since. It implements the Clean/Dirty state
	// machine of the simplification rules.
	dirty bool

	// pureIdx caches the packed pure-literal usage table. It is rebuilt from
	// scratch by findPureLiteral before every pure-literal removal pass, so
	// staleness between propagations is fine (see pureindex.go).
	pureIdx *pureIndex
}

// NewCNF returns an empty CNF declaring variablesCount variables and no
// clauses. Clauses are added with AddClause.
func NewCNF(variablesCount int) *CNF {
	return &CNF{variablesCount: variablesCount, dirty: true}
}

// AddVariable registers one additional variable and returns its 1-based
// number. It exists so a DIMACS reader can grow the variable count
// incrementally; most callers instead know variablesCount up front and use
// NewCNF.
func (c *CNF) AddVariable() int {
	c.variablesCount++
	return c.variablesCount
}

// AddClause appends one clause to the CNF. Duplicate literals within the
// clause are permitted (they are semantically meaningless, per the clause
// definition) and are not deduplicated here; remove_trivial_clauses is the
// only pass that inspects a clause's literals for redundancy before search.
func (c *CNF) AddClause(literals []Literal) error {
	c.buf = append(c.buf, literals...)
	c.buf = append(c.buf, EmptyLiteral)
	c.clausesCount++
	c.dirty = true
	return nil
}

// ClausesCount returns the current number of clauses.
func (c *CNF) ClausesCount() int {
	return c.clausesCount
}

// VariablesCount returns the declared variable bound V.
func (c *CNF) VariablesCount() int {
	return c.variablesCount
}

// FirstLiteral returns the first literal of the first clause, or
// EmptyLiteral if the CNF has no clauses. The search driver uses it to pick
// a deterministic branching variable.
func (c *CNF) FirstLiteral() Literal {
	if len(c.buf) == 0 {
		return EmptyLiteral
	}
	return c.buf[0]
}

// findSingularClause returns the literal of any clause of length exactly 1,
// preferring a freshly-exposed pending-unit hint when one is queued. When no
// hint is queued and the CNF is Clean (untouched since the last full scan) it
// returns EmptyLiteral without rescanning; otherwise it scans the buffer
// once.
func (c *CNF) findSingularClause() Literal {
	if c.pending != nil && !c.pending.IsEmpty() {
		l := c.pending.Pop()
		if c.pending.IsEmpty() {
			c.dirty = false
		}
		return l
	}
	if !c.dirty {
		return EmptyLiteral
	}

	start := 0
	for i, lit := range c.buf {
		if lit != EmptyLiteral {
			continue
		}
		if i-start == 1 {
			return c.buf[start]
		}
		start = i + 1
	}
	c.dirty = false
	return EmptyLiteral
}

// isPure reports whether |literal|'s variable appears with only one polarity
// in the buffer, scanning every literal directly (as opposed to
// findPureLiteral, which may consult the packed pure-literal index). negative
// is meaningful only when pure is true and reports whether that one polarity
// is the negative one.
func (c *CNF) isPure(literal Literal) (pure bool, negative bool) {
	v := literal.Var()
	var posSeen, negSeen bool
	for _, l := range c.buf {
		if l.IsEmpty() || l.Var() != v {
			continue
		}
		if l.IsPositive() {
			posSeen = true
		} else {
			negSeen = true
		}
		if posSeen && negSeen {
			return false, false
		}
	}
	pure = posSeen != negSeen
	negative = pure && negSeen
	return pure, negative
}

// findPureLiteral scans variables 1..V and returns the signed literal of the
// first variable whose presence is one-sided, or EmptyLiteral if none. It
// rebuilds the packed pure-literal index (see pureindex.go) to do so in
// O(V) after the O(buffer) rebuild, rather than re-scanning the buffer once
// per variable.
func (c *CNF) findPureLiteral() Literal {
	if c.pureIdx == nil {
		c.pureIdx = &pureIndex{}
	}
	c.pureIdx.build(c.buf, c.variablesCount)

	for v := 1; v <= c.variablesCount && c.pureIdx.pureCount > 0; v++ {
		pure, negative := c.pureIdx.pure(v)
		if !pure {
			continue
		}
		if negative {
			return Literal(-v)
		}
		return Literal(v)
	}
	return EmptyLiteral
}

// hasEmptyClause reports whether the buffer contains a zero-length clause,
// i.e. two consecutive terminators (or a terminator at position 0). It is
// used only to classify a CNF at the very first node of a solve, before any
// propagation has had a chance to produce the same signal via a mutation
// result (see solveRecursive and solveIterative).
func (c *CNF) hasEmptyClause() bool {
	length := 0
	for _, l := range c.buf {
		if l != EmptyLiteral {
			length++
			continue
		}
		if length == 0 {
			return true
		}
		length = 0
	}
	return false
}

// clauses returns an independent snapshot of the current clause list, used
// by tests and diagnostic logging; it is not on any hot path.
func (c *CNF) clauses() [][]Literal {
	var out [][]Literal
	start := 0
	for i, l := range c.buf {
		if l != EmptyLiteral {
			continue
		}
		clause := append([]Literal(nil), c.buf[start:i]...)
		out = append(out, clause)
		start = i + 1
	}
	return out
}

// Copy returns a deep, independent copy of c. Mutating either the receiver
// or the result afterwards never affects the other.
func (c *CNF) Copy() *CNF {
	buf := allocBuffer(len(c.buf))
	buf = buf[:len(c.buf)]
	copy(buf, c.buf)

	return &CNF{
		buf:            buf,
		variablesCount: c.variablesCount,
		clausesCount:   c.clausesCount,
		pending:        c.pending.clone(),
		dirty:          c.dirty,
	}
}

// Release returns c's backing buffer to the shared pool. c must not be used
// after calling Release.
func (c *CNF) Release() {
	if c.buf != nil {
		releaseBuffer(c.buf)
		c.buf = nil
	}
}

// Equal reports whether c and other describe the same CNF value: same
// variable bound, same clauses in the same order. Pending hints and the
// pure-literal index cache are implementation details and excluded from the
// comparison.
func (c *CNF) Equal(other *CNF) bool {
	if c.variablesCount != other.variablesCount {
		return false
	}
	if c.clausesCount != other.clausesCount {
		return false
	}
	if len(c.buf) != len(other.buf) {
		return false
	}
	for i, l := range c.buf {
		if other.buf[i] != l {
			return false
		}
	}
	return true
}

func (q *literalQueue) clone() *literalQueue {
	if q == nil {
		return nil
	}
	return &literalQueue{
		items: append([]Literal(nil), q.items...),
		head:  q.head,
	}
}
