package dpll

// propagateUnit is the hardest primitive in the package: given a literal L
// known to hold, it (i) deletes every clause that contains L, and (ii)
// deletes every occurrence of -L from the remaining clauses, using a single
// left-to-right pass with a read cursor and a write cursor over the flat
// buffer.
//
//   - When the read cursor meets -L, the literal is skipped: the write
//     cursor does not advance.
//   - When it meets L anywhere in the current clause, the entire clause is
//     deleted: the write cursor rewinds to the clause's start (discarding
//     anything already copied for it) and the read cursor fast-forwards past
//     the clause's terminator.
//   - Otherwise the literal is copied forward and both cursors advance.
//
// At each terminator the just-closed clause's old and new lengths decide the
// outcome: a clause that shrank to zero literals (and was not itself wholly
// deleted) means the CNF is unsatisfiable down this branch; a clause that
// shrank from two literals to one exposes a new unit clause, queued as a
// pending hint for findSingularClause.
//
// L must not be EmptyLiteral; that is a caller error, not a legal call.
func (c *CNF) propagateUnit(l Literal) mutationResult {
	if l.IsEmpty() {
		panic("dpll: propagateUnit called with the empty literal")
	}
	neg := l.Negate()
	buf := c.buf

	read, write := 0, 0
	clauseWriteStart := 0
	oldLen := 0
	deleted := false

	for read < len(buf) {
		lit := buf[read]

		if lit == EmptyLiteral {
			newLen := write - clauseWriteStart
			if deleted {
				c.clausesCount--
			} else {
				if newLen == 0 {
					return emptyClauseCreated
				}
				if newLen == 1 && oldLen == 2 {
					if c.pending == nil {
						c.pending = newLiteralQueue(4)
					}
					c.pending.Push(buf[clauseWriteStart])
				}
				buf[write] = EmptyLiteral
				write++
			}
			read++
			clauseWriteStart = write
			oldLen = 0
			deleted = false
			continue
		}

		oldLen++

		switch {
		case lit == neg:
			read++
		case lit == l:
			write = clauseWriteStart
			deleted = true
			read++
			for read < len(buf) && buf[read] != EmptyLiteral {
				read++
			}
		default:
			buf[write] = lit
			write++
			read++
		}
	}

	c.dirty = true
	if write == 0 {
		c.buf = buf[:0]
		return cnfDevastated
	}
	c.buf = buf[:write]
	return ok
}

// removeSingularClauses repeatedly finds and propagates unit clauses until
// none remain. The pending-unit hint queue lets successive calls chain
// without rescanning the buffer after the first.
func (c *CNF) removeSingularClauses() mutationResult {
	for {
		l := c.findSingularClause()
		if l.IsEmpty() {
			return ok
		}
		if r := c.propagateUnit(l); r != ok {
			return r
		}
	}
}

// removePureLiterals repeatedly finds and propagates pure literals until
// none remain. A pure literal's clauses never contain its negation, so
// propagateUnit can only return CNF_DEVASTATED or OK here; callers still
// check the result defensively.
func (c *CNF) removePureLiterals() mutationResult {
	for {
		l := c.findPureLiteral()
		if l.IsEmpty() {
			return ok
		}
		if r := c.propagateUnit(l); r != ok {
			return r
		}
	}
}

// removeTrivialClauses deletes every clause that contains some literal
// together with its negation. It is a pre-search pass only: once no
// tautological clause remains at the root, later propagation can only
// shrink clauses, never reintroduce a literal, so later calls are no-ops.
func (c *CNF) removeTrivialClauses() mutationResult {
	buf := c.buf
	read, write := 0, 0
	clauseStart := 0
	seen := make(map[Literal]struct{})

	flush := func(trivial bool) {
		if trivial {
			c.clausesCount--
		} else {
			copy(buf[write:], buf[clauseStart:read])
			write += read - clauseStart
			buf[write] = EmptyLiteral
			write++
		}
		clear(seen)
	}

	for read < len(buf) {
		lit := buf[read]
		if lit == EmptyLiteral {
			trivial := false
			for s := range seen {
				if _, ok := seen[s.Negate()]; ok {
					trivial = true
					break
				}
			}
			flush(trivial)
			read++
			clauseStart = read
			continue
		}
		seen[lit] = struct{}{}
		read++
	}

	c.dirty = true
	if write == 0 {
		c.buf = buf[:0]
		return cnfDevastated
	}
	c.buf = buf[:write]
	return ok
}
