package dpll

// Solver drives a DPLL search to a verdict. It is the generalization of the
// teacher codebase's Solver type (internal/sat/solver.go): where that solver
// carries a watcher-list CDCL search, this one carries the two forms named
// in spec section 4.5 over the flat-buffer CNF, sharing one complexity
// counter and one structured-logging sink across both.
type Solver struct {
	cfg        Config
	complexity int64
}

// NewSolver returns a Solver configured with cfg. Callers that want solve
// traces silenced should set cfg.Logger to zerolog.Nop() (DefaultConfig does
// this already); an unset Logger field writes to no output and is safe to
// call regardless.
func NewSolver(cfg Config) *Solver {
	return &Solver{cfg: cfg}
}

// Complexity returns the monotone node-visit counter accumulated by the most
// recent (or in-progress) call to Solve.
func (s *Solver) Complexity() int64 {
	return s.complexity
}

// Solve decides SAT/UNSAT/Unknown for cnf under the Solver's Config. cnf is
// mutated in the process; callers that need the original afterwards must
// pass cnf.Copy().
func (s *Solver) Solve(cnf *CNF) Status {
	s.complexity = 0

	if s.cfg.Rules.Has(RemoveTrivial) {
		switch r := cnf.removeTrivialClauses(); r {
		case cnfDevastated:
			s.logVerdict(SAT, "remove_trivial_clauses devastated the CNF")
			return SAT
		case emptyClauseCreated:
			// removeTrivialClauses never creates an empty clause (it only
			// deletes whole clauses), but the driver checks defensively
			// since every mutation returns the same three-way result.
			s.logVerdict(UNSAT, "remove_trivial_clauses reported an empty clause")
			return UNSAT
		}
	}

	var status Status
	if s.cfg.resolveDriver() == Recursive {
		status = s.solveRecursive(cnf, EmptyLiteral)
	} else {
		status = s.solveIterative(cnf)
	}
	s.logVerdict(status, "search complete")
	return status
}

func (s *Solver) logVerdict(status Status, msg string) {
	s.cfg.Logger.Debug().
		Stringer("status", status).
		Int64("complexity", s.complexity).
		Msg(msg)
}

func (s *Solver) nodeLimitReached() bool {
	return s.cfg.NodeLimit > 0 && s.complexity >= s.cfg.NodeLimit
}

// solveRecursive implements the recursive form of spec section 4.5:
//
//	DPLL(cnf, propagate):
//	  complexity += 1
//	  if propagate != empty: propagate_unit(propagate) ...
//	  if REMOVE_SINGULAR: remove_singular_clauses() ...
//	  if REMOVE_PURE: remove_pure_literals() ...
//	  L := |first_literal(cnf)|
//	  if DPLL(copy(cnf), L)  = SAT: return SAT
//	  if DPLL(copy(cnf), -L) = SAT: return SAT
//	  return UNSAT
func (s *Solver) solveRecursive(cnf *CNF, propagate Literal) Status {
	if s.nodeLimitReached() {
		return Unknown
	}
	s.complexity++

	result := ok
	if propagate.IsEmpty() {
		if cnf.ClausesCount() == 0 {
			return SAT
		}
		if cnf.hasEmptyClause() {
			return UNSAT
		}
	} else {
		result = cnf.propagateUnit(propagate)
	}

	if result == ok && s.cfg.Rules.Has(RemoveSingular) {
		result = cnf.removeSingularClauses()
	}
	if result == ok && s.cfg.Rules.Has(RemovePure) {
		result = cnf.removePureLiterals()
	}

	s.logNode(cnf, propagate, result)

	switch result {
	case cnfDevastated:
		return SAT
	case emptyClauseCreated:
		return UNSAT
	}

	l := cnf.FirstLiteral()
	if l.IsEmpty() {
		return SAT
	}
	v := l.Var()

	left := cnf.Copy()
	leftStatus := s.solveRecursive(left, Literal(v))
	left.Release()
	if leftStatus == SAT {
		return SAT
	}
	if leftStatus == Unknown {
		return Unknown
	}

	right := cnf.Copy()
	rightStatus := s.solveRecursive(right, Literal(-v))
	right.Release()
	return rightStatus
}

// solveIterative implements the explicit-stack form of spec section 4.5. It
// keeps two parallel arrays indexed by decision depth: propagating[d] is the
// literal being asserted on entry to depth d, and cnfs[d] is the CNF
// checkpoint at that depth. Depth 0 holds the root CNF with an empty
// propagate literal.
func (s *Solver) solveIterative(root *CNF) Status {
	propagating := make([]Literal, root.VariablesCount()+1)
	cnfs := make([]*CNF, root.VariablesCount()+1)
	cnfs[0] = root

	depth := 0
	for {
		if s.nodeLimitReached() {
			return Unknown
		}
		s.complexity++

		cnf := cnfs[depth]
		lit := propagating[depth]

		result := ok
		if depth == 0 && lit.IsEmpty() {
			if cnf.ClausesCount() == 0 {
				return SAT
			}
			if cnf.hasEmptyClause() {
				return UNSAT
			}
		} else {
			result = cnf.propagateUnit(lit)
		}

		if result == ok && s.cfg.Rules.Has(RemoveSingular) {
			result = cnf.removeSingularClauses()
		}
		if result == ok && s.cfg.Rules.Has(RemovePure) {
			result = cnf.removePureLiterals()
		}

		s.logNode(cnf, lit, result)

		switch result {
		case cnfDevastated:
			return SAT

		case emptyClauseCreated:
			// Backtrack: the right branch (negative propagating literal) is
			// already the second try, so a depth at which propagating is
			// negative has exhausted both children and unwinds further.
			for depth > 0 && propagating[depth] < 0 {
				cnfs[depth].Release()
				cnfs[depth] = nil
				depth--
			}
			if depth == 0 {
				return UNSAT
			}
			cnfs[depth].Release()
			propagating[depth] = propagating[depth].Negate()
			cnfs[depth] = cnfs[depth-1].Copy()

		default: // ok: descend
			l := cnf.FirstLiteral()
			if l.IsEmpty() {
				return SAT
			}
			v := l.Var()
			depth++
			propagating[depth] = Literal(v)
			cnfs[depth] = cnf.Copy()
		}
	}
}

func (s *Solver) logNode(cnf *CNF, propagate Literal, result mutationResult) {
	ev := s.cfg.Logger.Debug()
	if !ev.Enabled() {
		return
	}
	ev.Int64("complexity", s.complexity).
		Stringer("propagate", propagate).
		Int("clauses", cnf.ClausesCount()).
		Stringer("result", result).
		Msg("node simplified")
}
