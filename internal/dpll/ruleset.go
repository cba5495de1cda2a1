package dpll

// RuleSet is a bitset describing which simplification rules the search
// driver runs at each node. It is immutable over the course of one solve;
// bitwise union and intersection compose rule sets from the named flags.
type RuleSet uint8

const (
	// RemoveTrivial enables the pre-search pass that drops tautological
	// clauses (a clause containing both some literal and its negation).
	RemoveTrivial RuleSet = 1 << iota
	// RemoveSingular enables unit propagation cascades at every node.
	RemoveSingular
	// RemovePure enables pure-literal elimination at every node.
	RemovePure
	// RecursiveSolving selects the recursive driver over the explicit-stack
	// iterative one. It does not change the decision, only how the search
	// is carried out; see driver.go.
	RecursiveSolving
)

// DefaultRules enables every rule and the recursive driver.
const DefaultRules = RemoveTrivial | RemoveSingular | RemovePure | RecursiveSolving

// Union returns the rule set containing every rule in r or other.
func (r RuleSet) Union(other RuleSet) RuleSet {
	return r | other
}

// Intersect returns the rule set containing only the rules present in both
// r and other.
func (r RuleSet) Intersect(other RuleSet) RuleSet {
	return r & other
}

// Has reports whether every rule in flag is enabled in r.
func (r RuleSet) Has(flag RuleSet) bool {
	return r&flag == flag
}

func (r RuleSet) String() string {
	if r == 0 {
		return "{}"
	}
	names := []struct {
		flag RuleSet
		name string
	}{
		{RemoveTrivial, "REMOVE_TRIVIAL"},
		{RemoveSingular, "REMOVE_SINGULAR"},
		{RemovePure, "REMOVE_PURE"},
		{RecursiveSolving, "RECURSIVE_SOLVING"},
	}
	s := "{"
	first := true
	for _, n := range names {
		if !r.Has(n.flag) {
			continue
		}
		if !first {
			s += ","
		}
		s += n.name
		first = false
	}
	return s + "}"
}
