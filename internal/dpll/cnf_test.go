package dpll

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildCNF(vars int, clauses [][]Literal) *CNF {
	c := NewCNF(vars)
	for _, cl := range clauses {
		c.AddClause(cl)
	}
	return c
}

func TestCNF_ClausesAndVariablesCount(t *testing.T) {
	c := buildCNF(3, [][]Literal{{1, 2}, {-2, 3}})
	if got := c.VariablesCount(); got != 3 {
		t.Errorf("VariablesCount() = %d, want 3", got)
	}
	if got := c.ClausesCount(); got != 2 {
		t.Errorf("ClausesCount() = %d, want 2", got)
	}
}

func TestCNF_FirstLiteral(t *testing.T) {
	if got := NewCNF(0).FirstLiteral(); got != EmptyLiteral {
		t.Errorf("FirstLiteral() on empty CNF = %v, want EmptyLiteral", got)
	}
	c := buildCNF(2, [][]Literal{{-2, 1}})
	if got := c.FirstLiteral(); got != Literal(-2) {
		t.Errorf("FirstLiteral() = %v, want -2", got)
	}
}

func TestCNF_Clauses_roundTrip(t *testing.T) {
	want := [][]Literal{{1, 2}, {-2, 3}, {3}}
	c := buildCNF(3, want)
	if diff := cmp.Diff(want, c.clauses()); diff != "" {
		t.Errorf("clauses() mismatch (-want +got):\n%s", diff)
	}
}

func TestCNF_Copy_isIndependent(t *testing.T) {
	orig := buildCNF(3, [][]Literal{{1, 2}, {-2, 3}})
	cp := orig.Copy()

	if !orig.Equal(cp) {
		t.Fatalf("copy not equal to original immediately after Copy()")
	}

	cp.propagateUnit(1)

	if orig.Equal(cp) {
		t.Errorf("mutating the copy affected the original (or Equal is broken)")
	}
	if orig.ClausesCount() != 2 {
		t.Errorf("original CNF was mutated by propagating on its copy")
	}
}

func TestCNF_hasEmptyClause(t *testing.T) {
	withEmpty := buildCNF(1, [][]Literal{{}})
	if !withEmpty.hasEmptyClause() {
		t.Errorf("hasEmptyClause() = false, want true")
	}

	noClauses := NewCNF(0)
	if noClauses.hasEmptyClause() {
		t.Errorf("hasEmptyClause() on a CNF with no clauses = true, want false")
	}

	normal := buildCNF(2, [][]Literal{{1, 2}})
	if normal.hasEmptyClause() {
		t.Errorf("hasEmptyClause() = true, want false")
	}
}

func TestCNF_isPure(t *testing.T) {
	c := buildCNF(3, [][]Literal{{1, 2}, {-2, 3}, {1, -3}})

	if pure, negative := c.isPure(Literal(1)); !pure || negative {
		t.Errorf("isPure(1) = (%v, %v), want (true, false)", pure, negative)
	}
	if pure, _ := c.isPure(Literal(2)); pure {
		t.Errorf("isPure(2) = true, want false (appears both polarities)")
	}
}
