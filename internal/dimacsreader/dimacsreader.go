// Package dimacsreader loads DIMACS CNF files into dpll.CNF values. It
// wraps github.com/rhartert/dimacs, the same DIMACS parsing library the
// solver this package is adapted from depends on, so that duplicate-header
// and out-of-order-clause handling come from one well-exercised parser
// rather than a second hand-rolled scanner.
package dimacsreader

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/rhartert/dpll/internal/dpll"
)

func open(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
	}
	return rc, nil
}

// Load reads the DIMACS CNF instance at filename and returns it as a
// dpll.CNF. Files ending in ".gz" are transparently gunzipped.
func Load(filename string) (*dpll.CNF, error) {
	gzipped := len(filename) > 3 && filename[len(filename)-3:] == ".gz"
	return load(filename, gzipped)
}

func load(filename string, gzipped bool) (*dpll.CNF, error) {
	r, err := open(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", filename, err)
	}
	defer r.Close()

	b := &builder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", filename, err)
	}
	if b.cnf == nil {
		return nil, fmt.Errorf("%q: no problem line found", filename)
	}
	return b.cnf, nil
}

// builder adapts dimacs.Builder to populate a dpll.CNF. It is the
// counterpart of the teacher codebase's own parsers.builder, which adapts
// the same library to populate a watcher-list sat.Solver instead.
type builder struct {
	cnf *dpll.CNF
}

func (b *builder) Problem(nVars int, nClauses int) {
	b.cnf = dpll.NewCNF(nVars)
}

func (b *builder) Clause(tmpClause []int) {
	clause := make([]dpll.Literal, len(tmpClause))
	for i, l := range tmpClause {
		clause[i] = dpll.Literal(l)
	}
	b.cnf.AddClause(clause)
}

func (b *builder) Comment(_ string) {} // ignore comments
