package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rhartert/dpll/internal/dimacsreader"
	"github.com/rhartert/dpll/internal/dpll"
)

// This test suite verifies that the engine reaches the expected SAT/UNSAT
// verdict for every scenario instance in testdataDir, each run under the
// exact rule set named for that scenario, under both driver forms.
//
// Each test case is provided as two files:
//
//   - An instance file with the ".cnf" extension, in DIMACS CNF format.
//   - A verdict file with the same name plus ".verdict", containing exactly
//     "SAT" or "UNSAT" on its own line.
var testdataDir = "testdata"

// scenarioRules names the exact rule set each end-to-end scenario is
// specified to be solved under: REMOVE_SINGULAR for every scenario, plus
// REMOVE_TRIVIAL for the one scenario (S5) that depends on tautology
// removal to reach its expected verdict. Any instance file not listed here
// falls back to REMOVE_SINGULAR alone.
var scenarioRules = map[string]dpll.RuleSet{
	"s5_trivial_clause_ignored.cnf": dpll.RemoveSingular | dpll.RemoveTrivial,
}

type testCase struct {
	name         string
	instanceFile string
	verdictFile  string
	rules        dpll.RuleSet
}

func listTestCases(dir string) ([]testCase, error) {
	var cases []testCase
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".cnf") {
			return nil
		}
		rules, ok := scenarioRules[d.Name()]
		if !ok {
			rules = dpll.RemoveSingular
		}
		cases = append(cases, testCase{
			name:         d.Name(),
			instanceFile: path,
			verdictFile:  path + ".verdict",
			rules:        rules,
		})
		return nil
	})
	return cases, err
}

func readVerdict(path string) (dpll.Status, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dpll.Unknown, err
	}
	switch strings.TrimSpace(string(data)) {
	case "SAT":
		return dpll.SAT, nil
	case "UNSAT":
		return dpll.UNSAT, nil
	default:
		return dpll.Unknown, nil
	}
}

func TestScenarios(t *testing.T) {
	cases, err := listTestCases(testdataDir)
	if err != nil {
		t.Fatalf("listTestCases: %s", err)
	}
	if len(cases) == 0 {
		t.Fatal("no test cases found under testdata")
	}

	drivers := []dpll.DriverKind{dpll.Recursive, dpll.Iterative}

	for i := range cases {
		tc := cases[i]
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			want, err := readVerdict(tc.verdictFile)
			if err != nil {
				t.Fatalf("readVerdict: %s", err)
			}

			for _, driver := range drivers {
				cnf, err := dimacsreader.Load(tc.instanceFile)
				if err != nil {
					t.Fatalf("dimacsreader.Load: %s", err)
				}
				// RecursiveSolving keeps Driver: Recursive from resolving to
				// the iterative form; Driver: Iterative wins regardless.
				cfg := dpll.Config{Rules: tc.rules | dpll.RecursiveSolving, Driver: driver}
				got := dpll.NewSolver(cfg).Solve(cnf)
				if got != want {
					t.Errorf("driver=%v: got %v, want %v", driver, got, want)
				}
			}
		})
	}
}

func TestRun_exitCodeReflectsLoadFailures(t *testing.T) {
	if code := run([]string{"testdata/s1_single_unit.cnf"}); code != 0 {
		t.Errorf("run() on a valid file = %d, want 0", code)
	}
	if code := run([]string{"testdata/does-not-exist.cnf"}); code != 1 {
		t.Errorf("run() on a missing file = %d, want 1", code)
	}
}
