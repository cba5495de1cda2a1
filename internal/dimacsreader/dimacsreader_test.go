package dimacsreader

import "testing"

func TestLoad_satUnit(t *testing.T) {
	cnf, err := Load("testdata/sat_unit.cnf")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cnf.VariablesCount(); got != 1 {
		t.Errorf("VariablesCount() = %d, want 1", got)
	}
	if got := cnf.ClausesCount(); got != 1 {
		t.Errorf("ClausesCount() = %d, want 1", got)
	}
}

func TestLoad_unsatClash(t *testing.T) {
	cnf, err := Load("testdata/unsat_clash.cnf")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cnf.ClausesCount(); got != 2 {
		t.Errorf("ClausesCount() = %d, want 2", got)
	}
}

func TestLoad_malformedReturnsError(t *testing.T) {
	if _, err := Load("testdata/malformed.cnf"); err == nil {
		t.Errorf("Load() on a clause-before-problem-line file returned nil error, want non-nil")
	}
}

func TestLoad_missingFileReturnsError(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.cnf"); err == nil {
		t.Errorf("Load() on a nonexistent file returned nil error, want non-nil")
	}
}
