// Command dpll is the command-line front-end for the DPLL engine: for each
// DIMACS CNF file given on the command line it parses the instance, solves
// it, and prints exactly one line naming the verdict.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/rhartert/dpll/internal/dimacsreader"
	"github.com/rhartert/dpll/internal/dpll"
)

var (
	flagVerbose    = flag.Bool("v", false, "log a per-node simplification trace to stderr")
	flagIterative  = flag.Bool("iterative", false, "use the explicit-stack driver instead of recursion")
	flagNoTrivial  = flag.Bool("no-trivial", false, "disable the trivial-clause removal pass")
	flagNoSingular = flag.Bool("no-singular", false, "disable unit propagation")
	flagNoPure     = flag.Bool("no-pure", false, "disable pure-literal elimination")
	flagNodeLimit  = flag.Int64("node-limit", 0, "abort and report UNKOWN after this many node visits (0 = unlimited)")
)

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if *flagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func rulesFromFlags() dpll.RuleSet {
	rules := dpll.RuleSet(0)
	if !*flagNoTrivial {
		rules |= dpll.RemoveTrivial
	}
	if !*flagNoSingular {
		rules |= dpll.RemoveSingular
	}
	if !*flagNoPure {
		rules |= dpll.RemovePure
	}
	return rules
}

func configFromFlags(logger zerolog.Logger) dpll.Config {
	cfg := dpll.Config{
		Rules:     rulesFromFlags() | dpll.RecursiveSolving,
		Driver:    dpll.Recursive,
		NodeLimit: *flagNodeLimit,
		Logger:    logger,
	}
	if *flagIterative {
		cfg.Driver = dpll.Iterative
	}
	return cfg
}

// solveFile loads, solves, and prints the verdict for one DIMACS file. It
// returns an error only when the file could not be loaded; solving itself
// never fails (spec section 7: the core has no error channel).
func solveFile(path string, cfg dpll.Config, logger zerolog.Logger) error {
	cnf, err := dimacsreader.Load(path)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("file", path).
		Int("variables", cnf.VariablesCount()).
		Int("clauses", cnf.ClausesCount()).
		Msg("instance loaded")

	s := dpll.NewSolver(cfg)
	status := s.Solve(cnf)

	logger.Debug().
		Str("file", path).
		Int64("complexity", s.Complexity()).
		Msg("solve complete")

	fmt.Println(status)
	return nil
}

func run(args []string) int {
	logger := newLogger()
	cfg := configFromFlags(logger)

	exitCode := 0
	for _, path := range args {
		if err := solveFile(path, cfg, logger); err != nil {
			logger.Error().Err(err).Str("file", path).Msg("could not load instance")
			exitCode = 1
		}
	}
	return exitCode
}

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: dpll <file1> [<file2> ...]")
		os.Exit(1)
	}

	os.Exit(run(flag.Args()))
}
