package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"svw.info/sudoku-engine/internal/engine"
	"svw.info/sudoku-engine/internal/generator"
	"svw.info/sudoku-engine/internal/hint"
	"svw.info/sudoku-engine/internal/infrastructure/storage"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

var (
	flagLogLevel string
	flagWorkers  int

	logger *zap.Logger
)

var mainCommand = &cobra.Command{
	Use:   "sudoku",
	Short: "High-performance Sudoku solver and generator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(flagLogLevel)
	},
}

func init() {
	mainCommand.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "debug|info|warn|error")
	mainCommand.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "worker pool size for parallel search (0 = all CPUs)")
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		os.Exit(1)
	}
	return l
}

// newService wires the engine behind the service facade. The parallel flag
// swaps both the solver and the counter for the pooled variant; everything
// above sees the same contracts.
func newService(parallel bool, persistDir string) *usecase.Service {
	var (
		solver  ports.Solver
		counter ports.Counter
	)
	if parallel {
		p := engine.NewParallelSolver(flagWorkers)
		solver, counter = p, p
	} else {
		solver, counter = engine.NewSolver(), engine.NewCounter()
	}
	var store ports.Storage
	if persistDir != "" {
		store = storage.NewFS(persistDir)
	}
	return usecase.NewService(solver, counter, generator.NewUniqueGenerator(counter), validator.New(), hint.New(), store)
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
