package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/sudoku-engine/internal/usecase"
)

var solveFlags struct {
	parallel bool
	output   string
}

var commandSolve = &cobra.Command{
	Use:   "solve <path>",
	Short: "Solve puzzles from a file, one per line ('-' for stdin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSolve(args[0]); err != nil {
			logger.Fatal("solve failed", zap.Error(err))
		}
	},
}

func init() {
	commandSolve.Flags().BoolVar(&solveFlags.parallel, "parallel", false, "use the parallel search engine")
	commandSolve.Flags().StringVarP(&solveFlags.output, "output", "o", "", "write results to a file instead of stdout")
	mainCommand.AddCommand(commandSolve)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func runSolve(path string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := openOutput(solveFlags.output)
	if err != nil {
		return err
	}
	defer out.Close()

	svc := newService(solveFlags.parallel, "")
	results, st, err := svc.SolveLines(ctx, in)
	if err != nil {
		return err
	}
	printResults(out, results)
	logger.Info("batch finished",
		zap.Int("puzzles", len(results)),
		zap.Int("nodes", st.Nodes),
		zap.Duration("searchTime", st.Duration),
		zap.Bool("parallel", solveFlags.parallel),
	)
	return nil
}

func printResults(out io.Writer, results []usecase.LineResult) {
	for _, res := range results {
		if res.Status == usecase.StatusSolved {
			fmt.Fprintln(out, res.Solution)
			continue
		}
		if res.Detail != "" {
			fmt.Fprintf(out, "#%d %s: %s\n", res.Index, res.Status, res.Detail)
		} else {
			fmt.Fprintf(out, "#%d %s\n", res.Index, res.Status)
		}
	}
}
