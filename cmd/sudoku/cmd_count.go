package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var countFlags struct {
	parallel bool
}

var commandCount = &cobra.Command{
	Use:   "count <path>",
	Short: "Report the solution count (zero, one, multiple) per puzzle line",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCount(args[0]); err != nil {
			logger.Fatal("count failed", zap.Error(err))
		}
	},
}

func init() {
	commandCount.Flags().BoolVar(&countFlags.parallel, "parallel", false, "use the parallel search engine")
	mainCommand.AddCommand(commandCount)
}

func runCount(path string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	svc := newService(countFlags.parallel, "")
	results, st, err := svc.CountLines(ctx, in)
	if err != nil {
		return err
	}
	for _, res := range results {
		if res.Detail != "" {
			fmt.Printf("#%d %s: %s\n", res.Index, res.Status, res.Detail)
		} else {
			fmt.Printf("#%d %s\n", res.Index, res.Status)
		}
	}
	logger.Info("batch finished",
		zap.Int("puzzles", len(results)),
		zap.Int("nodes", st.Nodes),
		zap.Duration("searchTime", st.Duration),
	)
	return nil
}
