package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "svw.info/sudoku-engine/internal/adapters/http"
)

var serveFlags struct {
	addr     string
	persist  string
	parallel bool
}

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			logger.Fatal("serve failed", zap.Error(err))
		}
	},
}

func init() {
	commandServe.Flags().StringVar(&serveFlags.addr, "addr", ":8080", "listen address")
	commandServe.Flags().StringVar(&serveFlags.persist, "persist", "./data", "directory for saved puzzles")
	commandServe.Flags().BoolVar(&serveFlags.parallel, "parallel", false, "use the parallel search engine")
	mainCommand.AddCommand(commandServe)
}

func runServe() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	svc := newService(serveFlags.parallel, serveFlags.persist)
	h := httpadapter.New(svc, logger)

	srv := &http.Server{
		Addr:              serveFlags.addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("addr", serveFlags.addr),
			zap.String("persist", serveFlags.persist),
			zap.Bool("parallel", serveFlags.parallel),
		)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	}
}
