package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/labyrinth/api"
	"github.com/katalvlaran/labyrinth/archive"
	"github.com/katalvlaran/labyrinth/config"
)

// runServe implements "mazegen serve".
func runServe(args []string, errOut io.Writer) int {
	fset := newFlagSet("mazegen serve", errOut)
	envFile := fset.String("env", ".env", "`file` with MAZE_* defaults")
	addr := fset.String("addr", "", "listen `address` (default MAZE_HTTP_ADDR)")
	archiveDir := fset.String("archive", "", "Badger `dir` for the archive (default MAZE_ARCHIVE_DIR, empty keeps it in memory)")
	if err := fset.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(errOut, "mazegen:", err)
		return exitUsage
	}
	if *addr != "" {
		cfg.HTTPAddr = *addr
	}
	if *archiveDir != "" {
		cfg.ArchiveDir = *archiveDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = serve(ctx, cfg); err != nil {
		klog.Errorf("mazegen: %v", err)
		return exitFailure
	}

	return exitOK
}

// serve opens the archive and runs the HTTP API until ctx is done.
func serve(ctx context.Context, cfg config.Config) error {
	store, err := archive.Open(cfg.ArchiveDir)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			klog.Errorf("mazegen: %v", cerr)
		}
	}()

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(api.Config{
		Addr:        cfg.HTTPAddr,
		Controllers: []api.Controller{api.NewMazeServer(store, cfg.MaxDimension, cfg.SymbolSet())},
	})

	return router.Run(ctx)
}
