// Package cli wires gpm's external interface -- a single macro
// expansion read from stdin, or a batch of independent expansions
// fanned out across files -- onto the core vm package.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/bdwalton/gpm/internal/config"
)

// chunkSize bounds how much input is fed to a VM per Run call. It has
// no effect on output -- Run(a)+Run(b) == Run(a+b) for any split --
// and exists only so the CLI exercises the same chunked-input path
// the core's resumability guarantee is built around, rather than
// always handing the whole file over in one call.
const chunkSize = 4096

// Execute builds the gpm command tree and runs it against os.Args.
func Execute() error {
	root := newRootCmd()
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gpm",
		Short: "Strachey's General Purpose Macrogenerator",
	}
	cmd.AddCommand(newRunCmd(), newBatchCmd())
	return cmd
}

// withSignalCancel returns a context that is cancelled when the
// process receives SIGINT or SIGTERM, mirroring the console package's
// BIOS shutdown handling.
func withSignalCancel(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigQuit:
			glog.Info("gpm: received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigQuit)
		cancel()
	}
}

func loadConfigOrDefault() config.Config {
	c, err := config.Load()
	if err != nil {
		glog.Warningf("gpm: %v; falling back to built-in defaults", err)
		return config.Config{StoreSize: 4096, DefChar: "&", Concurrent: 4}
	}
	return c
}
