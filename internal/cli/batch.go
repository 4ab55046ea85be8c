package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bdwalton/gpm/vm"
)

// newBatchCmd expands a list of files concurrently, one independent
// *vm.VM per file. This is legal even though a single VM is
// non-reentrant: nothing here shares a VM, store, or register file
// across goroutines, only the bounded worker pool that drives them.
func newBatchCmd() *cobra.Command {
	var storeSize int
	var defChar string
	var concurrency int

	cmd := &cobra.Command{
		Use:   "batch file [file...]",
		Short: "Expand macros in several independent files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withSignalCancel(cmd.Context())
			defer cancel()

			cfg := loadConfigOrDefault()
			if storeSize > 0 {
				cfg.StoreSize = storeSize
			}
			if defChar != "" {
				cfg.DefChar = defChar
			}
			if concurrency > 0 {
				cfg.Concurrent = concurrency
			}
			wc, err := cfg.WarningChars()
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(ctx)
			sem := make(chan struct{}, cfg.Concurrent)
			results := make([]string, len(args))

			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					select {
					case sem <- struct{}{}:
					case <-gctx.Done():
						return gctx.Err()
					}
					defer func() { <-sem }()

					out, err := expandFile(gctx, wc, cfg.StoreSize, path)
					if err != nil {
						return fmt.Errorf("gpm: %s: %w", path, err)
					}
					results[i] = out
					glog.V(1).Infof("gpm: finished %s (%d bytes out)", path, len(out))
					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			for i, path := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "=== %s ===\n%s\n", path, results[i])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&storeSize, "store-size", 0, "store size in cells (default from GPM_STORE_SIZE or 4096)")
	cmd.Flags().StringVar(&defChar, "def-char", "", "definition-introducer warning character (default from GPM_DEF_CHAR or &)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "max files expanded at once (default from GPM_BATCH_CONCURRENCY or 4)")

	return cmd
}

func expandFile(ctx context.Context, wc vm.WarningChars, storeSize int, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	m, err := vm.New(wc, storeSize)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	tail, err := runChunked(ctx, m, f, &buf)
	if err != nil {
		return "", err
	}
	buf.WriteString(tail)
	return buf.String(), nil
}
