package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/bdwalton/gpm/vm"
)

func newRunCmd() *cobra.Command {
	var storeSize int
	var defChar string

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Expand macros from a file (or stdin) and print the result",
		Args:  cobra.MaximumNArgs(1),
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
			wc, err := cfg.WarningChars()
			if err != nil {
				return err
			}

			in := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("gpm: opening %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			m, err := vm.New(wc, cfg.StoreSize)
			if err != nil {
				return err
			}

			out, err := runChunked(ctx, m, in, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&storeSize, "store-size", 0, "store size in cells (default from GPM_STORE_SIZE or 4096)")
	cmd.Flags().StringVar(&defChar, "def-char", "", "definition-introducer warning character (default from GPM_DEF_CHAR or &)")

	return cmd
}

// runChunked feeds r to m in fixed-size chunks, stopping early if ctx
// is cancelled, and returns whatever output the final End() flush
// produces beyond what was already written incrementally.
func runChunked(ctx context.Context, m *vm.VM, r io.Reader, w io.Writer) (string, error) {
	buf := make([]byte, chunkSize)
	var pending []byte
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, err := r.Read(buf)
		data := append(pending, buf[:n]...)
		pending = nil
		// Hold back a multi-byte character cut off by this read until the rest arrives.
		i := len(data)
		for i > 0 && i > len(data)-utf8.UTFMax && !utf8.RuneStart(data[i-1]) {
			i--
		}
		if err == nil && i > 0 && !utf8.FullRune(data[i-1:]) {
			pending, data = data[i-1:], data[:i-1]
		}
		if len(data) > 0 {
			out := m.Run(string(data))
			if glog.V(2) {
				glog.Infof("gpm: ran chunk of %d bytes, produced %d bytes", n, len(out))
			}
			if _, werr := io.WriteString(w, out); werr != nil {
				return "", werr
			}
		}
		if err == io.EOF {
			return m.End(), nil
		}
		if err != nil {
			return "", fmt.Errorf("gpm: reading input: %w", err)
		}
	}
}
