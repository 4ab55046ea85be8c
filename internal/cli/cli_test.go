package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdwalton/gpm/vm"
)

func TestRunChunkedCopiesPlainText(t *testing.T) {
	m, err := vm.New(vm.DefaultWarningChars(), 200)
	require.NoError(t, err)

	in := strings.NewReader("hello, world")
	var out bytes.Buffer

	tail, err := runChunked(context.Background(), m, in, &out)
	require.NoError(t, err)

	assert.Equal(t, "hello, world", out.String()+tail)
}

func TestRunChunkedRespectsCancellation(t *testing.T) {
	m, err := vm.New(vm.DefaultWarningChars(), 200)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = runChunked(ctx, m, strings.NewReader("anything"), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRootCmdHasRunAndBatchSubcommands(t *testing.T) {
	root := newRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["run"])
	assert.True(t, names["batch"])
}
