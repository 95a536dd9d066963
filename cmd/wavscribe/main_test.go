package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fmueller/wavscribe/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestShouldPrintUsageHint(t *testing.T) {
	t.Parallel()

	require.True(t, shouldPrintUsageHint(errors.New("unknown command \"bad\" for \"wavscribe\"")))
	require.True(t, shouldPrintUsageHint(errors.New("unknown flag: --oops")))
	require.False(t, shouldPrintUsageHint(fmt.Errorf("%w: models/ggml-large-v3.bin", cli.ErrModelNotFound)))
	require.False(t, shouldPrintUsageHint(nil))
}
