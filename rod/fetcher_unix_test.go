//go:build integration && !windows

package rod_test

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/toolscout"
	"github.com/fwojciec/toolscout/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// alive reports whether pid exists, using signal 0.
func alive(pid int) bool {
	return syscall.Kill(pid, syscall.Signal(0)) == nil
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	pid := fetcher.LauncherPID()
	require.NotZero(t, pid)
	require.True(t, alive(pid), "browser should run before Close")

	require.NoError(t, fetcher.Close())
	time.Sleep(100 * time.Millisecond)

	assert.False(t, alive(pid), "browser should be gone after Close")
	assert.Zero(t, fetcher.LauncherPID())

	_, err = fetcher.Fetch(context.Background(), "https://www.futuretools.io/")
	assert.Equal(t, toolscout.EINVALID, toolscout.ErrorCode(err))
}
