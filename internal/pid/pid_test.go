package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"codeberg.org/mutker/batterylogd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useScratchDir(t *testing.T) {
	t.Helper()

	orig := path
	path = filepath.Join(t.TempDir(), fileName)
	t.Cleanup(func() { path = orig })
}

func TestWriteClaimsGuard(t *testing.T) {
	useScratchDir(t)

	require.NoError(t, Write())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))
}

func TestSecondInstanceIsRejected(t *testing.T) {
	useScratchDir(t)

	require.NoError(t, Write())

	err := Write()
	require.Error(t, err)

	var appErr errors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, errors.ErrAlreadyRunning, appErr.Code())

	require.NoError(t, Remove())
	assert.NoError(t, Write(), "the guard must be claimable again once released")
}

func TestStaleFileIsReclaimed(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "not a process id", content: "not-a-pid"},
		{name: "process group id", content: "0"},
		{name: "negative id", content: "-1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			useScratchDir(t)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))

			require.NoError(t, Write())

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))
		})
	}
}

func TestRemoveWithoutFile(t *testing.T) {
	useScratchDir(t)

	assert.NoError(t, Remove())
}
