package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/neochat/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersister_Save(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chat_history.txt")
	p := history.New(path)

	require.NoError(t, p.Save("[10:00] Alice: hi\n[10:01] Bob: hey\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[10:00] Alice: hi\n[10:01] Bob: hey\n", string(data))
}

func TestPersister_SaveReplacesPrevious(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chat_history.txt")
	p := history.New(path)

	require.NoError(t, p.Save("first\n"))
	require.NoError(t, p.Save("second\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestPersister_SaveCreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deeper", "chat_history.txt")
	p := history.New(path)

	require.NoError(t, p.Save("hello\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestPersister_SaveLeavesNoTempFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chat_history.txt")
	p := history.New(path)

	require.NoError(t, p.Save("hello\n"))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestPersister_SaveEmptyText(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chat_history.txt")
	p := history.New(path)

	require.NoError(t, p.Save("old\n"))
	require.NoError(t, p.Save(""))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, string(data))
}

func TestNew_DefaultPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, history.DefaultPath, history.New("").Path())
	assert.Equal(t, "custom.txt", history.New("custom.txt").Path())
}
