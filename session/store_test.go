package session_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bumilsoft/intraclient/session"
)

func TestTokenPairEmpty(t *testing.T) {
	require.True(t, session.TokenPair{}.Empty())
	require.False(t, session.TokenPair{AccessToken: "a"}.Empty())
	require.False(t, session.TokenPair{RefreshToken: "r"}.Empty())
}

func TestInMemoryStore(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		store := session.NewInMemoryStore()
		pair, err := store.Get()
		require.NoError(t, err)
		require.True(t, pair.Empty())
	})

	t.Run("set then get", func(t *testing.T) {
		store := session.NewInMemoryStore()
		require.NoError(t, store.Set(session.TokenPair{AccessToken: "a", RefreshToken: "r"}))

		pair, err := store.Get()
		require.NoError(t, err)
		require.Equal(t, "a", pair.AccessToken)
		require.Equal(t, "r", pair.RefreshToken)
	})

	t.Run("clear removes both tokens", func(t *testing.T) {
		store := session.NewInMemoryStore()
		require.NoError(t, store.Set(session.TokenPair{AccessToken: "a", RefreshToken: "r"}))
		require.NoError(t, store.Clear())

		pair, err := store.Get()
		require.NoError(t, err)
		require.True(t, pair.Empty())
	})

	t.Run("concurrent access", func(t *testing.T) {
		store := session.NewInMemoryStore()
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_ = store.Set(session.TokenPair{AccessToken: "a", RefreshToken: "r"})
			}()
			go func() {
				defer wg.Done()
				_, _ = store.Get()
			}()
		}
		wg.Wait()
	})
}

func TestFileStore(t *testing.T) {
	t.Run("requires a path", func(t *testing.T) {
		_, err := session.NewFileStore("")
		require.Error(t, err)
	})

	t.Run("missing file reads as empty pair", func(t *testing.T) {
		store, err := session.NewFileStore(filepath.Join(t.TempDir(), "tokens.json"))
		require.NoError(t, err)

		pair, err := store.Get()
		require.NoError(t, err)
		require.True(t, pair.Empty())
	})

	t.Run("round trip through disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "tokens.json")
		store, err := session.NewFileStore(path)
		require.NoError(t, err)

		require.NoError(t, store.Set(session.TokenPair{AccessToken: "a", RefreshToken: "r"}))

		// A second store on the same path sees the same pair, which is how
		// separate CLI invocations share one session.
		other, err := session.NewFileStore(path)
		require.NoError(t, err)
		pair, err := other.Get()
		require.NoError(t, err)
		require.Equal(t, "a", pair.AccessToken)
		require.Equal(t, "r", pair.RefreshToken)
	})

	t.Run("token file is owner-only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tokens.json")
		store, err := session.NewFileStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Set(session.TokenPair{AccessToken: "a"}))

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("clear removes the file and tolerates a second clear", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tokens.json")
		store, err := session.NewFileStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Set(session.TokenPair{AccessToken: "a"}))

		require.NoError(t, store.Clear())
		_, err = os.Stat(path)
		require.True(t, os.IsNotExist(err))

		require.NoError(t, store.Clear())
	})

	t.Run("corrupt file surfaces an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tokens.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		store, err := session.NewFileStore(path)
		require.NoError(t, err)
		_, err = store.Get()
		require.Error(t, err)
	})
}
