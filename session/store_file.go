package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileStore persists the token pair as a JSON file so CLI invocations share
// one session. Every Get re-reads the file rather than caching in memory,
// which bounds staleness between concurrent processes to a single request.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type storedTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// NewFileStore creates a file-backed token store at path. The file is
// created lazily on the first Set.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("[NewFileStore] path is required")
	}
	return &FileStore{path: path}, nil
}

// Get reads the token pair from disk. A missing file yields an empty pair.
func (s *FileStore) Get() (TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return TokenPair{}, nil
	}
	if err != nil {
		return TokenPair{}, errors.Wrap(err, "[FileStore.Get] ReadFile")
	}

	var st storedTokens
	if err := json.Unmarshal(data, &st); err != nil {
		return TokenPair{}, errors.Wrap(err, "[FileStore.Get] Unmarshal")
	}
	return TokenPair{AccessToken: st.AccessToken, RefreshToken: st.RefreshToken}, nil
}

// Set writes the token pair to disk with owner-only permissions.
func (s *FileStore) Set(pair TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "[FileStore.Set] MkdirAll")
	}

	data, err := json.Marshal(storedTokens{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
	if err != nil {
		return errors.Wrap(err, "[FileStore.Set] Marshal")
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.Set] WriteFile")
	}
	return nil
}

// Clear removes the token file. A file that is already gone is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileStore.Clear] Remove")
	}
	return nil
}
