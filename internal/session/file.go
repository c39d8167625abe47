package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	apperrors "business-portal/pkg/errors"
)

// DefaultSnapshotName — фиксированное имя файла снимка,
// аналог ключа authToken в localStorage исходного портала.
const DefaultSnapshotName = "portal_session.json"

// FileStore держит единственный снимок сессии в JSON-файле с
// фиксированным именем. Идентификатор сессии игнорируется: это
// dev-режим одного пользователя за процессом, без Redis.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = filepath.Join(os.TempDir(), DefaultSnapshotName)
	}
	return &FileStore{path: path}
}

func (s *FileStore) Get(_ context.Context, _ string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, apperrors.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("чтение снимка сессии: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("декодирование снимка сессии: %w", err)
	}
	if snap.Token == "" {
		// пустой снимок равнозначен его отсутствию
		return nil, apperrors.ErrSessionNotFound
	}
	return &snap, nil
}

func (s *FileStore) Set(_ context.Context, _ string, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("сериализация снимка сессии: %w", err)
	}

	// запись через временный файл, чтобы снимок не читался полузаписанным
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("запись снимка сессии: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("замена снимка сессии: %w", err)
	}
	return nil
}

func (s *FileStore) Clear(_ context.Context, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("удаление снимка сессии: %w", err)
	}
	return nil
}
