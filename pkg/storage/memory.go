package storage

import (
	"io/fs"
	"strings"
	"sync"

	apperrors "github.com/netxfw/eventlog/pkg/errors"
)

// MemoryStore implements the Store interface in memory, for tests and embedding.
// MemoryStore 在内存中实现 Store 接口，用于测试和嵌入。
type MemoryStore struct {
	mu      sync.RWMutex
	lines   []string
	created bool
}

// NewMemoryStore creates a store. Passing lines marks it as already created.
// NewMemoryStore 创建内存存储，传入行时视为已创建。
func NewMemoryStore(lines ...string) *MemoryStore {
	return &MemoryStore{
		lines:   append([]string(nil), lines...),
		created: len(lines) > 0,
	}
}

func (s *MemoryStore) Path() string {
	return "memory"
}

func (s *MemoryStore) Exists() (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.created, nil
}

func (s *MemoryStore) ReadAll() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.lines...), nil
}

func (s *MemoryStore) Append(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = true
	s.lines = append(s.lines, strings.TrimSuffix(line, "\n"))
	return nil
}

func (s *MemoryStore) Truncate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.created {
		return apperrors.NewFileError(s.Path(), fs.ErrNotExist)
	}
	s.lines = nil
	return nil
}
