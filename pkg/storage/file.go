package storage

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/netxfw/eventlog/pkg/errors"
)

// FileStore implements the Store interface on a flat append-only text file.
// FileStore 在扁平的只追加文本文件上实现 Store 接口。
type FileStore struct {
	path        string
	maxLineSize int
}

// NewFileStore creates a file-backed store. The file is not created until the first Append.
// NewFileStore 创建基于文件的存储，文件在第一次 Append 时才创建。
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:        filepath.Clean(path), // Sanitize path to prevent directory traversal
		maxLineSize: DefaultMaxLineSize,
	}
}

// Path returns the log file path.
// Path 返回日志文件路径。
func (s *FileStore) Path() string {
	return s.path
}

// Exists reports whether the log file exists.
// Exists 报告日志文件是否存在。
func (s *FileStore) Exists() (bool, error) {
	info, err := os.Stat(s.path)
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ReadAll reads every line of the log file. A missing file yields no lines.
// ReadAll 读取日志文件的所有行，文件不存在时返回空。
func (s *FileStore) ReadAll() ([]string, error) {
	f, err := os.Open(s.path) // #nosec G304 // path is sanitized with filepath.Clean
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), s.maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return lines, err
	}
	return lines, nil
}

// Append appends one newline-terminated line, creating the file and its
// directory when missing.
// Append 追加一行以换行符结尾的内容，文件或目录不存在时自动创建。
func (s *FileStore) Append(line string) error {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) // #nosec G304 // path is sanitized with filepath.Clean
	if err != nil {
		return err
	}

	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Truncate empties the log file. The file itself is kept.
// Truncate 清空日志文件，但保留文件本身。
func (s *FileStore) Truncate() error {
	exists, err := s.Exists()
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewFileError(s.path, fs.ErrNotExist)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_TRUNC, 0644) // #nosec G304 // path is sanitized with filepath.Clean
	if err != nil {
		return err
	}
	return f.Close()
}
