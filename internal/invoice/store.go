package invoice

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists rendered invoices, one UTF-8 text file per save.
type FileStore struct {
	Dir string
}

// Write stores content under fileName inside the configured directory
// and returns the full path. An existing file is overwritten.
func (s *FileStore) Write(fileName, content string) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write invoice %s: %w", fileName, err)
	}
	return path, nil
}
