package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MissingRef is the sentinel value submissions carry when no clip was uploaded.
const MissingRef = "Missing"

// EvidenceStore persists uploaded evidence clips on disk under a base directory.
type EvidenceStore struct {
	baseDir string
}

// NewEvidenceStore ensures the base directory exists and returns a handle.
func NewEvidenceStore(baseDir string) (*EvidenceStore, error) {
	if baseDir == "" {
		baseDir = "./evidence"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create evidence directory: %w", err)
	}
	return &EvidenceStore{baseDir: baseDir}, nil
}

// SaveStream copies from reader into the file named by ref.
func (s *EvidenceStore) SaveStream(ref string, r io.Reader) (int64, error) {
	path, err := s.resolve(ref)
	if err != nil {
		return 0, err
	}
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create evidence file: %w", err)
	}
	defer file.Close() //nolint:errcheck
	n, err := io.Copy(file, r)
	if err != nil {
		return 0, fmt.Errorf("write evidence stream: %w", err)
	}
	return n, nil
}

// Size returns the stored byte size for the given ref. A missing or unknown
// ref reports size zero, which submission validation treats as insufficient
// evidence.
func (s *EvidenceStore) Size(ref string) int64 {
	if ref == "" || ref == MissingRef {
		return 0
	}
	path, err := s.resolve(ref)
	if err != nil {
		return 0
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// Open returns a read-only handle for the stored clip.
func (s *EvidenceStore) Open(ref string) (*os.File, error) {
	path, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open evidence file: %w", err)
	}
	return file, nil
}

func (s *EvidenceStore) resolve(ref string) (string, error) {
	cleaned := filepath.Base(filepath.Clean(ref))
	if cleaned == "." || cleaned == string(filepath.Separator) || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("invalid evidence ref %q", ref)
	}
	return filepath.Join(s.baseDir, cleaned), nil
}
