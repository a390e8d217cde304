// Package file implements the JSON-file persistence the dashboard uses: one
// document per file under a data directory, written whole and atomically.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

// store serializes access to one JSON document file. Writes go through a
// temp file and rename so a crash never leaves a partially-written document.
type store struct {
	mu   sync.Mutex
	path string
}

func newStore(dataDir, name string) (*store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &store{path: filepath.Join(dataDir, name)}, nil
}

// load reads and decodes the document. Returns false without error when the
// file does not exist yet.
func (s *store) load(out any) (bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", s.path, err)
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return true, nil
}

// save encodes and atomically replaces the document.
func (s *store) save(doc any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	data, err := sonic.ConfigDefault.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if _, err := buf.Write(data); err != nil {
		return fmt.Errorf("buffer %s: %w", s.path, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func (s *store) exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
