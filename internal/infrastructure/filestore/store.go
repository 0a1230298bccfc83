package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/shopcart-api/internal/domain/entity"
	"github.com/oksasatya/shopcart-api/internal/domain/repository"
)

// Store keeps the document in a single JSON file.
//
// In best-effort mode read failures yield an empty document and write
// failures are only logged. Otherwise they are returned wrapped in
// repository.ErrStorage.
type Store struct {
	path       string
	bestEffort bool
	logger     *logrus.Logger

	mu sync.Mutex
}

func New(path string, bestEffort bool, logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Store{path: path, bestEffort: bestEffort, logger: logger}
}

func (s *Store) Path() string { return s.path }

func (s *Store) Load(ctx context.Context) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) Save(ctx context.Context, doc *entity.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

func (s *Store) Update(ctx context.Context, fn func(doc *entity.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *Store) load() (*entity.Document, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entity.NewDocument(), nil
	}
	if err != nil {
		return s.readFailed("read", err)
	}
	doc := entity.NewDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		return s.readFailed("parse", err)
	}
	doc.Normalize()
	return doc, nil
}

func (s *Store) readFailed(op string, err error) (*entity.Document, error) {
	s.logger.WithError(err).WithFields(logrus.Fields{"path": s.path, "op": op}).Error("datastore load failed")
	if s.bestEffort {
		return entity.NewDocument(), nil
	}
	return nil, fmt.Errorf("%w: %s %s: %v", repository.ErrStorage, op, s.path, err)
}

// save writes to a temp file in the same directory and renames it over the target.
func (s *Store) save(doc *entity.Document) error {
	doc.Normalize()
	if err := s.writeFile(doc); err != nil {
		s.logger.WithError(err).WithField("path", s.path).Error("datastore save failed")
		if s.bestEffort {
			return nil
		}
		return fmt.Errorf("%w: write %s: %v", repository.ErrStorage, s.path, err)
	}
	return nil
}

func (s *Store) writeFile(doc *entity.Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path)
}

var _ repository.Store = (*Store)(nil)
