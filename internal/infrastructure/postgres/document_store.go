package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/shopcart-api/internal/domain/entity"
	"github.com/oksasatya/shopcart-api/internal/domain/repository"
)

// documentID is the single row holding the application document.
const documentID = 1

// DocumentStore keeps the document as one JSONB row. Update locks the row
// with SELECT ... FOR UPDATE so concurrent writers, including other
// processes, are serialized.
type DocumentStore struct {
	pool       *pgxpool.Pool
	bestEffort bool
	logger     *logrus.Logger
}

func NewDocumentStore(pool *pgxpool.Pool, bestEffort bool, logger *logrus.Logger) *DocumentStore {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &DocumentStore{pool: pool, bestEffort: bestEffort, logger: logger}
}

func (s *DocumentStore) Load(ctx context.Context) (*entity.Document, error) {
	var body []byte
	err := s.pool.QueryRow(ctx, `SELECT body FROM app_documents WHERE id = $1`, documentID).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.NewDocument(), nil
	}
	if err != nil {
		return s.loadFailed(err)
	}
	doc, err := decode(body)
	if err != nil {
		return s.loadFailed(err)
	}
	return doc, nil
}

func (s *DocumentStore) Save(ctx context.Context, doc *entity.Document) error {
	body, err := encode(doc)
	if err == nil {
		_, err = s.pool.Exec(ctx, upsertSQL, documentID, body)
	}
	if err != nil {
		return s.saveFailed(err)
	}
	return nil
}

func (s *DocumentStore) Update(ctx context.Context, fn func(doc *entity.Document) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return s.lockFailed(err, fn)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// The row must exist before it can be locked.
	if _, err := tx.Exec(ctx, seedSQL, documentID); err != nil {
		return s.lockFailed(err, fn)
	}
	var body []byte
	if err := tx.QueryRow(ctx, `SELECT body FROM app_documents WHERE id = $1 FOR UPDATE`, documentID).Scan(&body); err != nil {
		return s.lockFailed(err, fn)
	}
	doc, err := decode(body)
	if err != nil {
		if !s.bestEffort {
			return s.saveFailed(err)
		}
		s.logger.WithError(err).Error("datastore document corrupt, starting empty")
		doc = entity.NewDocument()
	}

	if err := fn(doc); err != nil {
		return err
	}

	out, err := encode(doc)
	if err == nil {
		_, err = tx.Exec(ctx, upsertSQL, documentID, out)
	}
	if err == nil {
		err = tx.Commit(ctx)
	}
	if err != nil {
		return s.saveFailed(err)
	}
	return nil
}

// lockFailed handles an Update that could not read the row. In best-effort
// mode fn still runs against an empty document and only the write is lost.
func (s *DocumentStore) lockFailed(err error, fn func(doc *entity.Document) error) error {
	s.logger.WithError(err).Error("datastore lock failed")
	if !s.bestEffort {
		return fmt.Errorf("%w: %v", repository.ErrStorage, err)
	}
	if err := fn(entity.NewDocument()); err != nil {
		return err
	}
	s.logger.Warn("datastore write skipped")
	return nil
}

const seedSQL = `
	INSERT INTO app_documents (id, body) VALUES ($1, '{"users":[],"items":[],"cart":[]}'::jsonb)
	ON CONFLICT (id) DO NOTHING
`

const upsertSQL = `
	INSERT INTO app_documents (id, body, version, updated_at)
	VALUES ($1, $2, 1, now())
	ON CONFLICT (id) DO UPDATE
	SET body = EXCLUDED.body, version = app_documents.version + 1, updated_at = now()
`

func decode(body []byte) (*entity.Document, error) {
	doc := entity.NewDocument()
	if err := json.Unmarshal(body, doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return doc, nil
}

func encode(doc *entity.Document) ([]byte, error) {
	doc.Normalize()
	return json.Marshal(doc)
}

func (s *DocumentStore) loadFailed(err error) (*entity.Document, error) {
	s.logger.WithError(err).Error("datastore load failed")
	if s.bestEffort {
		return entity.NewDocument(), nil
	}
	return nil, fmt.Errorf("%w: %v", repository.ErrStorage, err)
}

func (s *DocumentStore) saveFailed(err error) error {
	s.logger.WithError(err).Error("datastore save failed")
	if s.bestEffort {
		return nil
	}
	return fmt.Errorf("%w: %v", repository.ErrStorage, err)
}

var _ repository.Store = (*DocumentStore)(nil)
