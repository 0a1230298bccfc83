package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/shopcart-api/internal/domain/entity"
)

// Store persists the whole application document.
// Update runs fn against a freshly loaded document and saves the result
// while holding the store's lock; when fn fails nothing is written.
type Store interface {
	Load(ctx context.Context) (*entity.Document, error)
	Save(ctx context.Context, doc *entity.Document) error
	Update(ctx context.Context, fn func(doc *entity.Document) error) error
}

// ErrStorage marks failures to read or write the document.
var ErrStorage = errors.New("datastore failure")
