package postgres

import (
	"context"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/shopcart-api/internal/domain/entity"
)

// newTestStore connects to TEST_DATABASE_URL and resets the document table.
func newTestStore(t *testing.T) *DocumentStore {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	require.NoError(t, RunMigrations(dsn, "../../../db/migrations", logger))

	ctx := context.Background()
	pool, err := NewPool(ctx, dsn, PoolOptions{MaxConns: 4, MinConns: 1, MaxConnLife: time.Minute})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `DELETE FROM app_documents`)
	require.NoError(t, err)
	return NewDocumentStore(pool, false, logger)
}

func TestDocumentStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, doc.Users)

	doc.AddUser(entity.User{Email: "a@x.com", Password: "h"})
	require.NoError(t, s.Save(ctx, doc))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Users, 1)
	assert.Equal(t, 1, got.Users[0].ID)
}

func TestDocumentStoreConcurrentUpdates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Update(ctx, func(doc *entity.Document) error {
				doc.AddCartRow(entity.CartRow{UserID: 1, ItemID: 1, Qty: 1})
				return nil
			}))
		}()
	}
	wg.Wait()

	doc, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Cart, 10)
}
