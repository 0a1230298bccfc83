package seed

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/shopcart-api/internal/infrastructure/filestore"
	"github.com/oksasatya/shopcart-api/pkg/helpers"
)

func newStore(t *testing.T) *filestore.Store {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return filestore.New(filepath.Join(t.TempDir(), "db.json"), false, l)
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	demo := DemoUser{Email: "demo@shop.com", Password: "password123", BcryptCost: 4}

	res, err := Run(ctx, store, Catalog, demo)
	require.NoError(t, err)
	assert.Equal(t, len(Catalog), res.ItemsAdded)
	assert.True(t, res.UserCreated)

	res, err = Run(ctx, store, Catalog, demo)
	require.NoError(t, err)
	assert.Zero(t, res.ItemsAdded)
	assert.False(t, res.UserCreated)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Items, len(Catalog))
	require.Len(t, doc.Users, 1)
	assert.True(t, helpers.CompareHashAndPassword(doc.Users[0].Password, "password123"))
}

func TestRunWithoutDemoUser(t *testing.T) {
	store := newStore(t)
	res, err := Run(context.Background(), store, Catalog[:2], DemoUser{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.ItemsAdded)
	assert.False(t, res.UserCreated)
}

func TestRunRejectsBadDemoUser(t *testing.T) {
	_, err := Run(context.Background(), newStore(t), Catalog, DemoUser{Email: "demo@shop.com", Password: "123"})
	assert.ErrorIs(t, err, ErrBadDemoUser)
}
