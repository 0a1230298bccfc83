package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/shopcart-api/internal/domain/entity"
)

func intp(n int) *int { return &n }

func catalogDoc() *entity.Document {
	doc := entity.NewDocument()
	doc.Items = []entity.Item{
		{ID: 1, Title: "Mug", Price: 9.5, Category: "kitchen", Image: "images/mug.png"},
		{ID: 5, Title: "Lamp", Price: 30, Category: "home", Image: "images/lamp.png"},
	}
	return doc
}

func TestAddToCartMergesRows(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(catalogDoc())
	svc := NewCartService(store, quietLogger())

	require.NoError(t, svc.AddToCart(ctx, 1, 5, 2))
	require.NoError(t, svc.AddToCart(ctx, 1, 5, 3))

	doc := store.doc()
	require.Len(t, doc.Cart, 1)
	assert.Equal(t, 5, doc.Cart[0].Qty)
	assert.Equal(t, 1, doc.Cart[0].ID)
}

func TestAddToCartValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(newMemStore(catalogDoc()), quietLogger())

	assert.ErrorIs(t, svc.AddToCart(ctx, 1, 0, 1), ErrValidation)
	assert.ErrorIs(t, svc.AddToCart(ctx, 1, 5, 0), ErrValidation)
	assert.ErrorIs(t, svc.AddToCart(ctx, 1, 5, -2), ErrValidation)
}

func TestCartRowsAreScopedPerUser(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(catalogDoc())
	svc := NewCartService(store, quietLogger())

	require.NoError(t, svc.AddToCart(ctx, 1, 5, 1))
	require.NoError(t, svc.AddToCart(ctx, 2, 5, 4))

	assert.Len(t, store.doc().Cart, 2)

	err := svc.UpdateCart(ctx, 3, 5, intp(1))
	assert.ErrorIs(t, err, ErrNotFound)

	cart, err := svc.GetCart(ctx, 2)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 4, cart[0].Qty)
}

func TestUpdateCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Overwrites quantity", func(t *testing.T) {
		store := newMemStore(catalogDoc())
		svc := NewCartService(store, quietLogger())
		require.NoError(t, svc.AddToCart(ctx, 1, 5, 2))

		require.NoError(t, svc.UpdateCart(ctx, 1, 5, intp(7)))
		assert.Equal(t, 7, store.doc().Cart[0].Qty)
	})

	t.Run("Zero removes the row and it cannot be resurrected", func(t *testing.T) {
		store := newMemStore(catalogDoc())
		svc := NewCartService(store, quietLogger())
		require.NoError(t, svc.AddToCart(ctx, 1, 5, 2))

		require.NoError(t, svc.UpdateCart(ctx, 1, 5, intp(0)))
		assert.Empty(t, store.doc().Cart)

		err := svc.UpdateCart(ctx, 1, 5, intp(1))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Validation", func(t *testing.T) {
		svc := NewCartService(newMemStore(catalogDoc()), quietLogger())
		assert.ErrorIs(t, svc.UpdateCart(ctx, 1, 0, intp(1)), ErrValidation)
		assert.ErrorIs(t, svc.UpdateCart(ctx, 1, 5, nil), ErrValidation)
		assert.ErrorIs(t, svc.UpdateCart(ctx, 1, 5, intp(-1)), ErrValidation)
	})
}

func TestGetCartJoinsItems(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(catalogDoc())
	svc := NewCartService(store, quietLogger())

	require.NoError(t, svc.AddToCart(ctx, 1, 1, 1))
	require.NoError(t, svc.AddToCart(ctx, 1, 99, 2))

	cart, err := svc.GetCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, cart, 2)

	assert.Equal(t, "Mug", cart[0].Title)
	assert.Equal(t, 9.5, cart[0].Price)
	assert.Equal(t, "images/mug.png", cart[0].Image)

	assert.Equal(t, entity.DeletedItemTitle, cart[1].Title)
	assert.Zero(t, cart[1].Price)
	assert.Empty(t, cart[1].Image)
	assert.Equal(t, 2, cart[1].Qty)
}

func TestGetCartEmpty(t *testing.T) {
	svc := NewCartService(newMemStore(nil), quietLogger())
	cart, err := svc.GetCart(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Empty(t, cart)
}
