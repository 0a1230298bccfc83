package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddUserSkipsUsedIDs(t *testing.T) {
	doc := NewDocument()
	doc.Users = append(doc.Users, User{ID: 4, Email: "old@x.com"})

	u := doc.AddUser(User{Email: "new@x.com"})
	assert.Equal(t, 5, u.ID)
	assert.Equal(t, 6, doc.NextUserID)

	u2 := doc.AddUser(User{Email: "next@x.com"})
	assert.Equal(t, 6, u2.ID)
}

func TestAddCartRowStartsAtOne(t *testing.T) {
	doc := NewDocument()
	row := doc.AddCartRow(CartRow{UserID: 1, ItemID: 2, Qty: 1})
	assert.Equal(t, 1, row.ID)
	assert.Equal(t, 2, doc.NextCartID)
}

func TestFindUserByEmailIsCaseSensitive(t *testing.T) {
	doc := NewDocument()
	doc.AddUser(User{Email: "a@x.com"})
	assert.NotNil(t, doc.FindUserByEmail("a@x.com"))
	assert.Nil(t, doc.FindUserByEmail("A@x.com"))
}

func TestRemoveCartRowKeepsOrder(t *testing.T) {
	doc := NewDocument()
	doc.AddCartRow(CartRow{UserID: 1, ItemID: 1, Qty: 1})
	doc.AddCartRow(CartRow{UserID: 1, ItemID: 2, Qty: 1})
	doc.AddCartRow(CartRow{UserID: 1, ItemID: 3, Qty: 1})

	i := doc.FindCartRow(1, 2)
	require.Equal(t, 1, i)
	doc.RemoveCartRow(i)

	assert.Equal(t, -1, doc.FindCartRow(1, 2))
	assert.Equal(t, []int{1, 3}, []int{doc.Cart[0].ItemID, doc.Cart[1].ItemID})
}

func TestResetTokenLifecycle(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	u := &User{}
	u.SetResetToken("abc", now.Add(time.Hour))

	assert.True(t, u.HasLiveResetToken("abc", now))
	assert.False(t, u.HasLiveResetToken("abd", now))
	assert.False(t, u.HasLiveResetToken("abc", now.Add(time.Hour)))
	assert.False(t, u.HasLiveResetToken("", now))

	u.ClearResetToken()
	assert.False(t, u.HasLiveResetToken("abc", now))
	assert.Nil(t, u.ResetTokenExpiry)
}

func TestNewCartViewPlaceholder(t *testing.T) {
	v := NewCartView(CartRow{ID: 1, UserID: 2, ItemID: 9, Qty: 3}, nil)
	assert.Equal(t, DeletedItemTitle, v.Title)
	assert.Zero(t, v.Price)
	assert.Empty(t, v.Image)
	assert.Equal(t, 3, v.Qty)
}
