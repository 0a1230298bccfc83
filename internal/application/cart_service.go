package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/shopcart-api/internal/domain/entity"
	repo "github.com/oksasatya/shopcart-api/internal/domain/repository"
)

const (
	MsgCartAdded     = "Item added to cart"
	MsgCartUpdated   = "Cart updated"
	msgInvalidItem   = "Invalid item data"
	msgItemNotInCart = "Item not in cart"
)

// CartService manages a shopper's cart rows. Every call is scoped to the
// given user id, which callers take from verified token claims.
type CartService struct {
	Store  repo.Store
	Logger *logrus.Logger
}

func NewCartService(store repo.Store, logger *logrus.Logger) *CartService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &CartService{Store: store, Logger: logger}
}

// GetCart returns the user's rows joined with their items.
func (s *CartService) GetCart(ctx context.Context, userID int) ([]entity.CartView, error) {
	doc, err := s.Store.Load(ctx)
	if err != nil {
		return nil, storageErr(err)
	}
	rows := doc.CartFor(userID)
	out := make([]entity.CartView, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.NewCartView(r, doc.FindItem(r.ItemID)))
	}
	return out, nil
}

// AddToCart merges qty into the user's row for itemID, creating the row if needed.
func (s *CartService) AddToCart(ctx context.Context, userID, itemID, qty int) error {
	if itemID == 0 || qty < 1 {
		return newError(KindValidation, msgInvalidItem)
	}
	err := s.Store.Update(ctx, func(doc *entity.Document) error {
		if i := doc.FindCartRow(userID, itemID); i >= 0 {
			doc.Cart[i].Qty += qty
			return nil
		}
		doc.AddCartRow(entity.CartRow{UserID: userID, ItemID: itemID, Qty: qty})
		return nil
	})
	if err != nil {
		return storageErr(err)
	}
	s.Logger.WithFields(logrus.Fields{"user_id": userID, "item_id": itemID, "qty": qty}).Debug("cart add")
	countCartWrite()
	return nil
}

// UpdateCart sets the quantity of an existing row. A nil qty is treated as missing;
// zero deletes the row.
func (s *CartService) UpdateCart(ctx context.Context, userID, itemID int, qty *int) error {
	if itemID == 0 || qty == nil || *qty < 0 {
		return newError(KindValidation, msgInvalidItem)
	}
	n := *qty
	err := s.Store.Update(ctx, func(doc *entity.Document) error {
		i := doc.FindCartRow(userID, itemID)
		if i < 0 {
			return newError(KindNotFound, msgItemNotInCart)
		}
		if n == 0 {
			doc.RemoveCartRow(i)
			return nil
		}
		doc.Cart[i].Qty = n
		return nil
	})
	if err != nil {
		return storageErr(err)
	}
	s.Logger.WithFields(logrus.Fields{"user_id": userID, "item_id": itemID, "qty": n}).Debug("cart update")
	countCartWrite()
	return nil
}
