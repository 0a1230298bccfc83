// Package seed fills the document with a demo catalog and an optional demo account.
package seed

import (
	"context"
	"errors"

	"github.com/oksasatya/shopcart-api/internal/domain/entity"
	repo "github.com/oksasatya/shopcart-api/internal/domain/repository"
	"github.com/oksasatya/shopcart-api/pkg/helpers"
	"github.com/oksasatya/shopcart-api/pkg/validation"
)

var Catalog = []entity.Item{
	{ID: 1, Title: "Classic White Tee", Desc: "Soft cotton crew neck t-shirt.", Price: 12.99, Category: "clothing", Image: "images/tee.jpg"},
	{ID: 2, Title: "Denim Jacket", Desc: "Stonewashed denim with brass buttons.", Price: 59.5, Category: "clothing", Image: "images/jacket.jpg"},
	{ID: 3, Title: "Wireless Earbuds", Desc: "Bluetooth earbuds with charging case.", Price: 39.99, Category: "electronics", Image: "images/earbuds.jpg"},
	{ID: 4, Title: "Smart Watch", Desc: "Fitness tracking and notifications.", Price: 129, Category: "electronics", Image: "images/watch.jpg"},
	{ID: 5, Title: "Ceramic Mug", Desc: "350ml mug, dishwasher safe.", Price: 8.75, Category: "home", Image: "images/mug.jpg"},
	{ID: 6, Title: "Desk Lamp", Desc: "LED lamp with adjustable arm.", Price: 24.9, Category: "home", Image: "images/lamp.jpg"},
	{ID: 7, Title: "Running Shoes", Desc: "Lightweight shoes with mesh upper.", Price: 74, Category: "footwear", Image: "images/shoes.jpg"},
	{ID: 8, Title: "Leather Wallet", Desc: "Slim bifold wallet.", Price: 19.99, Category: "accessories", Image: "images/wallet.jpg"},
}

var ErrBadDemoUser = errors.New("demo user needs a valid email and a password of at least 6 characters")

// DemoUser is created when Email is set.
type DemoUser struct {
	Email      string
	Password   string
	BcryptCost int
}

// Result reports what a Run changed.
type Result struct {
	ItemsAdded  int
	UserCreated bool
}

// Run adds catalog items whose id is not present yet and creates the demo user
// if it does not exist. Running it twice changes nothing.
func Run(ctx context.Context, store repo.Store, items []entity.Item, demo DemoUser) (Result, error) {
	var hash string
	if demo.Email != "" {
		if !validation.Email(demo.Email) || !validation.Password(demo.Password) {
			return Result{}, ErrBadDemoUser
		}
		var err error
		if hash, err = helpers.HashPassword(demo.Password, demo.BcryptCost); err != nil {
			return Result{}, err
		}
	}

	var res Result
	err := store.Update(ctx, func(doc *entity.Document) error {
		for _, it := range items {
			if doc.FindItem(it.ID) == nil {
				doc.Items = append(doc.Items, it)
				res.ItemsAdded++
			}
		}
		if hash != "" && doc.FindUserByEmail(demo.Email) == nil {
			doc.AddUser(entity.User{Email: demo.Email, Password: hash})
			res.UserCreated = true
		}
		return nil
	})
	return res, err
}
