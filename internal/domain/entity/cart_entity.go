package entity

// DeletedItemTitle is shown for cart rows whose item no longer exists.
const DeletedItemTitle = "Deleted Item"

// CartRow links one user, one item and a quantity.
// There is at most one row per (UserID, ItemID) and Qty is always positive.
type CartRow struct {
	ID     int `json:"id"`
	UserID int `json:"userId"`
	ItemID int `json:"itemId"`
	Qty    int `json:"qty"`
}

// CartView is a cart row joined with its item for display.
type CartView struct {
	ID     int     `json:"id"`
	UserID int     `json:"userId"`
	ItemID int     `json:"itemId"`
	Qty    int     `json:"qty"`
	Title  string  `json:"title"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
}

// NewCartView joins row with item. A nil item yields the deleted-item placeholder.
func NewCartView(row CartRow, item *Item) CartView {
	v := CartView{ID: row.ID, UserID: row.UserID, ItemID: row.ItemID, Qty: row.Qty}
	if item == nil {
		v.Title = DeletedItemTitle
		return v
	}
	v.Title = item.Title
	v.Price = item.Price
	v.Image = item.Image
	return v
}
