package entity

// Document is the whole persisted application state.
type Document struct {
	Users      []User    `json:"users"`
	Items      []Item    `json:"items"`
	Cart       []CartRow `json:"cart"`
	NextUserID int       `json:"nextUserId,omitempty"`
	NextCartID int       `json:"nextCartId,omitempty"`
}

// NewDocument returns an empty document with non-nil collections.
func NewDocument() *Document {
	return &Document{Users: []User{}, Items: []Item{}, Cart: []CartRow{}}
}

// Normalize replaces nil collections so the document always encodes as arrays.
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Items == nil {
		d.Items = []Item{}
	}
	if d.Cart == nil {
		d.Cart = []CartRow{}
	}
}

// FindUserByEmail does an exact, case-sensitive match.
func (d *Document) FindUserByEmail(email string) *User {
	for i := range d.Users {
		if d.Users[i].Email == email {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) FindUserByID(id int) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) FindItem(id int) *Item {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}

// FindCartRow returns the index of the row for (userID, itemID), or -1.
func (d *Document) FindCartRow(userID, itemID int) int {
	for i, c := range d.Cart {
		if c.UserID == userID && c.ItemID == itemID {
			return i
		}
	}
	return -1
}

// AddUser assigns the next user id to u and appends it.
func (d *Document) AddUser(u User) User {
	next := d.NextUserID
	for _, x := range d.Users {
		if x.ID >= next {
			next = x.ID + 1
		}
	}
	if next < 1 {
		next = 1
	}
	u.ID = next
	d.Users = append(d.Users, u)
	d.NextUserID = next + 1
	return u
}

// AddCartRow assigns the next cart id to row and appends it.
func (d *Document) AddCartRow(row CartRow) CartRow {
	next := d.NextCartID
	for _, x := range d.Cart {
		if x.ID >= next {
			next = x.ID + 1
		}
	}
	if next < 1 {
		next = 1
	}
	row.ID = next
	d.Cart = append(d.Cart, row)
	d.NextCartID = next + 1
	return row
}

// RemoveCartRow deletes the row at index i, keeping order.
func (d *Document) RemoveCartRow(i int) {
	d.Cart = append(d.Cart[:i], d.Cart[i+1:]...)
}

// CartFor returns the user's rows in stored order.
func (d *Document) CartFor(userID int) []CartRow {
	out := make([]CartRow, 0)
	for _, c := range d.Cart {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}
