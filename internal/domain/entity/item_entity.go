package entity

// Item is a catalog entry. Items are read-only for the API; the seed command populates them.
type Item struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Desc     string  `json:"desc"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
}
