package models

// WishlistItem is a saved property preview. ID is required and unique within
// the collection; insertion order is display order, most recent first.
type WishlistItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Price    string `json:"price"`
	Location string `json:"location"`
}
