package model

// CartItem is one product entry in the shopping cart. Items are keyed
// by product id plus size; quantity never drops below one.
type CartItem struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Size      string  `json:"size,omitempty"`
	Quantity  int     `json:"quantity"`
}

// CartSummary aggregates the cart for checkout display. Shipping is
// free above the threshold, flat otherwise.
type CartSummary struct {
	Items    int     `json:"items"`
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// WishlistItem is a saved product. At most one entry per product id.
type WishlistItem struct {
	ProductID  int64        `json:"id"`
	Name       string       `json:"name"`
	Price      float64      `json:"price"`
	Image      string       `json:"image,omitempty"`
	SchoolName string       `json:"schoolName,omitempty"`
	Sizes      []SizeOption `json:"sizes,omitempty"`
}
