package models

// CartLineItem is one (product, size) entry in a cart. The same product in a
// different size is a separate line. Field names match the serialized cart
// format stored in the durable slot.
type CartLineItem struct {
	ProductID  string `json:"productId"`
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Size       string `json:"size"`
	ImageURL   string `json:"imageUrl"`
	Quantity   int    `json:"quantity"`
}
