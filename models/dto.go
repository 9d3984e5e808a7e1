package models

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"omitempty,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	Slug        string `json:"slug" binding:"required,min=2,max=60"`
	Description string `json:"description" binding:"omitempty,max=300"`
}

type ProductImageRequest struct {
	URL    string `json:"url" binding:"required,url"`
	BlobID string `json:"blob_id"`
	Index  int    `json:"index" binding:"omitempty,min=0"`
}

type ProductRequest struct {
	Name        string                `json:"name" binding:"required,min=2,max=100"`
	Slug        string                `json:"slug" binding:"required,min=2,max=120"`
	Description string                `json:"description" binding:"required,min=10,max=2000"`
	PriceCents  int64                 `json:"price_cents" binding:"min=0"`
	Sizes       []string              `json:"sizes" binding:"required,min=1"`
	CategoryID  string                `json:"category_id" binding:"required"`
	Images      []ProductImageRequest `json:"images" binding:"required,min=1,dive"`
	InStock     *bool                 `json:"in_stock"`
}

type AddCartItemRequest struct {
	ProductID  string `json:"productId" binding:"required"`
	Slug       string `json:"slug"`
	Name       string `json:"name" binding:"required"`
	PriceCents int64  `json:"priceCents" binding:"min=0"`
	Size       string `json:"size" binding:"required"`
	ImageURL   string `json:"imageUrl"`
}

type UpdateCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type RemoveCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
}

type CheckoutShipping struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
}

type CheckoutItemRequest struct {
	ProductID  string `json:"productId" binding:"required"`
	Size       string `json:"size" binding:"required"`
	PriceCents int64  `json:"priceCents" binding:"min=0"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	Items    []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	Shipping *CheckoutShipping     `json:"shipping" binding:"required"`
	Notes    string                `json:"notes"`
}
