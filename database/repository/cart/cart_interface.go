package cartRepo

import (
	"bluerobins/models"
)

// CartRepository defines methods for cart data access. One cart per
// user, created lazily on first add.
type CartRepository interface {
	// Get returns the user's cart, or an empty cart if none exists yet.
	Get(userID string) (*models.Cart, error)
	// AddItem appends an item to the user's cart.
	AddItem(userID string, item models.CartItem) error
	// RemoveItem removes one item by its id.
	RemoveItem(userID, itemID string) error
	// Clear empties the cart after checkout.
	Clear(userID string) error
}
