package models

import "time"

// Cart item kinds.
const (
	CartItemSlot    = "slot"
	CartItemProject = "project"
)

// CartItem is one pending purchase: either a single explicit slot or a
// whole project package.
type CartItem struct {
	ID        string    `bson:"id" json:"id"`
	Kind      string    `bson:"kind" json:"kind"`
	MentorID  string    `bson:"mentor_id" json:"mentorId"`
	ProjectID string    `bson:"project_id,omitempty" json:"projectId,omitempty"`
	StartTime time.Time `bson:"start_time,omitempty" json:"startTime"`
	Title     string    `bson:"title,omitempty" json:"title,omitempty"`
	Price     float64   `bson:"price" json:"price"`
	Currency  string    `bson:"currency,omitempty" json:"currency,omitempty"`
	AddedAt   time.Time `bson:"added_at" json:"addedAt"`
}

// Cart holds one user's pending items. One cart per user, keyed by the
// owning user's ID.
type Cart struct {
	UserID    string     `bson:"user_id" json:"userId"`
	Items     []CartItem `bson:"items" json:"items"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updatedAt"`
}

// Total sums item prices. Plain arithmetic; no discounting.
func (c Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price
	}
	return total
}

// CheckoutRequest confirms payment for everything in the cart.
type CheckoutRequest struct {
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
}

// CheckoutResult reports what a checkout produced. Bookings may be a
// partial set when a later item fails; Failed carries the reason.
type CheckoutResult struct {
	Invoice  *Invoice  `json:"invoice,omitempty"`
	Bookings []Booking `json:"bookings"`
	Failed   string    `json:"failed,omitempty"`
}
