package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Customer is a storefront account holder.
type Customer struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string        `bson:"email" json:"email" validate:"required,email"`
	Password      string        `bson:"password" json:"-" validate:"required,min=6"` // Never expose in JSON
	Name          string        `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Phone         string        `bson:"phone" json:"phone,omitempty"`
	AccountStatus string        `bson:"account_status" json:"account_status" validate:"required,oneof=active inactive deleted"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`
}

// SetTimestamps sets created_at on first call and always updates updated_at
func (c *Customer) SetTimestamps() {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}

func (c *Customer) IsActive() bool {
	return c.AccountStatus == "active"
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// WishlistEntry is one saved product for a session or signed-in customer.
type WishlistEntry struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID string        `bson:"session_id" json:"session_id"`
	ProductID string        `bson:"product_id" json:"product_id"`
	AddedAt   time.Time     `bson:"added_at" json:"added_at"`
}
