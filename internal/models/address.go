package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is a user's saved shipping address. Every query against the
// addresses collection filters by UserID; at most one address per user
// carries IsDefault=true.
type Address struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	Country   string             `bson:"country" json:"country"`
	City      string             `bson:"city" json:"city"`
	ZipCode   string             `bson:"zipCode" json:"zipCode"`
	Address   string             `bson:"address" json:"address"`
	IsDefault bool               `bson:"isDefault" json:"isDefault"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
