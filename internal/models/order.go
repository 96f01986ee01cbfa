package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a single-product purchase record. Orders are written once and
// never updated or deleted by this service.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID    int64              `bson:"productId" json:"productId"`
	ProductName  string             `bson:"productName" json:"productName"`
	ProductImage string             `bson:"productImage" json:"productImage"`
	ProductPrice float64            `bson:"productPrice" json:"productPrice"`
	BuyerName    string             `bson:"buyerName" json:"buyerName"`
	Address      string             `bson:"address" json:"address"`
	Phone        string             `bson:"phone" json:"phone"`
	City         string             `bson:"city" json:"city"`
	Postal       string             `bson:"postal" json:"postal"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
