package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
)

type createOrderRequest struct {
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage"`
	ProductPrice float64 `json:"productPrice"`
	BuyerName    string  `json:"buyerName"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	City         string  `json:"city"`
	Postal       string  `json:"postal"`
}

func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		order, err := buildOrderFromRequest(req, time.Now())
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("orders").InsertOne(ctx, order)
		if err != nil {
			// Store failures on this path surface as 400 with the raw
			// message, unlike the address handlers' 500 convention.
			log.Println("[ORDER] [ERROR] insert order failed:", err)
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			order.ID = id
		}

		log.Println("[ORDER] [INFO] order created:", order.ID.Hex())
		c.JSON(http.StatusCreated, order)
	}
}

// buildOrderFromRequest checks all nine required fields; zero numbers count
// as missing, the same way empty strings do.
func buildOrderFromRequest(req createOrderRequest, now time.Time) (models.Order, error) {
	required := []string{
		req.ProductName,
		req.ProductImage,
		req.BuyerName,
		req.Address,
		req.Phone,
		req.City,
		req.Postal,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return models.Order{}, validationError{Message: "All fields are required"}
		}
	}
	if req.ProductID == 0 || req.ProductPrice == 0 {
		return models.Order{}, validationError{Message: "All fields are required"}
	}

	return models.Order{
		ProductID:    req.ProductID,
		ProductName:  req.ProductName,
		ProductImage: req.ProductImage,
		ProductPrice: req.ProductPrice,
		BuyerName:    req.BuyerName,
		Address:      req.Address,
		Phone:        req.Phone,
		City:         req.City,
		Postal:       req.Postal,
		CreatedAt:    now,
	}, nil
}
