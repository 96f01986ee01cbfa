package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

func GetAddresses(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /addresses"
		defer handlePanic(c, route)

		userID, ok := callerID(c)
		if !ok {
			log.Println("[ADDRESS] [ERROR] userId missing in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		findOptions := options.Find().SetSort(addressListSort())
		cursor, err := db.Collection("addresses").Find(ctx, userAddressesFilter(userID), findOptions)
		if err != nil {
			log.Println("[ADDRESS] [ERROR] list addresses failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		addresses := make([]models.Address, 0)
		if err := cursor.All(ctx, &addresses); err != nil {
			log.Println("[ADDRESS] [ERROR] decode addresses failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, addresses)
	}
}

func AddAddress(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /addresses"
		defer handlePanic(c, route)

		userID, ok := callerID(c)
		if !ok {
			log.Println("[ADDRESS] [ERROR] userId missing in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req addressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		req = req.normalized()
		if err := validateAddressRequest(req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		// Clearing old defaults and inserting are two independent writes;
		// document-level atomicity is all the store guarantees here.
		if req.IsDefault {
			_, err := db.Collection("addresses").UpdateMany(ctx,
				userAddressesFilter(userID), clearDefaultsUpdate())
			if err != nil {
				log.Println("[ADDRESS] [ERROR] clear defaults failed:", err)
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
		}

		address := newAddressFromRequest(userID, req, time.Now())
		res, err := db.Collection("addresses").InsertOne(ctx, address)
		if err != nil {
			log.Println("[ADDRESS] [ERROR] insert address failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			address.ID = id
		}

		log.Println("[ADDRESS] [INFO] address created:", address.ID.Hex())
		c.JSON(http.StatusCreated, gin.H{
			"message": "address added",
			"address": address,
		})
	}
}

func UpdateAddress(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /addresses/:addressId"
		defer handlePanic(c, route)

		userID, ok := callerID(c)
		if !ok {
			log.Println("[ADDRESS] [ERROR] userId missing in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		addressID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("addressId")))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid address id")
			return
		}

		var req addressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		// Single lookup covers both existence and ownership; missing and
		// not-owned are indistinguishable to the caller.
		var address models.Address
		err = db.Collection("addresses").FindOne(ctx, ownedAddressFilter(addressID, userID)).Decode(&address)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "address not found")
			return
		}
		if err != nil {
			log.Println("[ADDRESS] [ERROR] address lookup failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		req = req.normalized()
		if err := validateAddressRequest(req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		if req.IsDefault {
			_, err := db.Collection("addresses").UpdateMany(ctx,
				otherUserAddressesFilter(userID, addressID), clearDefaultsUpdate())
			if err != nil {
				log.Println("[ADDRESS] [ERROR] clear defaults failed:", err)
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
		}

		applyAddressRequest(&address, req, time.Now())

		_, err = db.Collection("addresses").UpdateByID(ctx, addressID, bson.M{
			"$set": bson.M{
				"name":      address.Name,
				"phone":     address.Phone,
				"country":   address.Country,
				"city":      address.City,
				"zipCode":   address.ZipCode,
				"address":   address.Address,
				"isDefault": address.IsDefault,
				"updatedAt": address.UpdatedAt,
			},
		})
		if err != nil {
			log.Println("[ADDRESS] [ERROR] update address failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Println("[ADDRESS] [INFO] address updated:", addressID.Hex())
		c.JSON(http.StatusOK, gin.H{
			"message": "address updated",
			"address": address,
		})
	}
}

func DeleteAddress(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /addresses/:addressId"
		defer handlePanic(c, route)

		userID, ok := callerID(c)
		if !ok {
			log.Println("[ADDRESS] [ERROR] userId missing in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		addressID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("addressId")))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid address id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		err = db.Collection("addresses").FindOne(ctx, ownedAddressFilter(addressID, userID)).Err()
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "address not found")
			return
		}
		if err != nil {
			log.Println("[ADDRESS] [ERROR] address lookup failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		// Deleting the default address leaves the user with no default;
		// no other address is promoted.
		_, err = db.Collection("addresses").DeleteOne(ctx, ownedAddressFilter(addressID, userID))
		if err != nil {
			log.Println("[ADDRESS] [ERROR] delete address failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Println("[ADDRESS] [INFO] address deleted:", addressID.Hex())
		c.JSON(http.StatusOK, gin.H{"message": "address deleted"})
	}
}

func SetDefaultAddress(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /addresses/:addressId/default"
		defer handlePanic(c, route)

		userID, ok := callerID(c)
		if !ok {
			log.Println("[ADDRESS] [ERROR] userId missing in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		addressID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("addressId")))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid address id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var address models.Address
		err = db.Collection("addresses").FindOne(ctx, ownedAddressFilter(addressID, userID)).Decode(&address)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "address not found")
			return
		}
		if err != nil {
			log.Println("[ADDRESS] [ERROR] address lookup failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		// Two sequential writes. A crash between them can leave the user
		// with zero defaults; concurrent calls can leave more than one.
		_, err = db.Collection("addresses").UpdateMany(ctx,
			userAddressesFilter(userID), clearDefaultsUpdate())
		if err != nil {
			log.Println("[ADDRESS] [ERROR] clear defaults failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		address.IsDefault = true
		address.UpdatedAt = time.Now()

		_, err = db.Collection("addresses").UpdateByID(ctx, addressID, bson.M{
			"$set": bson.M{
				"isDefault": true,
				"updatedAt": address.UpdatedAt,
			},
		})
		if err != nil {
			log.Println("[ADDRESS] [ERROR] set default failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Println("[ADDRESS] [INFO] default address set:", addressID.Hex())
		c.JSON(http.StatusOK, gin.H{
			"message": "default address updated",
			"address": address,
		})
	}
}
