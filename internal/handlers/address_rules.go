package handlers

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
)

type addressRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
	Address   string `json:"address"`
	IsDefault bool   `json:"isDefault"`
}

func (r addressRequest) normalized() addressRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Country = strings.TrimSpace(r.Country)
	r.City = strings.TrimSpace(r.City)
	r.ZipCode = strings.TrimSpace(r.ZipCode)
	r.Address = strings.TrimSpace(r.Address)
	return r
}

func validateAddressRequest(req addressRequest) error {
	if req.Name == "" {
		return validationError{Message: "name is required"}
	}
	return nil
}

func newAddressFromRequest(userID primitive.ObjectID, req addressRequest, now time.Time) models.Address {
	return models.Address{
		UserID:    userID,
		Name:      req.Name,
		Phone:     req.Phone,
		Country:   req.Country,
		City:      req.City,
		ZipCode:   req.ZipCode,
		Address:   req.Address,
		IsDefault: req.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// The filter/update documents below are the only cross-record coordination
// in the subsystem; a wrong key or a dropped $ne here silently breaks the
// single-default invariant, so they live as named builders with tests.

func ownedAddressFilter(addressID, userID primitive.ObjectID) bson.M {
	return bson.M{"_id": addressID, "userId": userID}
}

func userAddressesFilter(userID primitive.ObjectID) bson.M {
	return bson.M{"userId": userID}
}

// otherUserAddressesFilter matches all of the user's addresses except the
// one being updated.
func otherUserAddressesFilter(userID, excludedAddressID primitive.ObjectID) bson.M {
	return bson.M{"userId": userID, "_id": bson.M{"$ne": excludedAddressID}}
}

func clearDefaultsUpdate() bson.M {
	return bson.M{"$set": bson.M{"isDefault": false}}
}

func addressListSort() bson.D {
	return bson.D{{Key: "createdAt", Value: -1}}
}

// applyAddressRequest replaces every mutable field; optional fields the
// request left empty are reset to "", not merged.
func applyAddressRequest(address *models.Address, req addressRequest, now time.Time) {
	address.Name = req.Name
	address.Phone = req.Phone
	address.Country = req.Country
	address.City = req.City
	address.ZipCode = req.ZipCode
	address.Address = req.Address
	address.IsDefault = req.IsDefault
	address.UpdatedAt = now
}
