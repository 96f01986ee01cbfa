package handlers

import (
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
)

func TestValidateAddressRequestBlankName(t *testing.T) {
	tests := []string{"", "   ", "\t\n"}
	for _, name := range tests {
		req := addressRequest{Name: name}.normalized()
		if err := validateAddressRequest(req); err == nil {
			t.Fatalf("expected validation error for name %q", name)
		}
	}
}

func TestNormalizedTrimsAllFields(t *testing.T) {
	req := addressRequest{
		Name:    "  Jane Doe  ",
		Phone:   " 555-0100 ",
		Country: " NL ",
		City:    " Amsterdam ",
		ZipCode: " 1011AB ",
		Address: " Main St 1 ",
	}.normalized()

	if req.Name != "Jane Doe" {
		t.Fatalf("expected trimmed name, got %q", req.Name)
	}
	if req.Phone != "555-0100" || req.Country != "NL" || req.City != "Amsterdam" ||
		req.ZipCode != "1011AB" || req.Address != "Main St 1" {
		t.Fatalf("expected all fields trimmed, got %+v", req)
	}
}

func TestNewAddressFromRequestDefaults(t *testing.T) {
	userID := primitive.NewObjectID()
	now := time.Now()

	address := newAddressFromRequest(userID, addressRequest{Name: "Jane"}, now)

	if address.UserID != userID {
		t.Fatalf("expected owner %s, got %s", userID.Hex(), address.UserID.Hex())
	}
	if address.Phone != "" || address.Country != "" || address.City != "" ||
		address.ZipCode != "" || address.Address != "" {
		t.Fatalf("expected optional fields to default to empty, got %+v", address)
	}
	if address.IsDefault {
		t.Fatal("expected isDefault to default to false")
	}
	if !address.CreatedAt.Equal(now) || !address.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps set to %v, got %+v", now, address)
	}
}

func TestOwnedAddressFilterScopesToOwner(t *testing.T) {
	addressID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	filter := ownedAddressFilter(addressID, userID)

	want := bson.M{"_id": addressID, "userId": userID}
	if !reflect.DeepEqual(filter, want) {
		t.Fatalf("expected filter %v, got %v", want, filter)
	}
}

func TestUserAddressesFilterKeysOnUserID(t *testing.T) {
	userID := primitive.NewObjectID()

	filter := userAddressesFilter(userID)

	want := bson.M{"userId": userID}
	if !reflect.DeepEqual(filter, want) {
		t.Fatalf("expected filter %v, got %v", want, filter)
	}
}

func TestOtherUserAddressesFilterExcludesTarget(t *testing.T) {
	userID := primitive.NewObjectID()
	addressID := primitive.NewObjectID()

	filter := otherUserAddressesFilter(userID, addressID)

	want := bson.M{"userId": userID, "_id": bson.M{"$ne": addressID}}
	if !reflect.DeepEqual(filter, want) {
		t.Fatalf("expected filter %v, got %v", want, filter)
	}
}

func TestClearDefaultsUpdateOnlyTouchesIsDefault(t *testing.T) {
	update := clearDefaultsUpdate()

	want := bson.M{"$set": bson.M{"isDefault": false}}
	if !reflect.DeepEqual(update, want) {
		t.Fatalf("expected update %v, got %v", want, update)
	}
}

func TestAddressListSortNewestFirst(t *testing.T) {
	sort := addressListSort()

	want := bson.D{{Key: "createdAt", Value: -1}}
	if !reflect.DeepEqual(sort, want) {
		t.Fatalf("expected sort %v, got %v", want, sort)
	}
}

func TestApplyAddressRequestFullReplace(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	address := models.Address{
		Name:      "Old",
		Phone:     "555-0100",
		Country:   "NL",
		City:      "Amsterdam",
		ZipCode:   "1011AB",
		Address:   "Main St 1",
		IsDefault: true,
		CreatedAt: created,
		UpdatedAt: created,
	}

	now := time.Now()
	applyAddressRequest(&address, addressRequest{Name: "New"}, now)

	if address.Name != "New" {
		t.Fatalf("expected name replaced, got %q", address.Name)
	}
	if address.Phone != "" || address.Country != "" || address.City != "" ||
		address.ZipCode != "" || address.Address != "" {
		t.Fatalf("expected absent optional fields reset to empty, got %+v", address)
	}
	if address.IsDefault {
		t.Fatal("expected isDefault reset when absent from request")
	}
	if !address.CreatedAt.Equal(created) {
		t.Fatal("expected createdAt untouched by update")
	}
	if !address.UpdatedAt.Equal(now) {
		t.Fatalf("expected updatedAt refreshed to %v, got %v", now, address.UpdatedAt)
	}
}
