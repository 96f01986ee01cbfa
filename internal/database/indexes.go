package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureAddressIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("addresses").Indexes()

	// Backs both the ownership filter and the createdAt-descending listing.
	userCreatedIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("userId_createdAt_index"),
	}

	log.Println("EnsureAddressIndexes: creating userId_createdAt_index")
	_, err := indexes.CreateOne(ctx, userCreatedIndex)
	if err != nil {
		log.Println("EnsureAddressIndexes: index error:", err)
		return err
	}
	log.Println("EnsureAddressIndexes: userId_createdAt_index created")
	return nil
}

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	createdIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_index"),
	}

	log.Println("EnsureOrderIndexes: creating createdAt_index")
	_, err := indexes.CreateOne(ctx, createdIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: createdAt index error:", err)
		return err
	}
	log.Println("EnsureOrderIndexes: createdAt_index created")
	return nil
}

func EnsureFeelingIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("feelings").Indexes()

	postIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "postId", Value: 1}},
		Options: options.Index().SetName("postId_index"),
	}

	log.Println("EnsureFeelingIndexes: creating postId_index")
	_, err := indexes.CreateOne(ctx, postIndex)
	if err != nil {
		log.Println("EnsureFeelingIndexes: postId index error:", err)
		return err
	}
	log.Println("EnsureFeelingIndexes: postId_index created")
	return nil
}
