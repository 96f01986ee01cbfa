package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
)

type createFeelingRequest struct {
	Type        string `json:"type"`
	Intensity   *int   `json:"intensity"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// GetFeelingCatalog exposes the full mood table for UI pickers.
func GetFeelingCatalog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"catalog": models.FeelingCatalog()})
	}
}

func CreateFeeling(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /posts/:postId/feelings"
		defer handlePanic(c, route)

		userID, ok := callerID(c)
		if !ok {
			log.Println("[FEELING] [ERROR] userId missing in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		postID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("postId")))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid post id")
			return
		}

		var req createFeelingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		feeling, err := buildFeelingFromRequest(userID, postID, req, time.Now())
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("feelings").InsertOne(ctx, feeling)
		if err != nil {
			log.Println("[FEELING] [ERROR] insert feeling failed:", err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			feeling.ID = id
		}

		log.Println("[FEELING] [INFO] feeling created for post:", postID.Hex())
		c.JSON(http.StatusCreated, gin.H{
			"message": "feeling added",
			"feeling": feeling,
		})
	}
}

// buildFeelingFromRequest replicates the schema constraints the store itself
// does not enforce: closed type set, intensity range, description length.
// Emoji and description fall back to the catalog pair when the request
// leaves them empty.
func buildFeelingFromRequest(userID, postID primitive.ObjectID, req createFeelingRequest, now time.Time) (models.Feeling, error) {
	feelingType := strings.TrimSpace(req.Type)
	if !models.IsKnownFeelingType(feelingType) {
		return models.Feeling{}, validationError{Message: fmt.Sprintf("unknown feeling type %q", feelingType)}
	}

	intensity := models.FeelingIntensityDefault
	if req.Intensity != nil {
		intensity = *req.Intensity
		if intensity < models.FeelingIntensityMin || intensity > models.FeelingIntensityMax {
			return models.Feeling{}, validationError{Message: "intensity must be between 1 and 10"}
		}
	}

	description := strings.TrimSpace(req.Description)
	if len([]rune(description)) > models.FeelingDescriptionMaxLen {
		return models.Feeling{}, validationError{Message: "description must be at most 200 characters"}
	}

	meta := models.LookupFeelingMeta(feelingType)
	emoji := strings.TrimSpace(req.Emoji)
	if emoji == "" {
		emoji = meta.Emoji
	}
	if description == "" {
		description = meta.Description
	}

	return models.Feeling{
		Type:        feelingType,
		Intensity:   intensity,
		Emoji:       emoji,
		Description: description,
		PostID:      postID,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
