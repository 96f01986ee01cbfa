package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateFeelingInvalidPostIDRejected(t *testing.T) {
	c, recorder := newHandlerTestContext(t, "POST", "/posts/bad/feelings", `{"type":"happy"}`)
	c.Set("userId", primitive.NewObjectID())
	c.Params = gin.Params{{Key: "postId", Value: "bad"}}

	CreateFeeling(nil)(c)

	if recorder.Code != 400 {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestBuildFeelingFromRequestUnknownType(t *testing.T) {
	_, err := buildFeelingFromRequest(
		primitive.NewObjectID(), primitive.NewObjectID(),
		createFeelingRequest{Type: "ecstatic"}, time.Now(),
	)
	if err == nil {
		t.Fatal("expected error for type outside the catalog")
	}
}

func TestBuildFeelingFromRequestDefaults(t *testing.T) {
	now := time.Now()
	userID := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	feeling, err := buildFeelingFromRequest(userID, postID, createFeelingRequest{Type: "happy"}, now)
	if err != nil {
		t.Fatalf("buildFeelingFromRequest returned error: %v", err)
	}

	if feeling.Intensity != 5 {
		t.Fatalf("expected default intensity 5, got %d", feeling.Intensity)
	}
	if feeling.Emoji != "😊" {
		t.Fatalf("expected catalog emoji, got %q", feeling.Emoji)
	}
	if feeling.Description != "Feeling happy and content" {
		t.Fatalf("expected catalog description, got %q", feeling.Description)
	}
	if feeling.UserID != userID || feeling.PostID != postID {
		t.Fatalf("expected user/post references preserved, got %+v", feeling)
	}
	if !feeling.CreatedAt.Equal(now) || !feeling.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps set to %v, got %+v", now, feeling)
	}
}

func TestBuildFeelingFromRequestIntensityRange(t *testing.T) {
	for _, intensity := range []int{0, -1, 11, 100} {
		value := intensity
		_, err := buildFeelingFromRequest(
			primitive.NewObjectID(), primitive.NewObjectID(),
			createFeelingRequest{Type: "happy", Intensity: &value}, time.Now(),
		)
		if err == nil {
			t.Fatalf("expected error for intensity %d", intensity)
		}
	}

	for _, intensity := range []int{1, 5, 10} {
		value := intensity
		feeling, err := buildFeelingFromRequest(
			primitive.NewObjectID(), primitive.NewObjectID(),
			createFeelingRequest{Type: "happy", Intensity: &value}, time.Now(),
		)
		if err != nil {
			t.Fatalf("unexpected error for intensity %d: %v", intensity, err)
		}
		if feeling.Intensity != intensity {
			t.Fatalf("expected intensity %d, got %d", intensity, feeling.Intensity)
		}
	}
}

func TestBuildFeelingFromRequestDescriptionLength(t *testing.T) {
	long := strings.Repeat("a", 201)
	_, err := buildFeelingFromRequest(
		primitive.NewObjectID(), primitive.NewObjectID(),
		createFeelingRequest{Type: "happy", Description: long}, time.Now(),
	)
	if err == nil {
		t.Fatal("expected error for description over 200 characters")
	}

	exact := strings.Repeat("a", 200)
	feeling, err := buildFeelingFromRequest(
		primitive.NewObjectID(), primitive.NewObjectID(),
		createFeelingRequest{Type: "happy", Description: exact}, time.Now(),
	)
	if err != nil {
		t.Fatalf("unexpected error for 200-character description: %v", err)
	}
	if feeling.Description != exact {
		t.Fatal("expected description preserved at the length cap")
	}
}

func TestBuildFeelingFromRequestKeepsProvidedEmojiAndDescription(t *testing.T) {
	feeling, err := buildFeelingFromRequest(
		primitive.NewObjectID(), primitive.NewObjectID(),
		createFeelingRequest{Type: "sad", Emoji: "🌧️", Description: "rough day"}, time.Now(),
	)
	if err != nil {
		t.Fatalf("buildFeelingFromRequest returned error: %v", err)
	}
	if feeling.Emoji != "🌧️" {
		t.Fatalf("expected provided emoji kept, got %q", feeling.Emoji)
	}
	if feeling.Description != "rough day" {
		t.Fatalf("expected provided description kept, got %q", feeling.Description)
	}
}
