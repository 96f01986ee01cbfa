package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feeling annotates a post with a mood picked from the fixed catalog below.
type Feeling struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type        string             `bson:"type" json:"type"`
	Intensity   int                `bson:"intensity" json:"intensity"`
	Emoji       string             `bson:"emoji" json:"emoji"`
	Description string             `bson:"description" json:"description"`
	PostID      primitive.ObjectID `bson:"postId" json:"postId"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FeelingMeta is the canonical emoji/description pair for a mood type.
type FeelingMeta struct {
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

const (
	// FeelingIntensityDefault is applied when a request omits intensity.
	FeelingIntensityDefault = 5
	FeelingIntensityMin     = 1
	FeelingIntensityMax     = 10

	// FeelingDescriptionMaxLen caps the free-text description.
	FeelingDescriptionMaxLen = 200
)

// feelingCatalog is the closed set of moods a post can be tagged with.
var feelingCatalog = map[string]FeelingMeta{
	"happy":        {Emoji: "😊", Description: "Feeling happy and content"},
	"sad":          {Emoji: "😢", Description: "Feeling sad and down"},
	"excited":      {Emoji: "🤩", Description: "Feeling excited and thrilled"},
	"angry":        {Emoji: "😠", Description: "Feeling angry and upset"},
	"anxious":      {Emoji: "😰", Description: "Feeling anxious and worried"},
	"grateful":     {Emoji: "🙏", Description: "Feeling grateful and thankful"},
	"loved":        {Emoji: "🥰", Description: "Feeling loved and cherished"},
	"blessed":      {Emoji: "😇", Description: "Feeling blessed and fortunate"},
	"thankful":     {Emoji: "😌", Description: "Feeling thankful and appreciative"},
	"motivated":    {Emoji: "💪", Description: "Feeling motivated and driven"},
	"inspired":     {Emoji: "✨", Description: "Feeling inspired and creative"},
	"relaxed":      {Emoji: "😎", Description: "Feeling relaxed and at ease"},
	"tired":        {Emoji: "😴", Description: "Feeling tired and worn out"},
	"bored":        {Emoji: "🥱", Description: "Feeling bored and restless"},
	"confused":     {Emoji: "😕", Description: "Feeling confused and unsure"},
	"surprised":    {Emoji: "😲", Description: "Feeling surprised and amazed"},
	"proud":        {Emoji: "😤", Description: "Feeling proud and accomplished"},
	"hopeful":      {Emoji: "🌅", Description: "Feeling hopeful about the future"},
	"lonely":       {Emoji: "😔", Description: "Feeling lonely and isolated"},
	"nostalgic":    {Emoji: "📷", Description: "Feeling nostalgic about the past"},
	"amused":       {Emoji: "😄", Description: "Feeling amused and entertained"},
	"content":      {Emoji: "🙂", Description: "Feeling content and satisfied"},
	"energetic":    {Emoji: "⚡", Description: "Feeling energetic and lively"},
	"peaceful":     {Emoji: "🕊️", Description: "Feeling peaceful and calm"},
	"silly":        {Emoji: "🤪", Description: "Feeling silly and goofy"},
	"cool":         {Emoji: "🆒", Description: "Feeling cool and confident"},
	"crazy":        {Emoji: "🤯", Description: "Feeling crazy and wild"},
	"hungry":       {Emoji: "🍕", Description: "Feeling hungry and craving food"},
	"sick":         {Emoji: "🤒", Description: "Feeling sick and unwell"},
	"sleepy":       {Emoji: "💤", Description: "Feeling sleepy and drowsy"},
	"strong":       {Emoji: "🏋️", Description: "Feeling strong and capable"},
	"weak":         {Emoji: "😩", Description: "Feeling weak and drained"},
	"scared":       {Emoji: "😱", Description: "Feeling scared and frightened"},
	"nervous":      {Emoji: "😬", Description: "Feeling nervous and on edge"},
	"embarrassed":  {Emoji: "😳", Description: "Feeling embarrassed and awkward"},
	"jealous":      {Emoji: "😒", Description: "Feeling jealous and envious"},
	"annoyed":      {Emoji: "🙄", Description: "Feeling annoyed and irritated"},
	"frustrated":   {Emoji: "😣", Description: "Feeling frustrated and stuck"},
	"disappointed": {Emoji: "😞", Description: "Feeling disappointed and let down"},
	"heartbroken":  {Emoji: "💔", Description: "Feeling heartbroken and hurt"},
	"determined":   {Emoji: "🎯", Description: "Feeling determined and focused"},
	"confident":    {Emoji: "😏", Description: "Feeling confident and self-assured"},
	"curious":      {Emoji: "🧐", Description: "Feeling curious and inquisitive"},
	"playful":      {Emoji: "😜", Description: "Feeling playful and fun"},
	"romantic":     {Emoji: "💕", Description: "Feeling romantic and affectionate"},
	"thoughtful":   {Emoji: "🤔", Description: "Feeling thoughtful and reflective"},
	"optimistic":   {Emoji: "🌞", Description: "Feeling optimistic and positive"},
	"adventurous":  {Emoji: "🧗", Description: "Feeling adventurous and bold"},
}

// feelingFallback is returned for mood types outside the catalog.
var feelingFallback = FeelingMeta{Emoji: "😊", Description: "Feeling something"}

// LookupFeelingMeta returns the canonical emoji/description for a mood type.
// Unknown types get the generic fallback rather than an error.
func LookupFeelingMeta(feelingType string) FeelingMeta {
	if meta, ok := feelingCatalog[feelingType]; ok {
		return meta
	}
	return feelingFallback
}

// IsKnownFeelingType reports whether the mood type belongs to the catalog.
func IsKnownFeelingType(feelingType string) bool {
	_, ok := feelingCatalog[feelingType]
	return ok
}

// FeelingCatalog returns a copy of the full mood table, keyed by type.
func FeelingCatalog() map[string]FeelingMeta {
	catalog := make(map[string]FeelingMeta, len(feelingCatalog))
	for feelingType, meta := range feelingCatalog {
		catalog[feelingType] = meta
	}
	return catalog
}
