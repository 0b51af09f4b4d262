package entities

import (
	"time"

	"github.com/google/uuid"
)

// MealType identifies the meal-time slot of a record
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// KnownMealTypes lists the closed set of valid meal-time slots
var KnownMealTypes = []MealType{
	MealTypeBreakfast,
	MealTypeLunch,
	MealTypeDinner,
	MealTypeSnack,
}

// IsKnown reports whether the meal type is one of the four valid slots.
// Records loaded from the cache, the remote store, or an imported
// snapshot are not re-checked; only drafts are validated against this.
func (m MealType) IsKnown() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// MealRecord is one logged meal entry. This is the single canonical
// schema; snake_case column adaptation happens only at the remote
// store boundary.
type MealRecord struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"` // YYYY-MM-DD
	MealType  MealType `json:"mealType"`
	FoodName  string   `json:"foodName"`
	Calories  int      `json:"calories"`
	Memo      string   `json:"memo,omitempty"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

// MealDraft carries the user-editable fields of a record before it
// has an identity
type MealDraft struct {
	Date     string   `json:"date"`
	MealType MealType `json:"mealType"`
	FoodName string   `json:"foodName"`
	Calories int      `json:"calories"`
	Memo     string   `json:"memo,omitempty"`
}

// MealPatch carries a partial update; nil fields are left untouched
type MealPatch struct {
	Date     *string   `json:"date,omitempty"`
	MealType *MealType `json:"mealType,omitempty"`
	FoodName *string   `json:"foodName,omitempty"`
	Calories *int      `json:"calories,omitempty"`
	Memo     *string   `json:"memo,omitempty"`
}

// NewMealRecord creates a record from a draft, assigning its identity
// and creation timestamp. The ID is never reassigned afterwards.
func NewMealRecord(draft MealDraft) MealRecord {
	return MealRecord{
		ID:        uuid.New().String(),
		Date:      draft.Date,
		MealType:  draft.MealType,
		FoodName:  draft.FoodName,
		Calories:  draft.Calories,
		Memo:      draft.Memo,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
}

// ApplyPatch merges the non-nil fields of patch into the record and
// stamps UpdatedAt
func (r *MealRecord) ApplyPatch(patch MealPatch) {
	if patch.Date != nil {
		r.Date = *patch.Date
	}
	if patch.MealType != nil {
		r.MealType = *patch.MealType
	}
	if patch.FoodName != nil {
		r.FoodName = *patch.FoodName
	}
	if patch.Calories != nil {
		r.Calories = *patch.Calories
	}
	if patch.Memo != nil {
		r.Memo = *patch.Memo
	}
	r.UpdatedAt = time.Now().Format(time.RFC3339)
}

// CreatedTime parses the creation timestamp, returning the zero time
// when it is missing or unreadable
func (r MealRecord) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
