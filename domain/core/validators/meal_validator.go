package validators

import (
	"fmt"
	"strings"

	domainconfig "sikdan-backend/domain/config"
	"sikdan-backend/domain/core/entities"
	"sikdan-backend/pkg/utils"
)

// ValidationResult reports per-field validation outcomes for a draft
type ValidationResult struct {
	IsValid bool              `json:"isValid"`
	Errors  map[string]string `json:"errors"`
}

// MealValidator validates meal-record drafts against domain rules
type MealValidator struct {
	minCalories       int
	maxFoodNameLength int
	maxMemoLength     int
}

// NewMealValidator creates a validator with the configured rules
func NewMealValidator(cfg *domainconfig.DomainConfig) *MealValidator {
	return &MealValidator{
		minCalories:       cfg.MinCalories,
		maxFoodNameLength: cfg.MaxFoodNameLength,
		maxMemoLength:     cfg.MaxMemoLength,
	}
}

// ValidateDraft checks the required fields of a draft and collects one
// message per failing field. It never rejects by throwing; callers
// inspect the result.
func (v *MealValidator) ValidateDraft(draft entities.MealDraft) ValidationResult {
	errs := make(map[string]string)

	if draft.Date == "" {
		errs["date"] = "date is required"
	} else if !utils.IsDay(draft.Date) {
		errs["date"] = "date must be in YYYY-MM-DD format"
	}

	if draft.MealType == "" {
		errs["mealType"] = "meal type is required"
	} else if !draft.MealType.IsKnown() {
		errs["mealType"] = "meal type must be one of breakfast, lunch, dinner, snack"
	}

	if strings.TrimSpace(draft.FoodName) == "" {
		errs["foodName"] = "food name is required"
	} else if len(draft.FoodName) > v.maxFoodNameLength {
		errs["foodName"] = fmt.Sprintf("food name must be at most %d characters", v.maxFoodNameLength)
	}

	if draft.Calories < v.minCalories {
		errs["calories"] = "calories must be a positive integer"
	}

	if len(draft.Memo) > v.maxMemoLength {
		errs["memo"] = fmt.Sprintf("memo must be at most %d characters", v.maxMemoLength)
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
