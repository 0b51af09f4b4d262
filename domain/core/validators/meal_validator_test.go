package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainconfig "sikdan-backend/domain/config"
	"sikdan-backend/domain/core/entities"
)

func validDraft() entities.MealDraft {
	return entities.MealDraft{
		Date:     "2024-03-01",
		MealType: entities.MealTypeLunch,
		FoodName: "bibimbap",
		Calories: 600,
		Memo:     "with extra rice",
	}
}

func TestValidateDraft(t *testing.T) {
	v := NewMealValidator(domainconfig.DefaultDomainConfig())

	tests := []struct {
		name       string
		mutate     func(*entities.MealDraft)
		wantField  string
	}{
		{
			name:   "valid draft",
			mutate: func(d *entities.MealDraft) {},
		},
		{
			name:      "missing date",
			mutate:    func(d *entities.MealDraft) { d.Date = "" },
			wantField: "date",
		},
		{
			name:      "malformed date",
			mutate:    func(d *entities.MealDraft) { d.Date = "03/01/2024" },
			wantField: "date",
		},
		{
			name:      "missing meal type",
			mutate:    func(d *entities.MealDraft) { d.MealType = "" },
			wantField: "mealType",
		},
		{
			name:      "unknown meal type",
			mutate:    func(d *entities.MealDraft) { d.MealType = "brunch" },
			wantField: "mealType",
		},
		{
			name:      "missing food name",
			mutate:    func(d *entities.MealDraft) { d.FoodName = "" },
			wantField: "foodName",
		},
		{
			name:      "blank food name",
			mutate:    func(d *entities.MealDraft) { d.FoodName = "   " },
			wantField: "foodName",
		},
		{
			name:      "zero calories",
			mutate:    func(d *entities.MealDraft) { d.Calories = 0 },
			wantField: "calories",
		},
		{
			name:      "negative calories",
			mutate:    func(d *entities.MealDraft) { d.Calories = -100 },
			wantField: "calories",
		},
		{
			name:      "memo too long",
			mutate:    func(d *entities.MealDraft) { d.Memo = strings.Repeat("a", 501) },
			wantField: "memo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			result := v.ValidateDraft(draft)
			if tt.wantField == "" {
				assert.True(t, result.IsValid)
				assert.Empty(t, result.Errors)
				return
			}

			assert.False(t, result.IsValid)
			require.Contains(t, result.Errors, tt.wantField)
			assert.NotEmpty(t, result.Errors[tt.wantField])
		})
	}
}

func TestValidateDraftCollectsAllFieldErrors(t *testing.T) {
	v := NewMealValidator(domainconfig.DefaultDomainConfig())

	result := v.ValidateDraft(entities.MealDraft{})
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "date")
	assert.Contains(t, result.Errors, "mealType")
	assert.Contains(t, result.Errors, "foodName")
	assert.Contains(t, result.Errors, "calories")
}
