package config

import (
	"time"

	"sikdan-backend/domain/core/entities"
)

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// Recency ordering: every slot maps to a canonical time of day so
	// records sort deterministically within one date
	SlotTimes       map[entities.MealType]string
	DefaultSlotTime string

	// Week aggregation
	WeekStart  time.Weekday
	WeekLength int

	// Snapshot schema
	SnapshotVersion string

	// Record constraints
	MinCalories       int
	MaxFoodNameLength int
	MaxMemoLength     int

	// Query defaults
	DefaultTopFoodsLimit int
	DefaultRecentLimit   int
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		SlotTimes: map[entities.MealType]string{
			entities.MealTypeBreakfast: "07:00",
			entities.MealTypeLunch:     "12:00",
			entities.MealTypeDinner:    "18:00",
			entities.MealTypeSnack:     "21:00",
		},
		DefaultSlotTime: "12:00",

		WeekStart:  time.Sunday,
		WeekLength: 7,

		SnapshotVersion: "1.0",

		MinCalories:       1,
		MaxFoodNameLength: 200,
		MaxMemoLength:     500,

		DefaultTopFoodsLimit: 5,
		DefaultRecentLimit:   10,
	}
}

// SlotTime returns the canonical time of day for a meal-time slot,
// falling back to the default for unknown slots
func (c *DomainConfig) SlotTime(mealType entities.MealType) string {
	if t, ok := c.SlotTimes[mealType]; ok {
		return t
	}
	return c.DefaultSlotTime
}
