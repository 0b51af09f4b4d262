package stats

import (
	"sort"
	"strings"

	domainconfig "sikdan-backend/domain/config"
	"sikdan-backend/domain/core/entities"
	"sikdan-backend/pkg/utils"
)

// DailyStats holds per-slot calorie sums for one date. All values are
// integers >= 0 and computed fresh per query; nothing here is persisted.
type DailyStats struct {
	Date      string `json:"date"`
	Breakfast int    `json:"breakfast"`
	Lunch     int    `json:"lunch"`
	Dinner    int    `json:"dinner"`
	Snack     int    `json:"snack"`
	Total     int    `json:"total"`
}

// WeekDayStats is one entry of a weekly breakdown, tagged with its
// day-of-week label
type WeekDayStats struct {
	DailyStats
	DayOfWeek string `json:"dayOfWeek"`
}

// FoodCount is one ranking entry of the most frequently logged foods
type FoodCount struct {
	Food  string `json:"food"`
	Count int    `json:"count"`
}

// MealSummary is a per-day roll-up of record counts and calories
type MealSummary struct {
	Date                   string `json:"date"`
	TotalMeals             int    `json:"totalMeals"`
	TotalCalories          int    `json:"totalCalories"`
	BreakfastCount         int    `json:"breakfastCount"`
	LunchCount             int    `json:"lunchCount"`
	DinnerCount            int    `json:"dinnerCount"`
	SnackCount             int    `json:"snackCount"`
	AverageCaloriesPerMeal int    `json:"averageCaloriesPerMeal"`
}

// SortOrder controls the direction of a recency sort
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// Calculator derives statistics from in-memory record lists using the
// configured business rules
type Calculator struct {
	cfg *domainconfig.DomainConfig
}

// NewCalculator creates a calculator with the given domain config
func NewCalculator(cfg *domainconfig.DomainConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// Daily sums calories for all records on the given date into per-slot
// buckets and a total. A record whose slot is not one of the four known
// values contributes to the total but to no named bucket.
func (c *Calculator) Daily(records []entities.MealRecord, date string) DailyStats {
	stats := DailyStats{Date: date}

	for _, r := range records {
		if r.Date != date {
			continue
		}
		switch r.MealType {
		case entities.MealTypeBreakfast:
			stats.Breakfast += r.Calories
		case entities.MealTypeLunch:
			stats.Lunch += r.Calories
		case entities.MealTypeDinner:
			stats.Dinner += r.Calories
		case entities.MealTypeSnack:
			stats.Snack += r.Calories
		}
		stats.Total += r.Calories
	}

	return stats
}

// Weekly computes a seven-day breakdown for the week containing the
// anchor date, starting on the configured first day of the week
func (c *Calculator) Weekly(records []entities.MealRecord, anchorDate string) ([]WeekDayStats, error) {
	anchor, err := utils.ParseDay(anchorDate)
	if err != nil {
		return nil, err
	}

	start := utils.WeekStart(anchor, c.cfg.WeekStart)
	week := make([]WeekDayStats, 0, c.cfg.WeekLength)
	for i := 0; i < c.cfg.WeekLength; i++ {
		day := start.AddDate(0, 0, i)
		week = append(week, WeekDayStats{
			DailyStats: c.Daily(records, utils.FormatDay(day)),
			DayOfWeek:  utils.DayLabel(day),
		})
	}

	return week, nil
}

// SortByRecency orders records by date plus the canonical time of day
// of their slot. The sort is stable, so records sharing a date and slot
// keep their relative order.
func (c *Calculator) SortByRecency(records []entities.MealRecord, order SortOrder) []entities.MealRecord {
	sorted := make([]entities.MealRecord, len(records))
	copy(sorted, records)

	key := func(r entities.MealRecord) string {
		return r.Date + "T" + c.cfg.SlotTime(r.MealType)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortDescending {
			return key(sorted[i]) > key(sorted[j])
		}
		return key(sorted[i]) < key(sorted[j])
	})

	return sorted
}

// TopFoods ranks food names by occurrence count, descending. Ties keep
// first-encountered order.
func (c *Calculator) TopFoods(records []entities.MealRecord, n int) []FoodCount {
	if n <= 0 {
		n = c.cfg.DefaultTopFoodsLimit
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		if counts[r.FoodName] == 0 {
			order = append(order, r.FoodName)
		}
		counts[r.FoodName]++
	}

	ranking := make([]FoodCount, 0, len(order))
	for _, food := range order {
		ranking = append(ranking, FoodCount{Food: food, Count: counts[food]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})

	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// Recent returns the n most recently created records, newest first
func (c *Calculator) Recent(records []entities.MealRecord, n int) []entities.MealRecord {
	if n <= 0 {
		n = c.cfg.DefaultRecentLimit
	}

	sorted := make([]entities.MealRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedTime().After(sorted[j].CreatedTime())
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Summary rolls up record counts and calories for one date
func (c *Calculator) Summary(records []entities.MealRecord, date string) MealSummary {
	summary := MealSummary{Date: date}

	for _, r := range records {
		if r.Date != date {
			continue
		}
		summary.TotalMeals++
		summary.TotalCalories += r.Calories
		switch r.MealType {
		case entities.MealTypeBreakfast:
			summary.BreakfastCount++
		case entities.MealTypeLunch:
			summary.LunchCount++
		case entities.MealTypeDinner:
			summary.DinnerCount++
		case entities.MealTypeSnack:
			summary.SnackCount++
		}
	}

	if summary.TotalMeals > 0 {
		summary.AverageCaloriesPerMeal = summary.TotalCalories / summary.TotalMeals
	}
	return summary
}

// GroupByDate partitions records into a map keyed by date, preserving
// relative order within each group
func GroupByDate(records []entities.MealRecord) map[string][]entities.MealRecord {
	groups := make(map[string][]entities.MealRecord)
	for _, r := range records {
		groups[r.Date] = append(groups[r.Date], r)
	}
	return groups
}

// GroupByType partitions records into a map keyed by meal-time slot,
// preserving relative order within each group
func GroupByType(records []entities.MealRecord) map[entities.MealType][]entities.MealRecord {
	groups := make(map[entities.MealType][]entities.MealRecord)
	for _, r := range records {
		groups[r.MealType] = append(groups[r.MealType], r)
	}
	return groups
}

// SearchByFood filters records whose food name or memo contains the
// term, case-insensitively. An empty term returns all records.
func SearchByFood(records []entities.MealRecord, term string) []entities.MealRecord {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return records
	}

	var matched []entities.MealRecord
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.FoodName), term) ||
			strings.Contains(strings.ToLower(r.Memo), term) {
			matched = append(matched, r)
		}
	}
	return matched
}

// FilterByCalorieRange returns records whose calories fall within the
// inclusive range
func FilterByCalorieRange(records []entities.MealRecord, min, max int) []entities.MealRecord {
	var matched []entities.MealRecord
	for _, r := range records {
		if r.Calories >= min && r.Calories <= max {
			matched = append(matched, r)
		}
	}
	return matched
}

// AverageCalories averages a series of daily totals, rounded to the
// nearest integer. An empty series averages to zero.
func AverageCalories(dailyTotals []int) int {
	if len(dailyTotals) == 0 {
		return 0
	}
	sum := 0
	for _, t := range dailyTotals {
		sum += t
	}
	return (sum + len(dailyTotals)/2) / len(dailyTotals)
}
