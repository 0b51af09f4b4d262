package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainconfig "sikdan-backend/domain/config"
	"sikdan-backend/domain/core/entities"
)

func newCalculator() *Calculator {
	return NewCalculator(domainconfig.DefaultDomainConfig())
}

func record(date string, mealType entities.MealType, food string, calories int) entities.MealRecord {
	return entities.MealRecord{
		ID:       food + "-" + date,
		Date:     date,
		MealType: mealType,
		FoodName: food,
		Calories: calories,
	}
}

func TestDailyStats(t *testing.T) {
	calc := newCalculator()

	records := []entities.MealRecord{
		record("2024-03-01", entities.MealTypeBreakfast, "toast", 300),
		record("2024-03-01", entities.MealTypeLunch, "bibimbap", 600),
		record("2024-03-01", entities.MealTypeDinner, "stew", 700),
		record("2024-03-02", entities.MealTypeBreakfast, "cereal", 250),
	}

	stats := calc.Daily(records, "2024-03-01")

	assert.Equal(t, 300, stats.Breakfast)
	assert.Equal(t, 600, stats.Lunch)
	assert.Equal(t, 700, stats.Dinner)
	assert.Equal(t, 0, stats.Snack)
	assert.Equal(t, 1600, stats.Total)
}

func TestDailyStatsIsAdditive(t *testing.T) {
	calc := newCalculator()

	records := []entities.MealRecord{
		record("2024-03-01", entities.MealTypeBreakfast, "toast", 300),
		record("2024-03-01", entities.MealTypeSnack, "cookie", 150),
		record("2024-03-01", entities.MealTypeSnack, "apple", 80),
		record("2024-03-01", entities.MealTypeDinner, "stew", 700),
	}

	stats := calc.Daily(records, "2024-03-01")
	assert.Equal(t, stats.Breakfast+stats.Lunch+stats.Dinner+stats.Snack, stats.Total)
}

func TestDailyStatsUnknownSlotCountsTowardTotalOnly(t *testing.T) {
	calc := newCalculator()

	records := []entities.MealRecord{
		record("2024-03-01", entities.MealTypeBreakfast, "toast", 300),
		record("2024-03-01", entities.MealType("brunch"), "pancakes", 450),
	}

	stats := calc.Daily(records, "2024-03-01")

	assert.Equal(t, 300, stats.Breakfast)
	assert.Equal(t, 750, stats.Total)
	assert.Equal(t, 0, stats.Lunch+stats.Dinner+stats.Snack)
}

func TestDailyStatsEmptyDate(t *testing.T) {
	calc := newCalculator()

	stats := calc.Daily(nil, "2024-03-01")
	assert.Equal(t, DailyStats{Date: "2024-03-01"}, stats)
}

func TestWeeklyStats(t *testing.T) {
	calc := newCalculator()

	// 2024-03-06 is a Wednesday; its week starts Sunday 2024-03-03
	records := []entities.MealRecord{
		record("2024-03-03", entities.MealTypeBreakfast, "toast", 200),
		record("2024-03-06", entities.MealTypeLunch, "ramen", 550),
		record("2024-03-09", entities.MealTypeDinner, "curry", 800),
		record("2024-03-10", entities.MealTypeDinner, "pizza", 900), // next week
	}

	week, err := calc.Weekly(records, "2024-03-06")
	require.NoError(t, err)
	require.Len(t, week, 7)

	assert.Equal(t, "2024-03-03", week[0].Date)
	assert.Equal(t, "Sun", week[0].DayOfWeek)
	assert.Equal(t, 200, week[0].Total)

	assert.Equal(t, "2024-03-06", week[3].Date)
	assert.Equal(t, "Wed", week[3].DayOfWeek)
	assert.Equal(t, 550, week[3].Total)

	assert.Equal(t, "2024-03-09", week[6].Date)
	assert.Equal(t, "Sat", week[6].DayOfWeek)
	assert.Equal(t, 800, week[6].Total)
}

func TestWeeklyStatsAnchorOnWeekStart(t *testing.T) {
	calc := newCalculator()

	week, err := calc.Weekly(nil, "2024-03-03") // a Sunday
	require.NoError(t, err)
	require.Len(t, week, 7)
	assert.Equal(t, "2024-03-03", week[0].Date)
	assert.Equal(t, "2024-03-09", week[6].Date)
}

func TestWeeklyStatsBadAnchor(t *testing.T) {
	calc := newCalculator()

	_, err := calc.Weekly(nil, "03/06/2024")
	assert.Error(t, err)
}

func TestSortByRecency(t *testing.T) {
	calc := newCalculator()

	breakfast := record("2024-01-01", entities.MealTypeBreakfast, "toast", 300)
	dinner := record("2024-01-01", entities.MealTypeDinner, "stew", 700)
	records := []entities.MealRecord{breakfast, dinner}

	desc := calc.SortByRecency(records, SortDescending)
	require.Len(t, desc, 2)
	assert.Equal(t, dinner.ID, desc[0].ID)
	assert.Equal(t, breakfast.ID, desc[1].ID)

	asc := calc.SortByRecency(records, SortAscending)
	assert.Equal(t, breakfast.ID, asc[0].ID)
	assert.Equal(t, dinner.ID, asc[1].ID)

	// Input order is untouched
	assert.Equal(t, breakfast.ID, records[0].ID)
}

func TestSortByRecencyAcrossDates(t *testing.T) {
	calc := newCalculator()

	records := []entities.MealRecord{
		record("2024-01-02", entities.MealTypeBreakfast, "toast", 300),
		record("2024-01-01", entities.MealTypeSnack, "cookie", 150),
		record("2024-01-01", entities.MealType("unknown"), "mystery", 100), // sorts at the 12:00 default
		record("2024-01-01", entities.MealTypeBreakfast, "eggs", 200),
	}

	asc := calc.SortByRecency(records, SortAscending)
	assert.Equal(t, "eggs", asc[0].FoodName)
	assert.Equal(t, "mystery", asc[1].FoodName)
	assert.Equal(t, "cookie", asc[2].FoodName)
	assert.Equal(t, "toast", asc[3].FoodName)
}

func TestTopFoods(t *testing.T) {
	calc := newCalculator()

	records := []entities.MealRecord{
		record("2024-01-01", entities.MealTypeBreakfast, "toast", 300),
		record("2024-01-02", entities.MealTypeBreakfast, "toast", 300),
		record("2024-01-01", entities.MealTypeLunch, "ramen", 550),
		record("2024-01-01", entities.MealTypeDinner, "stew", 700),
		record("2024-01-02", entities.MealTypeLunch, "ramen", 550),
		record("2024-01-03", entities.MealTypeBreakfast, "toast", 300),
	}

	top := calc.TopFoods(records, 2)
	require.Len(t, top, 2)
	assert.Equal(t, FoodCount{Food: "toast", Count: 3}, top[0])
	assert.Equal(t, FoodCount{Food: "ramen", Count: 2}, top[1])
}

func TestTopFoodsTiesKeepFirstEncounteredOrder(t *testing.T) {
	calc := newCalculator()

	records := []entities.MealRecord{
		record("2024-01-01", entities.MealTypeLunch, "ramen", 550),
		record("2024-01-01", entities.MealTypeDinner, "stew", 700),
		record("2024-01-02", entities.MealTypeLunch, "ramen", 550),
		record("2024-01-02", entities.MealTypeDinner, "stew", 700),
	}

	top := calc.TopFoods(records, 5)
	require.Len(t, top, 2)
	assert.Equal(t, "ramen", top[0].Food)
	assert.Equal(t, "stew", top[1].Food)
}

func TestGroupByDatePreservesOrder(t *testing.T) {
	records := []entities.MealRecord{
		record("2024-01-01", entities.MealTypeBreakfast, "toast", 300),
		record("2024-01-02", entities.MealTypeLunch, "ramen", 550),
		record("2024-01-01", entities.MealTypeDinner, "stew", 700),
	}

	groups := GroupByDate(records)
	require.Len(t, groups, 2)
	require.Len(t, groups["2024-01-01"], 2)
	assert.Equal(t, "toast", groups["2024-01-01"][0].FoodName)
	assert.Equal(t, "stew", groups["2024-01-01"][1].FoodName)
}

func TestGroupByType(t *testing.T) {
	records := []entities.MealRecord{
		record("2024-01-01", entities.MealTypeSnack, "cookie", 150),
		record("2024-01-02", entities.MealTypeSnack, "apple", 80),
		record("2024-01-01", entities.MealTypeDinner, "stew", 700),
	}

	groups := GroupByType(records)
	require.Len(t, groups, 2)
	assert.Len(t, groups[entities.MealTypeSnack], 2)
	assert.Len(t, groups[entities.MealTypeDinner], 1)
}

func TestSearchByFood(t *testing.T) {
	records := []entities.MealRecord{
		record("2024-01-01", entities.MealTypeBreakfast, "Toast", 300),
		record("2024-01-01", entities.MealTypeLunch, "ramen", 550),
		{ID: "x", Date: "2024-01-01", MealType: entities.MealTypeDinner, FoodName: "stew", Calories: 700, Memo: "extra toast on the side"},
	}

	matched := SearchByFood(records, "toast")
	require.Len(t, matched, 2)

	all := SearchByFood(records, "  ")
	assert.Len(t, all, 3)
}

func TestFilterByCalorieRange(t *testing.T) {
	records := []entities.MealRecord{
		record("2024-01-01", entities.MealTypeBreakfast, "toast", 300),
		record("2024-01-01", entities.MealTypeLunch, "ramen", 550),
		record("2024-01-01", entities.MealTypeDinner, "stew", 700),
	}

	matched := FilterByCalorieRange(records, 300, 550)
	require.Len(t, matched, 2)
	assert.Equal(t, "toast", matched[0].FoodName)
	assert.Equal(t, "ramen", matched[1].FoodName)
}

func TestAverageCalories(t *testing.T) {
	assert.Equal(t, 0, AverageCalories(nil))
	assert.Equal(t, 500, AverageCalories([]int{400, 600}))
	assert.Equal(t, 334, AverageCalories([]int{300, 350, 351}))
}

func TestSummary(t *testing.T) {
	calc := newCalculator()

	records := []entities.MealRecord{
		record("2024-03-01", entities.MealTypeBreakfast, "toast", 300),
		record("2024-03-01", entities.MealTypeLunch, "ramen", 600),
		record("2024-03-01", entities.MealTypeSnack, "cookie", 150),
		record("2024-03-02", entities.MealTypeDinner, "stew", 700),
	}

	summary := calc.Summary(records, "2024-03-01")

	assert.Equal(t, 3, summary.TotalMeals)
	assert.Equal(t, 1050, summary.TotalCalories)
	assert.Equal(t, 1, summary.BreakfastCount)
	assert.Equal(t, 1, summary.LunchCount)
	assert.Equal(t, 0, summary.DinnerCount)
	assert.Equal(t, 1, summary.SnackCount)
	assert.Equal(t, 350, summary.AverageCaloriesPerMeal)
}
