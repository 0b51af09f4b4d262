package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"sikdan-backend/application/ports"
	"sikdan-backend/domain/core/entities"
)

const (
	mealsTable = "meals"
	foodsTable = "foods"
)

// mealRow is the snake_case wire shape of the remote meals table.
// Column adaptation between this and the canonical MealRecord lives
// only in this package.
type mealRow struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"user_id"`
	MealDate  string `json:"meal_date"`
	MealType  string `json:"meal_type"`
	FoodName  string `json:"food_name"`
	Calories  int    `json:"calories"`
	Memo      string `json:"memo,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// foodRow is the wire shape of the remote foods table
type foodRow struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	CaloriesPer100g float64 `json:"calories_per_100g,omitempty"`
}

// MealRepository is the remote store adapter over Supabase/PostgREST.
// Every call normalizes its outcome into the uniform RemoteResult
// shape; transport failures, timeouts, and open-breaker rejections all
// surface the same way and never escape as raised errors.
type MealRepository struct {
	client  *supa.Client
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
	logger  *zap.Logger
}

// NewMealRepository creates the adapter with a bounded per-call timeout
// and a circuit breaker in front of the remote backend
func NewMealRepository(client *supa.Client, timeout time.Duration, logger *zap.Logger) *MealRepository {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "supabase",
		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.8
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &MealRepository{
		client:  client,
		breaker: breaker,
		timeout: timeout,
		logger:  logger,
	}
}

// ListByDate lists the user's meals for one date, ordered by creation
func (r *MealRepository) ListByDate(ctx context.Context, userID, date string) ports.RemoteListResult {
	var rows []mealRow
	err := r.call(ctx, "list_by_date", func() error {
		_, err := r.client.From(mealsTable).
			Select("*", "", false).
			Eq("user_id", userID).
			Eq("meal_date", date).
			Order("created_at", &postgrest.OrderOpts{Ascending: true}).
			ExecuteTo(&rows)
		return err
	})
	if err != nil {
		return ports.RemoteListResult{RemoteResult: r.fail("list_by_date", err)}
	}

	records := make([]entities.MealRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return ports.RemoteListResult{Records: records}
}

// Create inserts one meal for the user and returns the remote-assigned
// row
func (r *MealRepository) Create(ctx context.Context, userID string, record entities.MealRecord) ports.RemoteCreateResult {
	row := mealRow{
		UserID:   userID,
		MealDate: record.Date,
		MealType: string(record.MealType),
		FoodName: record.FoodName,
		Calories: record.Calories,
		Memo:     record.Memo,
	}

	var inserted []mealRow
	err := r.call(ctx, "create", func() error {
		_, err := r.client.From(mealsTable).
			Insert(row, false, "", "representation", "").
			ExecuteTo(&inserted)
		return err
	})
	if err != nil {
		return ports.RemoteCreateResult{RemoteResult: r.fail("create", err)}
	}
	if len(inserted) == 0 {
		return ports.RemoteCreateResult{RemoteResult: r.fail("create", fmt.Errorf("insert returned no rows"))}
	}

	created := inserted[0].toRecord()
	return ports.RemoteCreateResult{Record: &created}
}

// DeleteByID deletes one meal row by its remote ID
func (r *MealRepository) DeleteByID(ctx context.Context, id string) ports.RemoteResult {
	err := r.call(ctx, "delete_by_id", func() error {
		_, _, err := r.client.From(mealsTable).
			Delete("", "").
			Eq("id", id).
			Execute()
		return err
	})
	if err != nil {
		return r.fail("delete_by_id", err)
	}
	return ports.RemoteResult{}
}

// ListAllFoods lists the food catalog ordered by name
func (r *MealRepository) ListAllFoods(ctx context.Context) ports.RemoteFoodsResult {
	var rows []foodRow
	err := r.call(ctx, "list_all_foods", func() error {
		_, err := r.client.From(foodsTable).
			Select("*", "", false).
			Order("name", &postgrest.OrderOpts{Ascending: true}).
			ExecuteTo(&rows)
		return err
	})
	if err != nil {
		return ports.RemoteFoodsResult{RemoteResult: r.fail("list_all_foods", err)}
	}

	foods := make([]entities.Food, 0, len(rows))
	for _, row := range rows {
		foods = append(foods, entities.Food{
			ID:              row.ID,
			Name:            row.Name,
			Category:        row.Category,
			CaloriesPer100g: row.CaloriesPer100g,
		})
	}
	return ports.RemoteFoodsResult{Foods: foods}
}

// call runs one remote operation through the circuit breaker with the
// configured timeout. The PostgREST client has no context plumbing, so
// the call runs on its own goroutine and the deadline is enforced on
// this side.
func (r *MealRepository) call(ctx context.Context, op string, fn func() error) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := r.breaker.Execute(func() (interface{}, error) {
			return nil, runSafely(fn)
		})
		done <- err
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("remote operation %q: %w", op, ctx.Err())
	case err := <-done:
		return err
	}
}

// runSafely converts a panicking client call into an error so it can
// be normalized like any other transport failure
func runSafely(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("remote client panic: %v", p)
		}
	}()
	return fn()
}

// fail logs and normalizes a remote failure into the uniform shape
func (r *MealRepository) fail(op string, err error) ports.RemoteResult {
	r.logger.Warn("remote call failed",
		zap.String("op", op),
		zap.Error(err),
	)
	return ports.RemoteResult{Error: true, Message: err.Error()}
}

// toRecord maps a remote row to the canonical record shape
func (row mealRow) toRecord() entities.MealRecord {
	return entities.MealRecord{
		ID:        row.ID,
		Date:      row.MealDate,
		MealType:  entities.MealType(row.MealType),
		FoodName:  row.FoodName,
		Calories:  row.Calories,
		Memo:      row.Memo,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
