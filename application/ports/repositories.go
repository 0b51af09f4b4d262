package ports

import (
	"context"

	"sikdan-backend/domain/core/entities"
)

// LocalCache is the durable local backup of the full record list,
// stored wholesale under one fixed key
type LocalCache interface {
	// ReadAll returns the cached record list. A missing key or corrupt
	// payload yields an empty list; this call never fails outward.
	ReadAll() []entities.MealRecord

	// WriteAll overwrites the cached list wholesale. Callers treat a
	// returned error as non-critical (log and continue).
	WriteAll(records []entities.MealRecord) error

	// Delete removes the cache entry
	Delete() error
}

// RemoteResult is the uniform outcome shape of every remote call.
// Adapters convert transport failures into this shape; callers never
// receive a raised error from the remote layer.
type RemoteResult struct {
	Error   bool
	Message string
}

// Ok reports whether the call succeeded
func (r RemoteResult) Ok() bool {
	return !r.Error
}

// RemoteListResult carries the records of a successful list call
type RemoteListResult struct {
	RemoteResult
	Records []entities.MealRecord
}

// RemoteCreateResult carries the remote-assigned record of a
// successful create call
type RemoteCreateResult struct {
	RemoteResult
	Record *entities.MealRecord
}

// RemoteFoodsResult carries the food catalog of a successful list call
type RemoteFoodsResult struct {
	RemoteResult
	Foods []entities.Food
}

// RemoteMealStore is the remote relational backend, reduced to the
// four verbs this service needs
type RemoteMealStore interface {
	ListByDate(ctx context.Context, userID, date string) RemoteListResult
	Create(ctx context.Context, userID string, record entities.MealRecord) RemoteCreateResult
	DeleteByID(ctx context.Context, id string) RemoteResult
	ListAllFoods(ctx context.Context) RemoteFoodsResult
}
