package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sikdan-backend/application/services"
	"sikdan-backend/domain/core/entities"
	"sikdan-backend/domain/core/validators"
	"sikdan-backend/domain/stats"
	"sikdan-backend/pkg/common"
	"sikdan-backend/pkg/utils"
)

// MealHandler handles meal-record HTTP requests
type MealHandler struct {
	store     *services.RecordStore
	validator *validators.MealValidator
	logger    *zap.Logger
}

// NewMealHandler creates a new meal handler
func NewMealHandler(store *services.RecordStore, validator *validators.MealValidator, logger *zap.Logger) *MealHandler {
	return &MealHandler{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// CreateMealRequest represents the request body for logging a meal
type CreateMealRequest struct {
	Date     string `json:"date"`
	MealType string `json:"mealType"`
	FoodName string `json:"foodName"`
	Calories int    `json:"calories"`
	Memo     string `json:"memo,omitempty"`
}

// UpdateMealRequest represents the request body for updating a meal
type UpdateMealRequest struct {
	Date     *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MealType *string `json:"mealType,omitempty" validate:"omitempty,oneof=breakfast lunch dinner snack"`
	FoodName *string `json:"foodName,omitempty" validate:"omitempty,min=1,max=200"`
	Calories *int    `json:"calories,omitempty" validate:"omitempty,gt=0"`
	Memo     *string `json:"memo,omitempty" validate:"omitempty,max=500"`
}

// CreateMeal handles POST /meals
func (h *MealHandler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var req CreateMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}

	draft := entities.MealDraft{
		Date:     req.Date,
		MealType: entities.MealType(req.MealType),
		FoodName: req.FoodName,
		Calories: req.Calories,
		Memo:     req.Memo,
	}

	// The store appends whatever it is given; rejecting bad drafts is
	// this caller's job
	if result := h.validator.ValidateDraft(draft); !result.IsValid {
		details := make(map[string]interface{}, len(result.Errors))
		for field, message := range result.Errors {
			details[field] = message
		}
		common.RespondErrorWithDetails(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, "Invalid meal record", details)
		return
	}

	record := h.store.Add(r.Context(), draft)
	common.RespondJSON(w, http.StatusCreated, record)
}

// GetMeals handles GET /meals?date=YYYY-MM-DD. It loads remote-first
// with local fallback and reports which source served the data.
func (h *MealHandler) GetMeals(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = utils.Today()
	}
	if !utils.IsDay(date) {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "date must be in YYYY-MM-DD format")
		return
	}

	result := h.store.Load(r.Context(), date)
	common.RespondWithMeta(w, http.StatusOK, result, &common.MetaInfo{
		Timestamp: utils.NowRFC3339(),
		Source:    string(result.Source),
	})
}

// GetMealsByRange handles GET /meals/range?start=&end=
func (h *MealHandler) GetMealsByRange(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if !utils.IsDay(start) || !utils.IsDay(end) {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "start and end must be in YYYY-MM-DD format")
		return
	}

	common.RespondJSON(w, http.StatusOK, h.store.QueryByDateRange(start, end))
}

// GetMealsByType handles GET /meals/type/{mealType}
func (h *MealHandler) GetMealsByType(w http.ResponseWriter, r *http.Request) {
	mealType := entities.MealType(chi.URLParam(r, "mealType"))
	if !mealType.IsKnown() {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "meal type must be one of breakfast, lunch, dinner, snack")
		return
	}

	common.RespondJSON(w, http.StatusOK, h.store.QueryByType(mealType))
}

// GetRecentMeals handles GET /meals/recent?limit=
func (h *MealHandler) GetRecentMeals(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, h.store.Recent(queryInt(r, "limit")))
}

// SearchMeals handles GET /meals/search?q=
func (h *MealHandler) SearchMeals(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, h.store.Search(r.URL.Query().Get("q")))
}

// GetMealsGrouped handles GET /meals/grouped, returning the in-memory
// list partitioned by date
func (h *MealHandler) GetMealsGrouped(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, h.store.GroupedByDate())
}

// GetMealsSorted handles GET /meals/sorted?order=asc|desc
func (h *MealHandler) GetMealsSorted(w http.ResponseWriter, r *http.Request) {
	order := stats.SortOrder(r.URL.Query().Get("order"))
	if order != stats.SortAscending && order != stats.SortDescending {
		order = stats.SortDescending
	}
	common.RespondJSON(w, http.StatusOK, h.store.SortedByRecency(order))
}

// UpdateMeal handles PUT /meals/{mealID}
func (h *MealHandler) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	mealID := chi.URLParam(r, "mealID")

	var req UpdateMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	patch := entities.MealPatch{
		Date:     req.Date,
		FoodName: req.FoodName,
		Calories: req.Calories,
		Memo:     req.Memo,
	}
	if req.MealType != nil {
		mealType := entities.MealType(*req.MealType)
		patch.MealType = &mealType
	}

	updated := h.store.Update(mealID, patch)
	if updated == nil {
		common.RespondError(w, http.StatusNotFound, common.StandardErrorCodes.NotFound, "meal record not found")
		return
	}

	common.RespondJSON(w, http.StatusOK, updated)
}

// DeleteMeal handles DELETE /meals/{mealID}. Deletion is guaranteed
// locally and best-effort remotely, so it always succeeds.
func (h *MealHandler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	mealID := chi.URLParam(r, "mealID")
	h.store.Remove(r.Context(), mealID)
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"id": mealID, "deleted": true})
}

// queryInt reads an integer query parameter, zero when absent or bad
func queryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}
