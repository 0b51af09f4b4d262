package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"sikdan-backend/application/services"
	"sikdan-backend/pkg/common"
	"sikdan-backend/pkg/utils"
)

// StatsHandler handles derived-statistics HTTP requests
type StatsHandler struct {
	store  *services.RecordStore
	logger *zap.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(store *services.RecordStore, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		store:  store,
		logger: logger,
	}
}

// GetDailyStats handles GET /stats/daily?date=
func (h *StatsHandler) GetDailyStats(w http.ResponseWriter, r *http.Request) {
	date, ok := dayParam(w, r)
	if !ok {
		return
	}
	common.RespondJSON(w, http.StatusOK, h.store.DailyStats(date))
}

// GetWeeklyStats handles GET /stats/weekly?date=
func (h *StatsHandler) GetWeeklyStats(w http.ResponseWriter, r *http.Request) {
	date, ok := dayParam(w, r)
	if !ok {
		return
	}

	week, err := h.store.WeeklyStats(date)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, err.Error())
		return
	}
	common.RespondJSON(w, http.StatusOK, week)
}

// GetSummary handles GET /stats/summary?date=
func (h *StatsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	date, ok := dayParam(w, r)
	if !ok {
		return
	}
	common.RespondJSON(w, http.StatusOK, h.store.Summary(date))
}

// GetTopFoods handles GET /foods/top?limit=
func (h *StatsHandler) GetTopFoods(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, h.store.TopFoods(queryInt(r, "limit")))
}

// GetRemoteFoods handles GET /foods/remote, listing the remote food
// catalog
func (h *StatsHandler) GetRemoteFoods(w http.ResponseWriter, r *http.Request) {
	result := h.store.RemoteFoods(r.Context())
	if result.Error {
		common.RespondError(w, http.StatusBadGateway, common.StandardErrorCodes.RemoteError, result.Message)
		return
	}
	common.RespondJSON(w, http.StatusOK, result.Foods)
}

// dayParam reads the date query parameter, defaulting to today, and
// rejects malformed values
func dayParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = utils.Today()
	}
	if !utils.IsDay(date) {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "date must be in YYYY-MM-DD format")
		return "", false
	}
	return date, true
}
