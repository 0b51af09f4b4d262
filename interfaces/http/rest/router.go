package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"sikdan-backend/application/services"
	"sikdan-backend/domain/core/validators"
	"sikdan-backend/infrastructure/config"
	"sikdan-backend/interfaces/http/rest/handlers"
	"sikdan-backend/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	store     *services.RecordStore
	validator *validators.MealValidator
	cfg       *config.Config
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	store *services.RecordStore,
	validator *validators.MealValidator,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	return &Router{
		store:     store,
		validator: validator,
		cfg:       cfg,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		mealHandler := handlers.NewMealHandler(rt.store, rt.validator, rt.logger)
		statsHandler := handlers.NewStatsHandler(rt.store, rt.logger)
		snapshotHandler := handlers.NewSnapshotHandler(rt.store, rt.logger)

		// Meal record endpoints
		r.Route("/meals", func(r chi.Router) {
			r.Post("/", mealHandler.CreateMeal)
			r.Get("/", mealHandler.GetMeals)
			r.Get("/range", mealHandler.GetMealsByRange)
			r.Get("/type/{mealType}", mealHandler.GetMealsByType)
			r.Get("/recent", mealHandler.GetRecentMeals)
			r.Get("/search", mealHandler.SearchMeals)
			r.Get("/grouped", mealHandler.GetMealsGrouped)
			r.Get("/sorted", mealHandler.GetMealsSorted)
			r.Put("/{mealID}", mealHandler.UpdateMeal)
			r.Delete("/{mealID}", mealHandler.DeleteMeal)
		})

		// Derived statistics endpoints
		r.Route("/stats", func(r chi.Router) {
			r.Get("/daily", statsHandler.GetDailyStats)
			r.Get("/weekly", statsHandler.GetWeeklyStats)
			r.Get("/summary", statsHandler.GetSummary)
		})

		// Food catalog endpoints
		r.Route("/foods", func(r chi.Router) {
			r.Get("/top", statsHandler.GetTopFoods)
			r.Get("/remote", statsHandler.GetRemoteFoods)
		})

		// Snapshot endpoints
		r.Route("/snapshot", func(r chi.Router) {
			r.Get("/export", snapshotHandler.ExportSnapshot)
			r.Post("/import", snapshotHandler.ImportSnapshot)
			r.Delete("/", snapshotHandler.ClearRecords)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
