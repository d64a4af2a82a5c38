package routes

import (
	"net/http"

	"github.com/congregate-app/congregate/internal/app"
	"github.com/congregate-app/congregate/internal/handler"
	"github.com/congregate-app/congregate/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	tithe := handler.NewTitheHandler(app.TitheService, app.ReceiptService, app.UserService)
	sermon := handler.NewSermonHandler(app.SermonService)
	schedule := handler.NewScheduleHandler(app.ScheduleService)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Account
	mux.HandleFunc("POST /app/account/password", middleware.RequireAuth(auth.ChangePassword))

	// Tithing ledger
	mux.HandleFunc("POST /app/tithes", middleware.RequireAdmin(tithe.Create))
	mux.HandleFunc("GET /app/tithes", middleware.RequireAuth(tithe.List))
	mux.HandleFunc("GET /app/tithes/{id}/receipt", middleware.RequireAuth(tithe.Receipt))

	// Sermons (public reads)
	mux.HandleFunc("POST /app/sermons", middleware.RequireAdmin(sermon.Create))
	mux.HandleFunc("GET /sermons", sermon.List)
	mux.HandleFunc("GET /sermons/{id}", sermon.Show)

	// Sunday service schedule (public reads)
	mux.HandleFunc("POST /app/schedule", middleware.RequireAdmin(schedule.Create))
	mux.HandleFunc("GET /schedule", schedule.List)

	// 404
	mux.HandleFunc("/{path...}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.Auth(app.AuthService, app.UserService),
	)
}
