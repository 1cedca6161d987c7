package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"carbontrack-backend/internal/config"
	"carbontrack-backend/internal/database"
	"carbontrack-backend/internal/handlers"
	"carbontrack-backend/internal/middleware"
	"carbontrack-backend/utils/response"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := database.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)
	authHandler := handlers.NewAuthHandler(db, cfg.JWTSecret, cfg.TokenTTL)
	carbonHandler := handlers.NewCarbonHandler(db)
	adminHandler := handlers.NewAdminHandler(db)

	router := http.NewServeMux()

	router.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, nil, "ok")
	})

	router.HandleFunc("POST /api/auth/register", authHandler.Register)
	router.HandleFunc("POST /api/auth/login", authHandler.Login)
	router.Handle("GET /api/auth/me", authMiddleware.RequireAuth(http.HandlerFunc(authHandler.GetMe)))

	router.Handle("POST /api/carbon", authMiddleware.RequireAuth(http.HandlerFunc(carbonHandler.Create)))
	router.Handle("GET /api/carbon/my-data", authMiddleware.RequireAuth(http.HandlerFunc(carbonHandler.GetMyData)))
	router.Handle("GET /api/carbon/{id}", authMiddleware.RequireAuth(http.HandlerFunc(carbonHandler.GetByID)))
	router.Handle("PUT /api/carbon/{id}", authMiddleware.RequireAuth(http.HandlerFunc(carbonHandler.Update)))
	router.Handle("DELETE /api/carbon/{id}", authMiddleware.RequireAuth(http.HandlerFunc(carbonHandler.Delete)))

	router.Handle("GET /api/admin/pending-reviews", authMiddleware.RequireReviewer(http.HandlerFunc(adminHandler.GetPendingReviews)))
	router.Handle("POST /api/admin/review/{id}", authMiddleware.RequireReviewer(http.HandlerFunc(adminHandler.ReviewCarbonData)))
	router.Handle("GET /api/admin/review-history/{id}", authMiddleware.RequireReviewer(http.HandlerFunc(adminHandler.GetReviewHistory)))

	handler := corsMiddleware(middleware.RequestLogger(logger)(router))

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	logger.Info("server starting", "addr", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
