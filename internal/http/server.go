package httpapi

import (
	"net/http"
	"time"

	"fittrack-backend-go/internal/config"
	"fittrack-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	DB         *sqlx.DB
	Config     config.Config
	Tokens     services.TokenService
	MetricsHub *services.MetricsHub
}

func NewServer(db *sqlx.DB, cfg config.Config, hub *services.MetricsHub) *Server {
	tokens := services.TokenService{
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: time.Duration(cfg.TokenTTLSeconds) * time.Second,
	}
	return &Server{
		DB:         db,
		Config:     cfg,
		Tokens:     tokens,
		MetricsHub: hub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(time.Duration(s.Config.RequestTimeoutSeconds) * time.Second))

		api.Post("/auth", s.Auth)
		api.Post("/users", s.CreateUser)

		api.Group(func(private chi.Router) {
			private.Use(WithAuth(s.Tokens))

			private.Get("/profile", s.GetProfile)
			private.Patch("/profile", s.UpdateProfile)
			private.Get("/profile/summary", s.ProfileSummary)

			private.Get("/body-metrics", s.ListBodyMetrics)
			private.Post("/body-metrics", s.CreateBodyMetric)

			private.Get("/workouts", s.ListWorkouts)
			private.Post("/workouts", s.CreateWorkout)

			private.With(s.RequireAdmin).Get("/users", s.ListUsers)
			private.Route("/users/{userId}", func(users chi.Router) {
				users.Get("/", s.GetUserDetail)
				users.Put("/", s.UpdateUserEmail)
				users.Delete("/", s.DeleteUser)
			})

			private.With(s.RequireAdmin).Get("/admin/metrics/history", s.MetricsHistory)
		})
	})

	r.Get("/ws/metrics", s.MetricsSocket)
	return r
}
