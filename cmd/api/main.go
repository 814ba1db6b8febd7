package main

import (
	"log"
	"net/http"

	_ "github.com/WahyuuR/RekomendationAnime/docs" // swagger docs

	"github.com/WahyuuR/RekomendationAnime/internal/cache"
	"github.com/WahyuuR/RekomendationAnime/internal/catalog"
	"github.com/WahyuuR/RekomendationAnime/internal/config"
	"github.com/WahyuuR/RekomendationAnime/internal/db"
	"github.com/WahyuuR/RekomendationAnime/internal/handler"
	"github.com/WahyuuR/RekomendationAnime/internal/recommender"
	"github.com/WahyuuR/RekomendationAnime/internal/repository"
	"github.com/WahyuuR/RekomendationAnime/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Anime Recommender API
// @version 1.0
// @description API de recomendación por similitud de sinopsis (TF-IDF + coseno, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// ==========================================
	// Modelo de similitud: build-once, read-many
	// ==========================================
	holder := recommender.NewModelHolder(func() (*recommender.Model, error) {
		cat, err := catalog.Load(cfg.DatasetPath)
		if err != nil {
			return nil, err
		}
		return recommender.BuildModel(cat), nil
	})

	// build al arranque: un dataset ilegible es fatal para el proceso,
	// no un error por request
	if _, err := holder.Get(); err != nil {
		log.Fatalf("[catalog] no se pudo construir el modelo: %v", err)
	}

	// repos
	userRepo := repository.NewUserRepository()
	bookmarkRepo := repository.NewBookmarkRepository()
	recRepo := repository.NewRecommendationRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	animeSvc := service.NewAnimeService(holder)
	recSvc := service.NewRecommendService(holder, recRepo)
	bookmarkSvc := service.NewBookmarkService(bookmarkRepo, holder)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	animeH := handler.NewAnimeHandler(animeSvc)
	recH := handler.NewRecommendHandler(recSvc)
	bookmarkH := handler.NewBookmarkHandler(bookmarkSvc)
	adminModelH := handler.NewAdminModelHandler(recSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Catálogo (público)
	r.Get("/anime/search", animeH.Search)
	r.Get("/anime/top", animeH.Top)
	r.Get("/anime/{title}", animeH.GetAnime)

	// Recomendaciones (públicas: no hace falta login para consultar)
	r.Get("/recommendations", recH.GetRecommendations)
	r.Get("/ws/recommendations", recH.GetRecommendationsWS)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/bookmarks", bookmarkH.List)
			r.Post("/bookmarks", bookmarkH.Add)
			r.Delete("/bookmarks", bookmarkH.RemoveMany)

			r.Get("/recommendations", recH.GetMyHistory)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			// --- mantenimiento del modelo de similitud ---
			handler.MountAdminModelRoutes(r, adminModelH)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
