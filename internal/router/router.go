// Package router sets up the HTTP routes and middleware chain for the
// admin API. Everything under /api serves JSON to the admin panel SPA.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"gazete/internal/handlers"
	"gazete/internal/middleware"
)

// Rate limit for the API as a whole, per client IP.
const (
	rateLimit  = 300
	rateWindow = time.Minute
)

// New creates the configured chi router with all middleware and routes
// wired up. The returned limiter must be stopped on shutdown.
func New(api *handlers.API) (chi.Router, *middleware.RateLimiter) {
	r := chi.NewRouter()
	limiter := middleware.NewRateLimiter(rateLimit, rateWindow)

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", api.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Route("/news", func(r chi.Router) {
			r.Get("/", api.NewsList)
			r.Post("/", api.NewsCreate)
			r.Get("/slug/{slug}", api.NewsGetBySlug)
			r.Get("/{id}", api.NewsGet)
			r.Put("/{id}", api.NewsUpdate)
			r.Delete("/{id}", api.NewsDelete)
			r.Post("/{id}/view", api.NewsView)
		})

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", api.ArticlesList)
			r.Post("/", api.ArticleCreate)
			r.Get("/slug/{slug}", api.ArticleGetBySlug)
			r.Get("/{id}", api.ArticleGet)
			r.Put("/{id}", api.ArticleUpdate)
			r.Delete("/{id}", api.ArticleDelete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", api.CategoriesList)
			r.Post("/", api.CategoryCreate)
			r.Get("/slug/{slug}", api.CategoryGetBySlug)
			r.Get("/{id}", api.CategoryGet)
			r.Put("/{id}", api.CategoryUpdate)
			r.Delete("/{id}", api.CategoryDelete)
		})

		r.Route("/cities", func(r chi.Router) {
			r.Get("/", api.CitiesList)
			r.Post("/", api.CityCreate)
			r.Get("/{id}", api.CityGet)
			r.Put("/{id}", api.CityUpdate)
			r.Delete("/{id}", api.CityDelete)
		})

		r.Route("/sources", func(r chi.Router) {
			r.Get("/", api.SourcesList)
			r.Post("/", api.SourceCreate)
			r.Get("/{id}", api.SourceGet)
			r.Put("/{id}", api.SourceUpdate)
			r.Delete("/{id}", api.SourceDelete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", api.UsersList)
			r.Post("/", api.UserCreate)
			r.Get("/{id}", api.UserGet)
			r.Put("/{id}", api.UserUpdate)
			r.Delete("/{id}", api.UserDelete)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/", api.CommentsList)
			r.Post("/", api.CommentCreate)
			r.Get("/{id}", api.CommentGet)
			r.Put("/{id}", api.CommentUpdate)
			r.Delete("/{id}", api.CommentDelete)
		})

		r.Route("/media", func(r chi.Router) {
			r.Get("/", api.MediaList)
			r.Post("/", api.MediaUpload)
			r.Get("/{id}", api.MediaGet)
			r.Get("/{id}/file", api.MediaServeFile)
			r.Delete("/{id}", api.MediaDelete)
		})

		r.Route("/advertisements", func(r chi.Router) {
			r.Get("/", api.AdsList)
			r.Post("/", api.AdCreate)
			r.Get("/{id}", api.AdGet)
			r.Put("/{id}", api.AdUpdate)
			r.Delete("/{id}", api.AdDelete)
			r.Post("/{id}/click", api.AdClick)
			r.Post("/{id}/impression", api.AdImpression)
		})

		r.Route("/classified-ads", func(r chi.Router) {
			r.Get("/", api.ClassifiedsList)
			r.Post("/", api.ClassifiedCreate)
			r.Get("/{id}", api.ClassifiedGet)
			r.Put("/{id}", api.ClassifiedUpdate)
			r.Delete("/{id}", api.ClassifiedDelete)
			r.Post("/{id}/approve", api.ClassifiedApprove)
			r.Post("/{id}/reject", api.ClassifiedReject)
			r.Post("/{id}/view", api.ClassifiedView)
		})

		r.Route("/digital-magazines", func(r chi.Router) {
			r.Get("/", api.MagazinesList)
			r.Post("/", api.MagazineCreate)
			r.Get("/{id}", api.MagazineGet)
			r.Put("/{id}", api.MagazineUpdate)
			r.Delete("/{id}", api.MagazineDelete)
			r.Post("/{id}/download", api.MagazineDownload)
		})

		r.Route("/magazine-categories", func(r chi.Router) {
			r.Get("/", api.MagazineCategoriesList)
			r.Post("/", api.MagazineCategoryCreate)
			r.Get("/{id}", api.MagazineCategoryGet)
			r.Put("/{id}", api.MagazineCategoryUpdate)
			r.Delete("/{id}", api.MagazineCategoryDelete)
		})

		r.Route("/newspaper-pages", func(r chi.Router) {
			r.Get("/", api.NewspaperPagesList)
			r.Post("/", api.NewspaperPageCreate)
			r.Get("/{id}", api.NewspaperPageGet)
			r.Put("/{id}", api.NewspaperPageUpdate)
			r.Delete("/{id}", api.NewspaperPageDelete)
		})

		r.Get("/stats", api.Stats)

		r.Route("/backup", func(r chi.Router) {
			r.Get("/settings", api.BackupSettingsGet)
			r.Post("/settings", api.BackupSettingsUpdate)
			r.Post("/create", api.BackupCreate)
			r.Get("/list", api.BackupList)
			r.Get("/download/{filename}", api.BackupDownload)
			r.Post("/restore", api.BackupRestore)
			r.Delete("/{filename}", api.BackupDelete)
		})
	})

	return r, limiter
}
