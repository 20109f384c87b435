package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gazete/internal/backup"
	"gazete/internal/cache"
	"gazete/internal/config"
	"gazete/internal/database"
	"gazete/internal/handlers"
	"gazete/internal/memstore"
	"gazete/internal/router"
	"gazete/internal/storage"
	"gazete/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var (
		stores  handlers.Stores
		backups handlers.BackupManager
	)

	if cfg.UseMemoryStore() {
		slog.Warn("using in-memory storage, data will not survive a restart")
		mem := memstore.New()
		stores = handlers.Stores{
			News:               mem.News(),
			Articles:           mem.Articles(),
			Categories:         mem.Categories(),
			Cities:             mem.Cities(),
			Sources:            mem.Sources(),
			Users:              mem.Users(),
			Comments:           mem.Comments(),
			Media:              mem.MediaFiles(),
			Ads:                mem.Ads(),
			Classifieds:        mem.Classifieds(),
			Magazines:          mem.Magazines(),
			MagazineCategories: mem.MagazineCategories(),
			NewspaperPages:     mem.NewspaperPages(),
			Stats:              mem.StatsView(),
		}
	} else {
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("database migration failed", "error", err)
			os.Exit(1)
		}
		if cfg.IsDev() {
			if err := database.Seed(db); err != nil {
				slog.Error("database seeding failed", "error", err)
				os.Exit(1)
			}
		}

		settings := store.NewSettingStore(db)
		stores = handlers.Stores{
			News:               store.NewNewsStore(db),
			Articles:           store.NewArticleStore(db),
			Categories:         store.NewCategoryStore(db),
			Cities:             store.NewCityStore(db),
			Sources:            store.NewSourceStore(db),
			Users:              store.NewUserStore(db),
			Comments:           store.NewCommentStore(db),
			Media:              store.NewMediaStore(db),
			Ads:                store.NewAdStore(db),
			Classifieds:        store.NewClassifiedStore(db),
			Magazines:          store.NewMagazineStore(db),
			MagazineCategories: store.NewMagazineCategoryStore(db),
			NewspaperPages:     store.NewNewspaperPageStore(db),
			Stats:              store.NewStatsStore(db),
		}

		manager, err := backup.NewManager(cfg, settings)
		if err != nil {
			slog.Error("backup manager init failed", "error", err)
			os.Exit(1)
		}
		backups = manager

		scheduler := backup.NewScheduler(manager)
		scheduler.Start()
		defer scheduler.Stop()
	}

	var statsCache *cache.StatsCache
	if cfg.RedisHost != "" {
		client, err := cache.Connect(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			slog.Warn("redis unavailable, stats caching disabled", "error", err)
		} else {
			defer client.Close()
			statsCache = cache.NewStatsCache(client, cache.DefaultStatsTTL)
		}
	}

	files, err := storage.NewS3(
		cfg.S3Endpoint, cfg.S3Region,
		cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("s3 storage init failed", "error", err)
		os.Exit(1)
	}
	var fileStore storage.Store
	if files != nil {
		fileStore = files
		slog.Info("media storage: s3", "bucket", cfg.S3Bucket)
	} else {
		local, err := storage.NewLocal(cfg.UploadDir)
		if err != nil {
			slog.Error("local storage init failed", "error", err)
			os.Exit(1)
		}
		fileStore = local
		slog.Info("media storage: local", "dir", cfg.UploadDir)
	}

	api := handlers.New(stores, fileStore, statsCache, backups)
	r, limiter := router.New(api)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.Addr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
	slog.Info("server stopped")
}
