// Package handlers contains the HTTP handlers for the admin API.
// Handlers are grouped by entity and receive their data stores through
// the API struct as interfaces, so the same handlers run against
// PostgreSQL and the in-memory backend.
package handlers

import (
	"context"
	"io"
	"time"

	"gazete/internal/backup"
	"gazete/internal/cache"
	"gazete/internal/models"
	"gazete/internal/storage"
)

// NewsStore is the news data access surface the handlers consume.
type NewsStore interface {
	FindByID(id int64) (*models.NewsWithDetails, error)
	FindBySlug(slug string) (*models.NewsWithDetails, error)
	FindRowByID(id int64) (*models.News, error)
	List(f models.NewsFilters) ([]models.NewsWithDetails, error)
	Create(n *models.News) (*models.News, error)
	Update(n *models.News) (*models.News, error)
	Delete(id int64) (bool, error)
	IncrementViews(id int64) (bool, error)
}

// ArticleStore is the article data access surface.
type ArticleStore interface {
	FindByID(id int64) (*models.ArticleWithDetails, error)
	FindBySlug(slug string) (*models.ArticleWithDetails, error)
	FindRowByID(id int64) (*models.Article, error)
	List(f models.ArticleFilters) ([]models.ArticleWithDetails, error)
	Create(a *models.Article) (*models.Article, error)
	Update(a *models.Article) (*models.Article, error)
	Delete(id int64) (bool, error)
}

// CategoryStore is the category data access surface.
type CategoryStore interface {
	List() ([]models.Category, error)
	FindByID(id int64) (*models.Category, error)
	FindBySlug(slug string) (*models.Category, error)
	Create(c *models.Category) (*models.Category, error)
	Update(c *models.Category) (*models.Category, error)
	Delete(id int64) (bool, error)
}

// CityStore is the city data access surface.
type CityStore interface {
	List() ([]models.City, error)
	FindByID(id int64) (*models.City, error)
	Create(c *models.City) (*models.City, error)
	Update(c *models.City) (*models.City, error)
	Delete(id int64) (bool, error)
}

// SourceStore is the news source data access surface.
type SourceStore interface {
	List() ([]models.Source, error)
	FindByID(id int64) (*models.Source, error)
	Create(s *models.Source) (*models.Source, error)
	Update(s *models.Source) (*models.Source, error)
	Delete(id int64) (bool, error)
}

// UserStore is the user data access surface.
type UserStore interface {
	FindByID(id int64) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	List() ([]models.User, error)
	Create(u *models.User, password string) (*models.User, error)
	Update(u *models.User) (*models.User, error)
	SetPassword(id int64, password string) error
	Delete(id int64) (bool, error)
}

// CommentStore is the comment data access surface.
type CommentStore interface {
	List(f models.CommentFilters) ([]models.Comment, error)
	FindByID(id int64) (*models.Comment, error)
	Create(c *models.Comment) (*models.Comment, error)
	Update(c *models.Comment) (*models.Comment, error)
	Delete(id int64) (bool, error)
}

// MediaStore is the media metadata surface. Delete returns the removed
// row so the file can be cleaned up.
type MediaStore interface {
	List() ([]models.Media, error)
	FindByID(id int64) (*models.Media, error)
	Create(m *models.Media) (*models.Media, error)
	Delete(id int64) (*models.Media, error)
}

// AdStore is the advertisement data access surface.
type AdStore interface {
	List(f models.AdFilters) ([]models.Advertisement, error)
	FindByID(id int64) (*models.Advertisement, error)
	Create(a *models.Advertisement) (*models.Advertisement, error)
	Update(a *models.Advertisement) (*models.Advertisement, error)
	Delete(id int64) (bool, error)
	IncrementClicks(id int64) (bool, error)
	IncrementImpressions(id int64) (bool, error)
}

// ClassifiedStore is the classified ad surface, including moderation.
type ClassifiedStore interface {
	List(f models.ClassifiedFilters) ([]models.ClassifiedAd, error)
	FindByID(id int64) (*models.ClassifiedAd, error)
	Create(c *models.ClassifiedAd) (*models.ClassifiedAd, error)
	Update(c *models.ClassifiedAd) (*models.ClassifiedAd, error)
	Delete(id int64) (bool, error)
	Approve(id, approverID int64) (*models.ClassifiedAd, error)
	Reject(id int64) (*models.ClassifiedAd, error)
	IncrementViews(id int64) (bool, error)
}

// MagazineStore is the digital magazine surface.
type MagazineStore interface {
	List(f models.MagazineFilters) ([]models.DigitalMagazine, error)
	FindByID(id int64) (*models.DigitalMagazine, error)
	Create(m *models.DigitalMagazine) (*models.DigitalMagazine, error)
	Update(m *models.DigitalMagazine) (*models.DigitalMagazine, error)
	Delete(id int64) (bool, error)
	IncrementDownloads(id int64) (bool, error)
}

// MagazineCategoryStore is the magazine category surface.
type MagazineCategoryStore interface {
	List() ([]models.MagazineCategory, error)
	FindByID(id int64) (*models.MagazineCategory, error)
	Create(c *models.MagazineCategory) (*models.MagazineCategory, error)
	Update(c *models.MagazineCategory) (*models.MagazineCategory, error)
	Delete(id int64) (bool, error)
}

// NewspaperPageStore is the newspaper page surface.
type NewspaperPageStore interface {
	List() ([]models.NewspaperPage, error)
	FindByID(id int64) (*models.NewspaperPage, error)
	Create(p *models.NewspaperPage) (*models.NewspaperPage, error)
	Update(p *models.NewspaperPage) (*models.NewspaperPage, error)
	Delete(id int64) (bool, error)
}

// StatsStore computes the dashboard statistics.
type StatsStore interface {
	Stats() (*models.Stats, error)
}

// BackupManager is the backup surface the handlers consume.
type BackupManager interface {
	Create(ctx context.Context) (*models.BackupFile, error)
	Restore(ctx context.Context, dump io.Reader) error
	List() ([]models.BackupFile, error)
	Path(filename string) (string, error)
	Delete(filename string) (bool, error)
	Settings() (*models.BackupSettings, error)
	UpdateSettings(s models.BackupSettings) error
}

// Stores bundles every data access surface behind the API.
type Stores struct {
	News               NewsStore
	Articles           ArticleStore
	Categories         CategoryStore
	Cities             CityStore
	Sources            SourceStore
	Users              UserStore
	Comments           CommentStore
	Media              MediaStore
	Ads                AdStore
	Classifieds        ClassifiedStore
	Magazines          MagazineStore
	MagazineCategories MagazineCategoryStore
	NewspaperPages     NewspaperPageStore
	Stats              StatsStore
}

// API groups the admin API handlers and their dependencies. Files may be
// nil when no storage backend is configured; statsCache may be nil when
// Redis is not configured; backups may be nil on the memory backend.
type API struct {
	stores     Stores
	files      storage.Store
	statsCache *cache.StatsCache
	backups    BackupManager
	startedAt  time.Time
}

// New creates the API handler group.
func New(stores Stores, files storage.Store, statsCache *cache.StatsCache, backups BackupManager) *API {
	return &API{
		stores:     stores,
		files:      files,
		statsCache: statsCache,
		backups:    backups,
		startedAt:  time.Now(),
	}
}

var _ BackupManager = (*backup.Manager)(nil)
